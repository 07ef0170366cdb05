package readable

import "github.com/najmus-sakib-hossain/dx-go/abbrev"

type options struct {
	dict       *abbrev.Dict
	maxWidth   int
	style      TableStyle
	expandKeys bool
	summaries  bool
	banners    bool
	refs       bool
	colors     *Colors
}

type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		dict:       abbrev.Default(),
		maxWidth:   80,
		style:      StyleUnicode,
		expandKeys: true,
		summaries:  true,
		banners:    true,
		refs:       true,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

// WithDict overrides the abbreviation dictionary.
func WithDict(d *abbrev.Dict) Option {
	return func(o *options) { o.dict = d }
}

// MaxWidth sets the line width above which table rows wrap.  Zero or
// negative disables wrapping.
func MaxWidth(n int) Option {
	return func(o *options) { o.maxWidth = n }
}

// WithStyle sets the table border character set.
func WithStyle(s TableStyle) Option {
	return func(o *options) { o.style = s }
}

// ExpandKeys controls whether output shows full key names.  Parsing
// accepts either form regardless.
func ExpandKeys(v bool) Option {
	return func(o *options) { o.expandKeys = v }
}

// Summaries controls the row-count and numeric-sum footer under each
// table.
func Summaries(v bool) Option {
	return func(o *options) { o.summaries = v }
}

// Banners controls the decorative comment headers above each block.
func Banners(v bool) Option {
	return func(o *options) { o.banners = v }
}

// References controls whether the [references] block is emitted.
// Disabling it makes output lossy for documents that carry refs.
func References(v bool) Option {
	return func(o *options) { o.refs = v }
}

// WithColors enables ANSI-colored output for terminal display.
// Colored output is not meant to be parsed back.
func WithColors(c *Colors) Option {
	return func(o *options) { o.colors = c }
}
