package compact

import "github.com/najmus-sakib-hossain/dx-go/abbrev"

type options struct {
	dict     *abbrev.Dict
	autoRefs bool

	// auto-ref thresholds
	minRefLength int
	minRefCount  int
}

type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		dict:         abbrev.Default(),
		minRefLength: 5,
		minRefCount:  2,
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

// AutoRefs makes Serialize hoist repeated long strings into reference
// definitions.  Off by default: with it enabled the round trip is
// exact only after ir.ResolveRefs on both sides.
func AutoRefs(v bool) Option {
	return func(o *options) { o.autoRefs = v }
}
