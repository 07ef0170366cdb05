package main

import (
	"fmt"
	"io"
	"os"

	"github.com/najmus-sakib-hossain/dx-go/compact"
	"github.com/najmus-sakib-hossain/dx-go/format"
	"github.com/najmus-sakib-hossain/dx-go/ir"
	"github.com/najmus-sakib-hossain/dx-go/readable"
	"github.com/najmus-sakib-hossain/dx-go/zero"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	R bool `cli:"name=r aliases=readable desc='do i/o in readable form'"`
	C bool `cli:"name=c aliases=compact desc='do i/o in compact form'"`
	B bool `cli:"name=b aliases=binary desc='do i/o in binary form'"`

	Color bool   `cli:"name=color desc='render readable output in color'"`
	Z     bool   `cli:"name=z aliases=compress desc='compress binary output'"`
	Width int    `cli:"name=w aliases=width desc='max line width for readable tables'"`
	Style string `cli:"name=style desc='table style: unicode, ascii, markdown'"`
	Short bool   `cli:"name=short desc='keep keys abbreviated in readable output'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// flagFormat maps the -r/-c/-b shorthands onto a format.
func (cfg *MainConfig) flagFormat() (format.Format, bool) {
	switch {
	case cfg.R:
		return format.ReadableFormat, true
	case cfg.C:
		return format.CompactFormat, true
	case cfg.B:
		return format.BinaryFormat, true
	}
	return 0, false
}

func (cfg *MainConfig) inFormat(data []byte, detect func([]byte) format.Format) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return detect(data)
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	if f, ok := cfg.flagFormat(); ok {
		return f
	}
	return format.ReadableFormat
}

func (cfg *MainConfig) readableOpts(w io.Writer) ([]readable.Option, error) {
	style, err := readable.ParseStyle(cfg.Style)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	res := []readable.Option{
		readable.WithStyle(style),
		readable.ExpandKeys(!cfg.Short),
	}
	if cfg.Width > 0 {
		res = append(res, readable.MaxWidth(cfg.Width))
	}
	if cfg.Color {
		return append(res, readable.WithColors(readable.NewColors())), nil
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res, nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return res, nil
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, readable.WithColors(readable.NewColors()))
	}
	return res, nil
}

func (cfg *MainConfig) render(doc *ir.Document, f format.Format, w io.Writer) error {
	switch {
	case f.IsReadable():
		opts, err := cfg.readableOpts(w)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, readable.Format(doc, opts...))
		return err
	case f.IsCompact():
		_, err := io.WriteString(w, compact.Serialize(doc)+"\n")
		return err
	case f.IsBinary():
		_, err := w.Write(zero.Encode(doc, zero.Compressed(cfg.Z)))
		return err
	}
	return fmt.Errorf("%w: %v", format.ErrBadFormat, f)
}

type ConvertConfig struct {
	*MainConfig

	Convert *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}

type CacheConfig struct {
	*MainConfig

	Root string `cli:"name=root desc='project root directory'"`
	Dest string `cli:"name=dest desc='cache output directory'"`

	Cache *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Pretty bool `cli:"name=pretty desc='colorize the diff'"`

	Diff *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Section string `cli:"name=s aliases=section desc='section to filter'"`
	CountV  bool   `cli:"name=count desc='print the match count only'"`

	Filter *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='patch arg as string'"`
	File   bool `cli:"name=f desc='patch arg as file'"`
	MergeV bool `cli:"name=m aliases=merge desc='apply as merge patch'"`

	Patch *cli.Command
}
