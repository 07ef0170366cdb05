package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/najmus-sakib-hossain/dx-go/query"

	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires an expression argument", cli.ErrUsage)
	}
	if cfg.Section == "" {
		return fmt.Errorf("%w: filter requires -s <section>", cli.ErrUsage)
	}
	sec, n := utf8.DecodeRuneInString(cfg.Section)
	if n != len(cfg.Section) {
		return fmt.Errorf("%w: section must be a single character, got %q", cli.ErrUsage, cfg.Section)
	}
	expression := args[0]
	for _, arg := range orStdin(args[1:]) {
		doc, f, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if cfg.CountV {
			n, err := query.Count(doc, sec, expression)
			if err != nil {
				return fmt.Errorf("error filtering %s: %w", arg, err)
			}
			fmt.Fprintf(cc.Out, "%d\n", n)
			continue
		}
		res, err := query.Filter(doc, sec, expression)
		if err != nil {
			return fmt.Errorf("error filtering %s: %w", arg, err)
		}
		of := f
		if cfg.OutFormat != nil {
			of = *cfg.OutFormat
		}
		if err := cfg.render(res, of, cc.Out); err != nil {
			return fmt.Errorf("error encoding result for %s: %w", arg, err)
		}
	}
	return nil
}
