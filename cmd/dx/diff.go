package main

import (
	"fmt"
	"io"

	"github.com/najmus-sakib-hossain/dx-go/docdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires exactly two arguments", cli.ErrUsage)
	}
	from, _, err := loadArg(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, _, err := loadArg(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	if !docdiff.Changed(from, to) {
		return nil
	}
	out := docdiff.Unified(from, to)
	if cfg.Pretty {
		out = docdiff.Pretty(from, to)
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
