package main

import (
	"fmt"

	"github.com/najmus-sakib-hossain/dx-go/format"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		doc, _, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := cfg.render(doc, format.ReadableFormat, cc.Out); err != nil {
			return fmt.Errorf("error rendering %s: %w", arg, err)
		}
	}
	return nil
}
