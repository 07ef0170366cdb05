package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		doc, _, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if err := cfg.render(doc, cfg.outFormat(), cc.Out); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
	}
	return nil
}
