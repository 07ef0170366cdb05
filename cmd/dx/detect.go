package main

import (
	"fmt"

	dx "github.com/najmus-sakib-hossain/dx-go"

	"github.com/scott-cotton/cli"
)

func detect(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, arg := range orStdin(args) {
		data, err := readArg(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s: %s\n", arg, dx.Detect(data))
	}
	return nil
}
