package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	dx "github.com/najmus-sakib-hossain/dx-go"
	"github.com/najmus-sakib-hossain/dx-go/format"
	"github.com/najmus-sakib-hossain/dx-go/ir"

	"github.com/scott-cotton/cli"
)

func dxMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.R, cfg.C, cfg.B) > 1 {
		return fmt.Errorf("%w: must specify at most one of -r[eadable] -c[ompact] -b[inary]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readArg reads a file argument, with "-" meaning stdin.
func readArg(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", arg, err)
	}
	return d, nil
}

// loadArg reads and parses a document argument in the configured or
// detected input surface.
func loadArg(cfg *MainConfig, arg string) (*ir.Document, format.Format, error) {
	data, err := readArg(arg)
	if err != nil {
		return nil, 0, err
	}
	f := cfg.inFormat(data, dx.Detect)
	doc, err := dx.Parse(data, f)
	if err != nil {
		return nil, 0, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return doc, f, nil
}

func orStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
