package main

import (
	"fmt"
	"os"

	"github.com/najmus-sakib-hossain/dx-go/patch"

	"github.com/scott-cotton/cli"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	if cfg.String && cfg.File {
		return fmt.Errorf("%w: -s and -f are mutually exclusive", cli.ErrUsage)
	}
	patchData := []byte(args[0])
	if !cfg.String {
		// default: treat an existing file as a file, like -f
		d, err := os.ReadFile(args[0])
		if err == nil {
			patchData = d
		} else if cfg.File {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	for _, arg := range orStdin(args[1:]) {
		doc, f, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		apply := patch.Apply
		if cfg.MergeV {
			apply = patch.Merge
		}
		res, err := apply(doc, patchData)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
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
