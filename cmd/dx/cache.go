package main

import (
	"context"
	"fmt"

	"github.com/najmus-sakib-hossain/dx-go/cache"
	"github.com/najmus-sakib-hossain/dx-go/zero"

	"github.com/scott-cotton/cli"
)

func cacheRun(cfg *CacheConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cache.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: cache requires at least one source file", cli.ErrUsage)
	}
	gen := cache.New(cfg.Root, cfg.Dest,
		cache.WithBinaryOptions(zero.Compressed(cfg.Z)))
	for _, arg := range args {
		doc, _, err := loadArg(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := gen.Generate(context.Background(), arg, doc)
		if err != nil {
			return fmt.Errorf("error caching %s: %w", arg, err)
		}
		fmt.Fprintf(cc.Out, "%s -> %s %s\n", arg, res.CompactPath, res.BinaryPath)
	}
	return nil
}
