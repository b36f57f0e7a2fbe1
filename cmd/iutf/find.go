package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/internal/logging"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires at least one module name", cli.ErrUsage)
	}
	r := cfg.resolver()
	missing := 0
	for _, name := range args {
		p, err := r.Find(name)
		if err != nil {
			cfg.logger().Error("module lookup failed", logging.FieldModule, name, logging.FieldError, err)
			missing++
			continue
		}
		fmt.Fprintln(cc.Out, p)
	}
	if missing > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
