package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/internal/logging"
)

// input is a document named on the command line. A path of "-" is stdin.
type input struct {
	name string
	path string
}

func (cfg *MainConfig) inputs(args []string) ([]input, error) {
	if len(args) == 0 {
		return []input{{name: "<stdin>", path: "-"}}, nil
	}
	res := make([]input, 0, len(args))
	for _, arg := range args {
		if !cfg.Modules || arg == "-" {
			res = append(res, input{name: arg, path: arg})
			continue
		}
		p, err := cfg.resolver().Find(arg)
		if err != nil {
			return nil, err
		}
		cfg.logger().Debug("resolved module", logging.FieldModule, arg, logging.FieldPath, p)
		res = append(res, input{name: arg, path: p})
	}
	return res, nil
}

func readInput(cc *cli.Context, in input) ([]byte, error) {
	var r io.Reader
	if in.path != "-" {
		f, err := os.Open(in.path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", in.name, err)
	}
	return d, nil
}
