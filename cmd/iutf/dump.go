package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/parse"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	inputs, err := cfg.inputs(args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, in := range inputs {
		d, err := readInput(cc, in)
		if err != nil {
			return err
		}
		if err := dumpSource(cc.Out, cfg.errOut(), in.name, d, cfg.useColor(cfg.errOut()), opts...); err != nil {
			return err
		}
		if i < len(inputs)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}

func dumpSource(w, ew io.Writer, name string, d []byte, colored bool, opts ...encode.EncodeOption) error {
	node, err := parse.Parse(d)
	if err != nil {
		reportErr(ew, name, err, colored)
		return cli.ExitCodeErr(1)
	}
	defer node.Release()
	if err := encode.Encode(node, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", name, err)
	}
	return nil
}
