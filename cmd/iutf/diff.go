package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/libdiff"
	"github.com/iutf-format/iutf/parse"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	inputs, err := cfg.inputs(args)
	if err != nil {
		return err
	}
	var docs [2]*ir.Node
	for i, in := range inputs {
		d, err := readInput(cc, in)
		if err != nil {
			return err
		}
		docs[i], err = parse.Parse(d)
		if err != nil {
			reportErr(cfg.errOut(), in.name, err, cfg.useColor(cfg.errOut()))
			return cli.ExitCodeErr(1)
		}
		defer docs[i].Release()
	}
	differs, err := diffDocs(cc.Out, docs[0], docs[1], cfg.Merge, cfg.useColor(cc.Out))
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs writes the difference between a and b to w and reports whether
// there was one.
func diffDocs(w io.Writer, a, b *ir.Node, merge, colored bool) (bool, error) {
	if merge {
		patch, err := libdiff.MergePatch(a, b)
		if err != nil {
			return false, err
		}
		if bytes.Equal(bytes.TrimSpace(patch), []byte("{}")) {
			return false, nil
		}
		_, err = fmt.Fprintf(w, "%s\n", patch)
		return true, err
	}
	diffs, err := libdiff.Diff(a, b)
	if err != nil {
		return false, err
	}
	if libdiff.Equal(diffs) {
		return false, nil
	}
	_, err = io.WriteString(w, libdiff.Format(diffs, colored))
	return true, err
}
