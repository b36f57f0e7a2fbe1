package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/internal/logging"
	"github.com/iutf-format/iutf/parse"
	"github.com/iutf-format/iutf/token"
	"github.com/iutf-format/iutf/validate"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	inputs, err := cfg.inputs(args)
	if err != nil {
		return err
	}
	ew := cfg.errOut()
	ok := true
	for _, in := range inputs {
		d, err := readInput(cc, in)
		if err != nil {
			cfg.logger().Error("cannot read input", logging.FieldPath, in.name, logging.FieldError, err)
			ok = false
			continue
		}
		if len(inputs) > 1 && !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s:\n", in.name)
		}
		if !checkSource(cfg.resultWriter(cc.Out), ew, in.name, d, cfg.useColor(ew)) {
			ok = false
		}
	}
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// resultWriter returns where per document outcomes go: out, or nowhere
// with -q. Diagnostics are written regardless.
func (cfg *CheckConfig) resultWriter(out io.Writer) io.Writer {
	if cfg.Quiet {
		return io.Discard
	}
	return out
}

// checkSource parses and validates d, writing the outcome to w and
// diagnostics to ew. It reports whether both steps passed.
func checkSource(w, ew io.Writer, name string, d []byte, colored bool) bool {
	pos := map[*ir.Node]*token.Pos{}
	node, err := parse.Parse(d, parse.ParsePositions(pos))
	if err != nil {
		reportErr(ew, name, err, colored)
		fmt.Fprintln(ew, "Parse failed")
		return false
	}
	defer node.Release()
	fmt.Fprintln(w, "Parse successful!")
	err = validate.Validate(node)
	if err == nil {
		fmt.Fprintln(w, "Validation passed!")
		return true
	}
	ves := validate.Errors(err)
	if len(ves) == 0 {
		fmt.Fprintf(ew, "%s: %s\n", name, err)
	}
	for _, ve := range ves {
		p := pos[ve.Node]
		if p == nil {
			fmt.Fprintf(ew, "%s: %s\n", name, ve)
			continue
		}
		fmt.Fprintf(ew, "%s: %s", name, token.Diagnostic(p, ve.Error(), colored))
	}
	fmt.Fprintln(w, "Validation failed!")
	return false
}

func reportErr(ew io.Writer, name string, err error, colored bool) {
	if msg, ok := token.ErrorDiagnostic(err, colored); ok {
		fmt.Fprintf(ew, "%s: %s", name, msg)
		return
	}
	fmt.Fprintf(ew, "%s: %s\n", name, err)
}
