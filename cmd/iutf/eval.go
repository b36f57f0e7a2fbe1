package main

import (
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/eval"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/parse"
)

func iutfEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	src := args[0]
	inputs, err := cfg.inputs(args[1:])
	if err != nil {
		return err
	}
	vars, err := eval.LoadEnv()
	if err != nil {
		return err
	}
	if vars == nil {
		vars = map[string]any{}
	}
	maps.Copy(vars, cfg.Env)
	opts := cfg.resultOpts(cc.Out)
	for i, in := range inputs {
		d, err := readInput(cc, in)
		if err != nil {
			return err
		}
		if err := evalSource(cc.Out, cfg.errOut(), in.name, d, src, vars, cfg.useColor(cfg.errOut()), opts...); err != nil {
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

// resultOpts encodes results as JSON unless -f was given, since many
// results, such as negative numbers, have no IUTF form.
func (cfg *EvalConfig) resultOpts(w io.Writer) []encode.EncodeOption {
	opts := cfg.encOpts(w)
	if cfg.OutFormat == nil {
		opts = append(opts, encode.EncodeFormat(format.JSONFormat))
	}
	return opts
}

func evalSource(w, ew io.Writer, name string, d []byte, src string, env map[string]any, colored bool, opts ...encode.EncodeOption) error {
	doc, err := parse.Parse(d)
	if err != nil {
		reportErr(ew, name, err, colored)
		return cli.ExitCodeErr(1)
	}
	defer doc.Release()
	v, err := eval.Eval(doc, src, eval.Vars(env))
	if err != nil {
		return fmt.Errorf("error evaluating %s: %w", name, err)
	}
	res, err := eval.ToNode(v)
	if err != nil {
		return err
	}
	defer res.Release()
	return encode.Encode(res, w, opts...)
}

// envFunc sets a variable from name=val, creating maps along a dotted name.
func envFunc(env map[string]any, a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok {
		return fmt.Errorf("%w: argument %q expected name=val", cli.ErrUsage, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot set %s, not a map", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
