// Package eval evaluates expr-lang expressions against IUTF documents.
//
// The entries of the root branch are variables, so with a document
// holding "title" and "version" the expression
//
//	version >= 2 && title != ""
//
// is valid. The whole document is also available as doc, and the
// functions getpath, exists, kind and getenv look up nodes by path and
// read the environment.
package eval

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/iutf-format/iutf/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			n, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return ir.ToAny(n), nil
		},
			new(func(string) any)),
		expr.Function("exists", func(params ...any) (any, error) {
			_, err := doc.GetPath(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			n, err := doc.GetPath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return n.Type.String(), nil
		},
			new(func(string) string)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// EnvOption adds to the variables of an expression.
type EnvOption func(env map[string]any)

// Vars adds vars to the environment, replacing document entries with the
// same name.
func Vars(vars map[string]any) EnvOption {
	return func(env map[string]any) {
		maps.Copy(env, vars)
	}
}

// Env returns the variables an expression sees for doc.
func Env(doc *ir.Node, opts ...EnvOption) map[string]any {
	env := map[string]any{}
	all := ir.ToAny(doc)
	if m, ok := all.(map[string]any); ok {
		maps.Copy(env, m)
	}
	env["doc"] = all
	for _, opt := range opts {
		opt(env)
	}
	return env
}

func Compile(doc *ir.Node, src string, opts ...EnvOption) (*vm.Program, error) {
	eOpts := append(exprOpts(doc), expr.Env(Env(doc, opts...)))
	prog, err := expr.Compile(src, eOpts...)
	if err != nil {
		return nil, fmt.Errorf("unable to compile %q: %w", src, err)
	}
	return prog, nil
}

// Eval compiles src and runs it against doc.
func Eval(doc *ir.Node, src string, opts ...EnvOption) (any, error) {
	prog, err := Compile(doc, src, opts...)
	if err != nil {
		return nil, err
	}
	res, err := expr.Run(prog, Env(doc, opts...))
	if err != nil {
		return nil, fmt.Errorf("unable to evaluate %q: %w", src, err)
	}
	return res, nil
}

// ToNode converts an expression result to a tree. Map entries are added
// in key order.
func ToNode(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%d overflows a 64-bit integer", x)
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		res := ir.NewArray()
		for _, e := range x {
			n, err := ToNode(e)
			if err != nil {
				res.Release()
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		res := ir.NewBranch()
		for _, k := range slices.Sorted(maps.Keys(x)) {
			n, err := ToNode(x[k])
			if err != nil {
				res.Release()
				return nil, err
			}
			if err := res.Add(k, n); err != nil {
				res.Release()
				return nil, err
			}
		}
		return res, nil
	}
	return nil, fmt.Errorf("cannot convert %T to a node", v)
}
