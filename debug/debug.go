// Package debug provides environment gated tracing for the lexer, parser
// and include resolver.
//
// Tracing is controlled by the variables IUTF_DEBUG_LEX, IUTF_DEBUG_PARSE,
// IUTF_DEBUG_INCLUDE and IUTF_DEBUG_EVAL, read once at program start.
package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
)

type debug struct {
	Lex     bool
	Parse   bool
	Include bool
	Eval    bool
}

var (
	d  *debug
	mu sync.Mutex
	w  io.Writer = os.Stderr
)

func init() {
	d = &debug{}
	d.Lex = boolEnv("IUTF_DEBUG_LEX")
	d.Parse = boolEnv("IUTF_DEBUG_PARSE")
	d.Include = boolEnv("IUTF_DEBUG_INCLUDE")
	d.Eval = boolEnv("IUTF_DEBUG_EVAL")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Lex() bool {
	return d.Lex
}
func Parse() bool {
	return d.Parse
}
func Include() bool {
	return d.Include
}
func Eval() bool {
	return d.Eval
}

// SetOutput redirects trace output, returning the previous writer.
func SetOutput(out io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := w
	w = out
	return prev
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		default:
		}
	}
	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(w, msg, args...)
}
