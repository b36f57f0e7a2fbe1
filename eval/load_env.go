package eval

import (
	"fmt"
	"os"

	"github.com/iutf-format/iutf/debug"
	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/parse"
)

// EnvVars names the variable holding an IUTF document whose root entries
// become expression variables.
const EnvVars = "IUTF_EVAL_ENV"

// LoadEnv reads variables from $IUTF_EVAL_ENV. It returns nil when the
// variable is unset.
func LoadEnv() (map[string]any, error) {
	v := os.Getenv(EnvVars)
	if v == "" {
		return nil, nil
	}
	doc, err := parse.ParseString(v)
	if err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvVars, err)
	}
	defer doc.Release()
	vars, ok := ir.ToAny(doc).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("error decoding env $%s: wrong type %s", EnvVars, doc.Type)
	}
	if debug.Eval() {
		debug.Logf("loaded env from $%s: %s\n", EnvVars, vars)
	}
	return vars, nil
}
