package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iutf-format/iutf/ir"
)

var (
	ErrInvalid       = errors.New("validation failed")
	ErrNilRoot       = fmt.Errorf("%w: nil root", ErrInvalid)
	ErrRootNotBranch = fmt.Errorf("%w: root is not a branch", ErrInvalid)
	ErrFieldType     = fmt.Errorf("%w: wrong field type", ErrInvalid)
	ErrMissingField  = fmt.Errorf("%w: missing required field", ErrInvalid)
)

// ValidationErr reports a problem with one required field. Node is the
// offending entry for a type mismatch and the root for a missing field.
type ValidationErr struct {
	Field string
	Want  []ir.Type
	Node  *ir.Node
	Err   error
}

func (e *ValidationErr) Unwrap() error {
	return e.Err
}

func (e *ValidationErr) Error() string {
	want := typeNames(e.Want)
	if errors.Is(e.Err, ErrFieldType) && e.Node != nil {
		return fmt.Sprintf("%s: %q must be %s, got %s", e.Err, e.Field, want, e.Node.Type)
	}
	return fmt.Sprintf("%s: %q (%s)", e.Err, e.Field, want)
}

func typeNames(ts []ir.Type) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return strings.Join(names, " or ")
}
