package validate

import (
	"errors"
	"slices"

	"github.com/iutf-format/iutf/ir"
)

type field struct {
	key   string
	types []ir.Type
}

var required = []field{
	{key: "title", types: []ir.Type{ir.StringType}},
	{key: "version", types: []ir.Type{ir.FloatType, ir.IntegerType}},
}

// Validate checks root in one pass over its direct children. The first
// entry with a required key and the wrong type is reported, and presence of
// every required key is still gathered; the result joins the type mismatch
// with one error per missing key. A nil result means root is valid.
func Validate(root *ir.Node) error {
	if root == nil {
		return ErrNilRoot
	}
	if root.Type != ir.BranchType {
		return ErrRootNotBranch
	}
	seen := make([]bool, len(required))
	var typeErr error
	for _, child := range root.Values {
		for i := range required {
			f := &required[i]
			if child.Key != f.key {
				continue
			}
			seen[i] = true
			if typeErr == nil && !slices.Contains(f.types, child.Type) {
				typeErr = &ValidationErr{Field: f.key, Want: f.types, Node: child, Err: ErrFieldType}
			}
		}
	}
	errs := []error{typeErr}
	for i, ok := range seen {
		if !ok {
			errs = append(errs, &ValidationErr{
				Field: required[i].key,
				Want:  required[i].types,
				Node:  root,
				Err:   ErrMissingField,
			})
		}
	}
	return errors.Join(errs...)
}

// Errors returns the individual field errors held in err.
func Errors(err error) []*ValidationErr {
	if err == nil {
		return nil
	}
	var res []*ValidationErr
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range j.Unwrap() {
			res = append(res, Errors(e)...)
		}
		return res
	}
	var ve *ValidationErr
	if errors.As(err, &ve) {
		res = append(res, ve)
	}
	return res
}
