package libdiff

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/ir"
)

// MarshalJSON encodes node as compact JSON.
func MarshalJSON(node *ir.Node) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MergePatch returns the JSON merge patch taking from to to. Duplicate
// keys collapse to their last entry, and characters compare as strings.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	a, err := MarshalJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := MarshalJSON(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("unable to create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyMergePatch applies a JSON merge patch to the JSON form of doc and
// returns the resulting JSON.
func ApplyMergePatch(doc *ir.Node, patch []byte) ([]byte, error) {
	d, err := MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("unable to apply merge patch: %w", err)
	}
	return res, nil
}
