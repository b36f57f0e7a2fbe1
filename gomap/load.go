// Package gomap loads IUTF documents into Go values.
//
// Values are filled through the JSON projection of the document, so the
// usual encoding/json struct tags apply:
//
//	type Config struct {
//		Title   string  `json:"title"`
//		Version float64 `json:"version"`
//	}
//
// Characters, BigStrings and PipeStrings load as Go strings.
package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/parse"
	"github.com/iutf-format/iutf/validate"
)

type loadOpts struct {
	validate bool
	strict   bool
}

type LoadOption func(*loadOpts)

// LoadValidate checks the document's required fields before loading.
func LoadValidate(v bool) LoadOption { return func(o *loadOpts) { o.validate = v } }

// LoadStrict makes keys without a matching struct field an error.
func LoadStrict(v bool) LoadOption { return func(o *loadOpts) { o.strict = v } }

// IRFromer is implemented by values which load themselves from a tree.
type IRFromer interface {
	FromIR(*ir.Node) error
}

// Load parses d and stores the result in the value pointed to by p.
func Load(d []byte, p any, opts ...LoadOption) error {
	node, err := parse.Parse(d)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	defer node.Release()
	return FromIR(node, p, opts...)
}

// FromIR stores node in the value pointed to by p.
func FromIR(node *ir.Node, p any, opts ...LoadOption) error {
	lo := &loadOpts{}
	for _, opt := range opts {
		opt(lo)
	}
	if node == nil {
		return fmt.Errorf("%w: %w", ErrLoad, ir.ErrNilNode)
	}
	if lo.validate {
		if err := validate.Validate(node); err != nil {
			return fmt.Errorf("%w: %w", ErrLoad, err)
		}
	}
	if x, ok := p.(IRFromer); ok {
		return x.FromIR(node)
	}
	buf := bytes.NewBuffer(nil)
	err := encode.Encode(node, buf, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoad, err)
	}
	dec := json.NewDecoder(buf)
	if lo.strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("%w into %T: %w", ErrLoad, p, err)
	}
	return nil
}
