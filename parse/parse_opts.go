package parse

import (
	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions records in m the position of the first token of every
// node produced by the parse. When the parse fails, m may still hold
// entries for nodes that were built and then released.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
