package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/ir"
)

const documentHeader = "iutf:init:main "

type EncState struct {
	depth, indent int
	format        format.Format
	wire          bool

	Color func(ir.Type, ColorAttr, string) string
}

// style holds the spelling of keys and scalars in one text format.
type style interface {
	key(k string) (string, error)
	scalar(n *ir.Node) (string, error)
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return fmt.Errorf("%w: nil node", ErrEncoding)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w)
	}
	var st style
	switch es.format {
	case format.IUTFFormat:
		st = iutfStyle{}
	case format.JSONFormat:
		st = jsonStyle{}
	default:
		st = debugStyle{}
	}
	buf := &bytes.Buffer{}
	if es.format.IsIUTF() && node.Parent == nil && node.Type == ir.BranchType {
		buf.WriteString(documentHeader)
	}
	if err := encode(node, buf, st, es); err != nil {
		return err
	}
	if !es.wire {
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func encode(node *ir.Node, buf *bytes.Buffer, st style, es *EncState) error {
	switch node.Type {
	case ir.BranchType:
		return encodeContainer(node, buf, st, es, "{", "}")
	case ir.ArrayType:
		return encodeContainer(node, buf, st, es, "[", "]")
	}
	s, err := st.scalar(node)
	if err != nil {
		return fmt.Errorf("%w at %s", err, node.Path())
	}
	writeColored(buf, es, node.Type, ValueColor, s)
	return nil
}

func encodeContainer(node *ir.Node, buf *bytes.Buffer, st style, es *EncState, open, close string) error {
	writeColored(buf, es, node.Type, SepColor, open)
	if len(node.Values) == 0 {
		writeColored(buf, es, node.Type, SepColor, close)
		return nil
	}
	es.depth++
	for i, child := range node.Values {
		if i > 0 {
			writeColored(buf, es, node.Type, SepColor, ",")
		}
		writeNL(buf, es)
		if node.Type == ir.BranchType {
			k, err := st.key(child.Key)
			if err != nil {
				return fmt.Errorf("%w at %s", err, child.Path())
			}
			writeColored(buf, es, node.Type, FieldColor, k)
			sep := ": "
			if es.wire {
				sep = ":"
			}
			writeColored(buf, es, node.Type, SepColor, sep)
		}
		if err := encode(child, buf, st, es); err != nil {
			return err
		}
	}
	es.depth--
	writeNL(buf, es)
	writeColored(buf, es, node.Type, SepColor, close)
	return nil
}

func writeNL(buf *bytes.Buffer, es *EncState) {
	if es.wire {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func writeColored(buf *bytes.Buffer, es *EncState, t ir.Type, a ColorAttr, s string) {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	buf.WriteString(s)
}
