package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/ir"
)

const hoverValueMax = 50

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	off := byteOffset(doc.posDoc, params.Position)
	node := findNodeAt(doc, off)
	if node == nil {
		return nil, nil
	}
	text := buildHoverText(node)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// findNodeAt returns the node starting on the same line as off which is
// closest to it, preferring nodes that start at or before off.
func findNodeAt(doc *document, off int) *ir.Node {
	line, _ := doc.posDoc.LineCol(off)
	var (
		best     *ir.Node
		bestDist int
	)
	doc.node.Walk(func(n *ir.Node) bool {
		p := doc.positions[n]
		if p == nil || p.Line() != line {
			return true
		}
		dist := off - p.I
		if dist < 0 {
			// after the cursor
			dist = len(doc.content) - dist
		}
		if best == nil || dist < bestDist {
			best, bestDist = n, dist
		}
		return true
	})
	return best
}

func buildHoverText(node *ir.Node) string {
	if node == nil {
		return ""
	}
	parts := []string{fmt.Sprintf("**Type:** %s", node.Type)}
	if node.Parent != nil && node.Parent.Type == ir.BranchType {
		parts = append(parts, fmt.Sprintf("**Key:** `%s`", node.Key))
	}
	parts = append(parts, fmt.Sprintf("**Path:** `%s`", node.Path()))
	if v := valueInfo(node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "`null`"
	case ir.BoolType:
		return "`" + strconv.FormatBool(node.Bool) + "`"
	case ir.IntegerType, ir.LongType:
		return fmt.Sprintf("`%d`", node.Int64)
	case ir.FloatType:
		return fmt.Sprintf("`%g`", node.Float64)
	case ir.CharacterType:
		return fmt.Sprintf("`%q`", node.Char)
	case ir.StringType, ir.BigStringType, ir.PipeStringType:
		val := node.String
		if len(val) > hoverValueMax {
			val = val[:hoverValueMax] + "..."
		}
		return fmt.Sprintf("`%s`", strings.ReplaceAll(val, "`", "'"))
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.BranchType:
		return fmt.Sprintf("branch with %d keys", len(node.Values))
	}
	return ""
}
