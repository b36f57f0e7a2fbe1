package main

import (
	"unicode/utf8"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/token"
)

// lspPosition converts byte offset off into a zero based LSP position whose
// character counts UTF-16 code units.
func lspPosition(pd *token.PosDoc, off int) protocol.Position {
	line, col := pd.LineCol(off)
	text := pd.Line(line)
	return protocol.Position{
		Line:      uint32(line - 1),
		Character: uint32(utf16Len(text[:min(col-1, len(text))])),
	}
}

// byteOffset is the inverse of lspPosition. Positions past the end of a
// line are clamped to it.
func byteOffset(pd *token.PosDoc, p protocol.Position) int {
	line := int(p.Line) + 1
	text := pd.Line(line)
	col, units := 0, 0
	for col < len(text) && units < int(p.Character) {
		r, n := utf8.DecodeRune(text[col:])
		col += n
		units++
		if r >= 0x10000 {
			units++
		}
	}
	return pd.Offset(line, col+1)
}

func lspRange(pd *token.PosDoc, start, end int) protocol.Range {
	return protocol.Range{
		Start: lspPosition(pd, start),
		End:   lspPosition(pd, end),
	}
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		n++
		if r >= 0x10000 {
			n++
		}
	}
	return n
}
