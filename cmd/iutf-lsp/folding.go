package main

import (
	"context"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/token"
)

func (s *Server) FoldingRanges(ctx context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return foldingRanges([]byte(doc.content), doc.posDoc), nil
}

// foldingRanges pairs brackets with a stack and reports those spanning
// more than one line. Unbalanced brackets are ignored.
func foldingRanges(d []byte, pd *token.PosDoc) []protocol.FoldingRange {
	var (
		res   []protocol.FoldingRange
		stack []token.Token
		lex   = token.NewLexer(d)
	)
	for {
		tok, err := lex.Next()
		if err != nil {
			continue
		}
		switch tok.Type {
		case token.TEOF:
			return res
		case token.TLCurl, token.TLSquare:
			stack = append(stack, tok)
		case token.TRCurl, token.TRSquare:
			if len(stack) == 0 {
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if (open.Type == token.TLCurl) != (tok.Type == token.TRCurl) {
				continue
			}
			start, end := lspPosition(pd, open.Off()), lspPosition(pd, tok.Off())
			if end.Line > start.Line {
				res = append(res, protocol.FoldingRange{
					StartLine: start.Line,
					EndLine:   end.Line,
				})
			}
		case token.TPipe:
			pipeEnd(lex)
		}
	}
}
