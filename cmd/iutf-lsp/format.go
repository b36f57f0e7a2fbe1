package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/internal/logging"
	"github.com/iutf-format/iutf/token"
)

const defaultTabSize = 2

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	if hasComments([]byte(doc.content)) {
		logging.FromContext(ctx).Debug("not formatting document with comments", logging.FieldURI, doc.uri)
		return nil, nil
	}
	indent := int(params.Options.TabSize)
	if indent <= 0 {
		indent = defaultTabSize
	}
	formatted, err := formatDocument(doc, indent)
	if err != nil {
		logging.FromContext(ctx).Warn("cannot format document", logging.FieldURI, doc.uri, logging.FieldError, err)
		return nil, nil
	}
	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}
	return []protocol.TextEdit{{
		Range:   lspRange(doc.posDoc, 0, len(doc.content)),
		NewText: formatted,
	}}, nil
}

func formatDocument(doc *document, indent int) (string, error) {
	buf := &bytes.Buffer{}
	err := encode.Encode(doc.node, buf,
		encode.EncodeFormat(format.IUTFFormat),
		encode.Indent(indent),
	)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// hasComments reports whether d holds text the lexer skips other than
// whitespace. Raw text inside pipe strings is not examined.
func hasComments(d []byte) bool {
	lex := token.NewLexer(d)
	last := 0
	for {
		tok, err := lex.Next()
		if err != nil {
			return true
		}
		if len(bytes.TrimSpace(d[last:tok.Off()])) != 0 {
			return true
		}
		switch tok.Type {
		case token.TEOF:
			return false
		case token.TPipe:
			last = pipeEnd(lex)
		default:
			last = tok.End()
		}
	}
}
