package main

import (
	"bytes"
	"context"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/token"
)

// tokenTypes and tokenModifiers form the legend advertised in Initialize.
// Semantic token data refers to them by index.
var (
	tokenTypes = []protocol.SemanticTokenTypes{
		protocol.SemanticTokenKeyword,
		protocol.SemanticTokenString,
		protocol.SemanticTokenNumber,
		protocol.SemanticTokenOperator,
		protocol.SemanticTokenProperty,
		protocol.SemanticTokenNamespace,
	}
	tokenModifiers = []protocol.SemanticTokenModifiers{
		protocol.SemanticTokenModifierDefinition,
	}
)

const (
	semKeyword uint32 = iota
	semString
	semNumber
	semOperator
	semProperty
	semNamespace
)

const modDefinition uint32 = 1 << 0

type semToken struct {
	off, end int
	typ      uint32
	mods     uint32
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(doc.posDoc, []byte(doc.content), scanSemanticTokens([]byte(doc.content))),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	start := byteOffset(doc.posDoc, params.Range.Start)
	end := byteOffset(doc.posDoc, params.Range.End)
	var in []semToken
	for _, st := range scanSemanticTokens([]byte(doc.content)) {
		if st.end > start && st.off < end {
			in = append(in, st)
		}
	}
	return &protocol.SemanticTokens{
		Data: encodeSemanticTokens(doc.posDoc, []byte(doc.content), in),
	}, nil
}

// scanSemanticTokens classifies the tokens of d in source order. It works
// from the lexer alone so documents which do not parse still get
// highlighting; lexical errors are skipped.
func scanSemanticTokens(d []byte) []semToken {
	var (
		res      []semToken
		lex      = token.NewLexer(d)
		inHeader = true
	)
	add := func(off, end int, typ, mods uint32) {
		if end > off {
			res = append(res, semToken{off: off, end: end, typ: typ, mods: mods})
		}
	}
	for {
		tok, err := lex.Next()
		if err != nil {
			continue
		}
		switch tok.Type {
		case token.TEOF:
			return res
		case token.TLCurl:
			inHeader = false
		case token.TIdentifier:
			if inHeader {
				add(tok.Off(), tok.End(), semNamespace, 0)
			} else {
				add(tok.Off(), tok.End(), semProperty, modDefinition)
			}
		case token.TString, token.TCharacter:
			add(tok.Off(), tok.End(), semString, 0)
		case token.TBigString:
			word := tok.Off() + len("BigString")
			add(tok.Off(), word, semKeyword, 0)
			add(word, tok.End(), semString, 0)
		case token.TInteger, token.TFloat, token.TLong:
			add(tok.Off(), tok.End(), semNumber, 0)
		case token.TTrue, token.TFalse, token.TNull:
			add(tok.Off(), tok.End(), semKeyword, 0)
		case token.TColon, token.TEquals, token.TComma:
			add(tok.Off(), tok.End(), semOperator, 0)
		case token.TPipe:
			end := pipeEnd(lex)
			add(tok.Off(), end, semString, 0)
		}
	}
}

// pipeEnd consumes tokens through the closing '|' of a pipe string and
// returns the offset after it, or the end of input.
func pipeEnd(lex *token.Lexer) int {
	for {
		tok, err := lex.Next()
		if err != nil {
			continue
		}
		switch tok.Type {
		case token.TEOF:
			return tok.Off()
		case token.TPipe:
			return tok.End()
		}
	}
}

// encodeSemanticTokens produces the relative encoding of toks. Tokens which
// span lines are split since not every client accepts multiline tokens.
func encodeSemanticTokens(pd *token.PosDoc, d []byte, toks []semToken) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	emit := func(off, end int, typ, mods uint32) {
		start := lspPosition(pd, off)
		length := uint32(utf16Len(d[off:end]))
		if length == 0 {
			return
		}
		deltaChar := start.Character
		if start.Line == prevLine {
			deltaChar -= prevChar
		}
		data = append(data, start.Line-prevLine, deltaChar, length, typ, mods)
		prevLine, prevChar = start.Line, start.Character
	}
	for _, st := range toks {
		off := st.off
		for off < st.end {
			nl := bytes.IndexByte(d[off:st.end], '\n')
			if nl < 0 {
				emit(off, st.end, st.typ, st.mods)
				break
			}
			emit(off, off+nl, st.typ, st.mods)
			off += nl + 1
		}
	}
	return data
}
