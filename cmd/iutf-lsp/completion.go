package main

import (
	"context"
	"errors"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/validate"
)

const headerSnippet = "iutf:init:main {\n\ttitle: \"$1\",\n\tversion: ${2:1.0}\n}\n"

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	off := byteOffset(doc.posDoc, params.Position)
	return &protocol.CompletionList{
		Items: completions(doc, off),
	}, nil
}

// completions offers items for the cursor at byte offset off, chosen by
// the last non blank character before it.
func completions(doc *document, off int) []protocol.CompletionItem {
	before := strings.TrimRight(doc.content[:off], " \t")
	if strings.TrimSpace(before) == "" && !strings.Contains(doc.content, "{") {
		return []protocol.CompletionItem{{
			Label:            "iutf:init:main",
			Kind:             protocol.CompletionItemKindSnippet,
			InsertText:       headerSnippet,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: "Document header with the required fields",
			},
		}}
	}
	items := []protocol.CompletionItem{}
	if strings.HasSuffix(before, ":") || strings.HasSuffix(before, "[") {
		return append(items, valueItems()...)
	}
	if before == "" || strings.HasSuffix(before, "\n") || strings.HasSuffix(before, "{") || strings.HasSuffix(before, ",") {
		items = append(items, missingFieldItems(doc)...)
	}
	return items
}

func valueItems() []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	for _, kw := range []string{"true", "false", "null"} {
		items = append(items, protocol.CompletionItem{
			Label:      kw,
			Kind:       protocol.CompletionItemKindKeyword,
			InsertText: kw,
		})
	}
	for _, sn := range []struct{ label, text, doc string }{
		{"branch", "{$0}", "Nested branch"},
		{"array", "[$0]", "Array of values"},
		{"BigString", "BigString[$0]", "Raw text up to the matching ']'"},
		{"pipe string", "|$0|", "Raw text up to the next '|'"},
	} {
		items = append(items, protocol.CompletionItem{
			Label:            sn.label,
			Kind:             protocol.CompletionItemKindSnippet,
			InsertText:       sn.text,
			InsertTextFormat: protocol.InsertTextFormatSnippet,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: sn.doc,
			},
		})
	}
	return items
}

// missingFieldItems offers the required root fields that doc lacks. A
// document which does not parse gets none.
func missingFieldItems(doc *document) []protocol.CompletionItem {
	if doc.node == nil {
		return nil
	}
	items := []protocol.CompletionItem{}
	for _, ve := range validate.Errors(validate.Validate(doc.node)) {
		if !errors.Is(ve, validate.ErrMissingField) {
			continue
		}
		items = append(items, protocol.CompletionItem{
			Label:            ve.Field,
			Kind:             protocol.CompletionItemKindField,
			Detail:           "required",
			InsertText:       ve.Field + ": " + placeholder(ve.Want),
			InsertTextFormat: protocol.InsertTextFormatSnippet,
		})
	}
	return items
}

func placeholder(want []ir.Type) string {
	if len(want) == 0 {
		return "$0"
	}
	switch want[0] {
	case ir.StringType:
		return "\"$0\""
	case ir.FloatType:
		return "${0:1.0}"
	case ir.IntegerType, ir.LongType:
		return "${0:0}"
	}
	return "$0"
}
