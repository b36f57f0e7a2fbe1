package main

import (
	"context"
	"errors"

	"go.lsp.dev/protocol"

	"github.com/iutf-format/iutf/internal/logging"
	"github.com/iutf-format/iutf/token"
	"github.com/iutf-format/iutf/validate"
)

const diagnosticSource = "iutf"

func (s *Server) publishDiagnostics(ctx context.Context, doc *document) {
	diagnostics := documentDiagnostics(doc)
	logging.FromContext(ctx).Debug("publishing diagnostics",
		logging.FieldURI, doc.uri, logging.FieldCount, len(diagnostics))
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(doc.uri),
		Diagnostics: diagnostics,
	})
	if err != nil {
		logging.FromContext(ctx).Warn("cannot publish diagnostics",
			logging.FieldURI, doc.uri, logging.FieldError, err)
	}
}

// documentDiagnostics reports the parse error of doc or, for a document that
// parses, every validation failure.
func documentDiagnostics(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.err != nil {
		return append(diagnostics, errorDiagnostic(doc, doc.err))
	}
	err := validate.Validate(doc.node)
	if err == nil {
		return diagnostics
	}
	ves := validate.Errors(err)
	if len(ves) == 0 {
		return append(diagnostics, errorDiagnostic(doc, err))
	}
	for _, ve := range ves {
		d := errorDiagnostic(doc, ve)
		if p := doc.positions[ve.Node]; p != nil {
			d.Range = lspRange(doc.posDoc, p.I, p.I+1)
		}
		diagnostics = append(diagnostics, d)
	}
	return diagnostics
}

func errorDiagnostic(doc *document, err error) protocol.Diagnostic {
	d := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Source:   diagnosticSource,
		Message:  err.Error(),
	}
	var pe token.Positioned
	if errors.As(err, &pe) && pe.Position() != nil {
		off := pe.Position().I
		d.Range = lspRange(doc.posDoc, off, min(off+1, len(doc.content)))
		if inner := errors.Unwrap(pe); inner != nil {
			d.Message = inner.Error()
		}
	}
	return d
}
