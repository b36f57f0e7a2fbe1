// Package parse parses IUTF documents into [ir.Node] trees.
//
// # Usage
//
//	node, err := parse.Parse(data)
//	if err != nil {
//	    return err
//	}
//	defer node.Release()
//
//	// record the source position of every node
//	pos := map[*ir.Node]*token.Pos{}
//	node, err = parse.ParseString(text, parse.ParsePositions(pos))
//
// A document is the header "iutf : init : main" followed by a branch. The
// parser is a recursive descent parser over a [token.Lexer] with a single
// token of lookahead. BigString bodies are taken from the raw source, after
// which the lexer resumes just past the closing bracket.
//
// The first error aborts the parse. Errors carry a source position and may
// be rendered with [token.ErrorDiagnostic]. No partial tree is returned.
//
// # Related Packages
//
//   - github.com/iutf-format/iutf/ir - tree representation
//   - github.com/iutf-format/iutf/token - tokenization
//   - github.com/iutf-format/iutf/validate - required field checks
package parse
