// Package token provides tokenization support for IUTF documents.
//
// A [Lexer] scans an immutable input buffer one [Token] at a time. Tokens
// never copy input: [Token.Bytes] is a sub-slice of the buffer handed to
// [NewLexer], which must not be modified while tokens are in use.
//
// Comments (`#!`, `//` and `/* */`) are skipped. The multi-line
// `BigString[ ... ]` form is returned as a single [TBigString] token.
//
// Lexical errors are returned as a [TError] token together with a
// [*TokenizeErr]. [Diagnostic] renders any positioned error as the offending
// source line with a caret marker underneath.
package token
