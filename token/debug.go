package token

import (
	"fmt"
	"io"
)

// PrintTokens writes one line per token in the form
// "[line:col] KIND: 'text'".
func PrintTokens(w io.Writer, toks []Token) error {
	for i := range toks {
		t := &toks[i]
		line, col := t.Pos.LineCol()
		if _, err := fmt.Fprintf(w, "[%d:%d] %s: '%s'\n", line, col, t.Type, t.Bytes); err != nil {
			return err
		}
	}
	return nil
}
