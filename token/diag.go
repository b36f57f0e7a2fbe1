package token

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Diagnostic renders msg at p as a header with the line and column, the
// offending source line, and a run of carets as long as msg placed under
// the column. When colored is set the numbers and carets carry ANSI colours.
//
// If the source line is empty only the header is returned.
func Diagnostic(p *Pos, msg string, colored bool) string {
	num := color.New(color.FgCyan)
	caret := color.New(color.FgRed)
	if colored {
		num.EnableColor()
		caret.EnableColor()
	} else {
		num.DisableColor()
		caret.DisableColor()
	}
	line, col := p.LineCol()
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "error in line: %s, col: %s: %s\n", num.Sprint(line), num.Sprint(col), msg)
	src := p.D.Line(line)
	if len(src) == 0 {
		return buf.String()
	}
	buf.Write(src)
	buf.WriteByte('\n')
	for i := 0; i < col-1; i++ {
		if i < len(src) && src[i] == '\t' {
			buf.WriteByte('\t')
			continue
		}
		buf.WriteByte(' ')
	}
	buf.WriteString(caret.Sprint(strings.Repeat("^", max(len(msg), 1))))
	buf.WriteByte('\n')
	return buf.String()
}

// ErrorDiagnostic renders err with [Diagnostic] if it, or an error it wraps,
// carries a position. The message is the innermost unpositioned cause.
func ErrorDiagnostic(err error, colored bool) (string, bool) {
	var pe Positioned
	if !errors.As(err, &pe) {
		return "", false
	}
	p := pe.Position()
	if p == nil || p.D == nil {
		return "", false
	}
	msg := pe.Error()
	if u := errors.Unwrap(pe); u != nil {
		msg = u.Error()
	}
	return Diagnostic(p, msg, colored), true
}
