package token

import (
	"fmt"
	"testing"
)

func TestDiagnostic(t *testing.T) {
	doc := NewPosDoc([]byte("a: 1\nbad: @\n"))
	got := Diagnostic(doc.Pos(10), "unexpected character", false)
	want := "error in line: 2, col: 6: unexpected character\n" +
		"bad: @\n" +
		"     ^^^^^^^^^^^^^^^^^^^^\n"
	if got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestDiagnosticTabs(t *testing.T) {
	doc := NewPosDoc([]byte("\tx: ~"))
	got := Diagnostic(doc.Pos(4), "bad", false)
	want := "error in line: 1, col: 5: bad\n\tx: ~\n\t   ^^^\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestDiagnosticEmptyLine(t *testing.T) {
	doc := NewPosDoc([]byte("a\n\n"))
	got := Diagnostic(doc.Pos(2), "eof", false)
	if got != "error in line: 2, col: 1: eof\n" {
		t.Errorf("got %q", got)
	}
}

func TestErrorDiagnostic(t *testing.T) {
	_, err := Tokenize([]byte("x: @"))
	if err == nil {
		t.Fatal("expected error")
	}
	wrapped := fmt.Errorf("reading config: %w", err)
	got, ok := ErrorDiagnostic(wrapped, false)
	if !ok {
		t.Fatal("expected a positioned error")
	}
	want := "error in line: 1, col: 4: unexpected character\nx: @\n   ^^^^^^^^^^^^^^^^^^^^\n"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if _, ok := ErrorDiagnostic(fmt.Errorf("plain"), false); ok {
		t.Errorf("plain errors have no position")
	}
}
