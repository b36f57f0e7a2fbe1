package token

import "testing"

func TestPosDocLineCol(t *testing.T) {
	doc := NewPosDoc([]byte("ab\ncd\n\nef"))
	tests := []struct{ off, line, col int }{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{9, 4, 3},
	}
	for _, tc := range tests {
		l, c := doc.LineCol(tc.off)
		if l != tc.line || c != tc.col {
			t.Errorf("offset %d: got %d:%d want %d:%d", tc.off, l, c, tc.line, tc.col)
		}
		if got := doc.Offset(tc.line, tc.col); got != tc.off {
			t.Errorf("line %d col %d: got offset %d want %d", tc.line, tc.col, got, tc.off)
		}
	}
	if got := string(doc.Line(2)); got != "cd" {
		t.Errorf("line 2: %q", got)
	}
	if got := string(doc.Line(4)); got != "ef" {
		t.Errorf("line 4: %q", got)
	}
	if doc.Line(9) != nil {
		t.Errorf("expected nil for missing line")
	}
}
