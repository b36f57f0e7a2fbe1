package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Errorf("%s: %v", f, err)
			continue
		}
		if got != f {
			t.Errorf("round trip %s: got %s", f, got)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestUnmarshalText(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("y")); err != nil {
		t.Fatal(err)
	}
	if !f.IsYAML() {
		t.Errorf("expected yaml, got %s", f)
	}
	if Format(99).String() == "" {
		t.Errorf("expected error text for bad format")
	}
}
