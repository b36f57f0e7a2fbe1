package debug

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("token %s at %d\n", "TColon", 4)
	Logf("tree %s\n", map[string]any{"k": "v"})
	out := buf.String()
	if !strings.HasPrefix(out, "token TColon at 4\n") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, `"k": "v"`) {
		t.Errorf("expected indented json in %q", out)
	}
}

func TestBoolEnv(t *testing.T) {
	t.Setenv("IUTF_DEBUG_TEST", "true")
	if !boolEnv("IUTF_DEBUG_TEST") {
		t.Errorf("expected true")
	}
	t.Setenv("IUTF_DEBUG_TEST", "nope")
	if boolEnv("IUTF_DEBUG_TEST") {
		t.Errorf("expected false for unparsable value")
	}
}
