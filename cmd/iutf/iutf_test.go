package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iutf-format/iutf/encode"
	"github.com/iutf-format/iutf/format"
	"github.com/iutf-format/iutf/parse"
)

func TestCheckSource(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		ok     bool
		out    string
		errHas []string
	}{
		{
			name: "valid",
			in:   `iutf:init:main { title: "X", version: 1 }`,
			ok:   true,
			out:  "Parse successful!\nValidation passed!\n",
		},
		{
			name:   "missing title",
			in:     `iutf:init:main { version: 1 }`,
			out:    "Parse successful!\nValidation failed!\n",
			errHas: []string{`missing required field: "title"`},
		},
		{
			name: "wrong type",
			in:   "iutf:init:main {\n  title: 5\n}",
			out:  "Parse successful!\nValidation failed!\n",
			errHas: []string{
				"error in line: 2, col: 10",
				`"title" must be String, got Integer`,
				`"version"`,
			},
		},
		{
			name:   "parse error",
			in:     "iutf:init:main {\n  title: }",
			errHas: []string{"error in line: 2, col: 10", "expected value, got }", "Parse failed"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
			if got := checkSource(out, errOut, "test.utext", []byte(tc.in), false); got != tc.ok {
				t.Errorf("got %v, want %v", got, tc.ok)
			}
			if diff := cmp.Diff(tc.out, out.String()); diff != "" {
				t.Errorf("output (-want +got):\n%s", diff)
			}
			for _, s := range tc.errHas {
				if !strings.Contains(errOut.String(), s) {
					t.Errorf("diagnostics missing %q:\n%s", s, errOut.String())
				}
			}
		})
	}
}

func TestDumpSource(t *testing.T) {
	out := &bytes.Buffer{}
	in := []byte(`iutf:init:main { title: "X", version: 1 }`)
	err := dumpSource(out, &bytes.Buffer{}, "x", in, false, encode.EncodeFormat(format.JSONFormat), encode.EncodeWire(true))
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != `{"title":"X","version":1}` {
		t.Errorf("got %s", got)
	}
	errOut := &bytes.Buffer{}
	if err := dumpSource(out, errOut, "bad", []byte("iutf"), false); err == nil {
		t.Errorf("expected error")
	}
	if !strings.HasPrefix(errOut.String(), "bad: ") {
		t.Errorf("got %q", errOut.String())
	}
}

func TestTokensSource(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	if err := tokensSource(out, errOut, "x", []byte("a: @"), false); err == nil {
		t.Errorf("expected error")
	}
	want := "[1:1] IDENTIFIER: 'a'\n[1:2] :: ':'\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !strings.Contains(errOut.String(), "unexpected character") {
		t.Errorf("got %q", errOut.String())
	}
}

func TestDiffDocs(t *testing.T) {
	a, err := parse.ParseString(`iutf:init:main { title: "X", version: 1 }`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := parse.ParseString(`iutf:init:main { title: "X", version: 2 }`)
	if err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	differs, err := diffDocs(out, a, a, false, false)
	if err != nil || differs || out.Len() != 0 {
		t.Errorf("same document: differs=%v err=%v out=%q", differs, err, out)
	}
	differs, err = diffDocs(out, a, b, false, false)
	if err != nil || !differs {
		t.Fatalf("differs=%v err=%v", differs, err)
	}
	if !strings.Contains(out.String(), "-  version: 1\n+  version: 2\n") {
		t.Errorf("got:\n%s", out)
	}
	out.Reset()
	differs, err = diffDocs(out, a, b, true, false)
	if err != nil || !differs {
		t.Fatalf("differs=%v err=%v", differs, err)
	}
	if got := out.String(); got != "{\"version\":2}\n" {
		t.Errorf("got %q", got)
	}
	out.Reset()
	if differs, _ := diffDocs(out, a, a, true, false); differs {
		t.Errorf("merge patch of equal documents: %s", out)
	}
}

func TestEvalSource(t *testing.T) {
	env := map[string]any{}
	if err := envFunc(env, "limits.max=3"); err != nil {
		t.Fatal(err)
	}
	out := &bytes.Buffer{}
	in := []byte(`iutf:init:main { title: "X", version: 1 }`)
	err := evalSource(out, &bytes.Buffer{}, "x", in, `version < limits.max`, env, false, encode.EncodeFormat(format.IUTFFormat))
	if err != nil {
		t.Fatal(err)
	}
	if got := out.String(); got != "true\n" {
		t.Errorf("got %q", got)
	}
	if err := envFunc(env, "novalue"); err == nil {
		t.Errorf("expected usage error")
	}
	if err := envFunc(env, "limits.max.x=1"); err == nil {
		t.Errorf("expected error setting below a scalar")
	}
}

func TestCheckQuiet(t *testing.T) {
	cfg := &CheckConfig{MainConfig: &MainConfig{}, Quiet: true}
	for _, in := range []string{
		`iutf:init:main { title: "X", version: 1 }`,
		`iutf:init:main { version: 1 }`,
	} {
		out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
		checkSource(cfg.resultWriter(out), errOut, "q.utext", []byte(in), false)
		if out.Len() != 0 {
			t.Errorf("%s: quiet check wrote %q", in, out)
		}
	}
	errOut := &bytes.Buffer{}
	if checkSource(cfg.resultWriter(&bytes.Buffer{}), errOut, "q.utext", []byte(`iutf:init:main { version: 1 }`), false) {
		t.Error("missing title passed")
	}
	if !strings.Contains(errOut.String(), `"title"`) {
		t.Errorf("quiet check hid the diagnostic: %q", errOut)
	}
	cfg.Quiet = false
	out := &bytes.Buffer{}
	checkSource(cfg.resultWriter(out), &bytes.Buffer{}, "q.utext", []byte(`iutf:init:main { title: "X", version: 1 }`), false)
	if out.String() != "Parse successful!\nValidation passed!\n" {
		t.Errorf("got %q", out)
	}
}

func TestEvalResultFormat(t *testing.T) {
	in := []byte(`iutf:init:main { title: "X", version: 1 }`)
	tests := []struct {
		expr string
		want string
	}{
		{`version - 5`, "-4\n"},
		{`title + "\""`, `"X\""` + "\n"},
		{`{"a b": 1}`, "{\n  \"a b\": 1\n}\n"},
		{`[title, version > 0]`, "[\n  \"X\",\n  true\n]\n"},
	}
	cfg := &EvalConfig{MainConfig: &MainConfig{}, Env: map[string]any{}}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			out := &bytes.Buffer{}
			err := evalSource(out, &bytes.Buffer{}, "x", in, tc.expr, cfg.Env, false, cfg.resultOpts(out)...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
	f := format.IUTFFormat
	cfg.OutFormat = &f
	err := evalSource(&bytes.Buffer{}, &bytes.Buffer{}, "x", in, `version - 5`, cfg.Env, false, cfg.resultOpts(&bytes.Buffer{})...)
	if !errors.Is(err, encode.ErrEncoding) {
		t.Errorf("explicit iutf format: got %v", err)
	}
}
