package gomap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/parse"
	"github.com/iutf-format/iutf/validate"
)

type meta struct {
	Sep  string `json:"sep"`
	Big  int64  `json:"big"`
	Body string `json:"body"`
}

type config struct {
	Title   string   `json:"title"`
	Version float64  `json:"version"`
	Tags    []string `json:"tags"`
	Enabled bool     `json:"enabled"`
	Meta    meta     `json:"meta"`
}

func TestLoad(t *testing.T) {
	d := []byte(`iutf:init:main {
  title: "svc",
  version: 2,
  tags: ["a", "b"],
  enabled: true,
  meta: { sep: ',', big: 9007199254740993L, body: BigString[x [y]] },
}`)
	var got config
	if err := Load(d, &got, LoadValidate(true), LoadStrict(true)); err != nil {
		t.Fatal(err)
	}
	want := config{
		Title:   "svc",
		Version: 2,
		Tags:    []string{"a", "b"},
		Enabled: true,
		Meta:    meta{Sep: ",", Big: 9007199254740993, Body: "x [y]"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	var c config
	err := Load([]byte(`iutf:init:main { title: "x" }`), &c, LoadValidate(true))
	if !errors.Is(err, validate.ErrMissingField) || !errors.Is(err, ErrLoad) {
		t.Errorf("validate: got %v", err)
	}
	err = Load([]byte(`iutf:init:main { title: }`), &c)
	if !errors.Is(err, parse.ErrParse) || !errors.Is(err, ErrLoad) {
		t.Errorf("parse: got %v", err)
	}
	err = Load([]byte(`iutf:init:main { title: "x", extra: 1 }`), &c, LoadStrict(true))
	if !errors.Is(err, ErrLoad) {
		t.Errorf("strict: got %v", err)
	}
	err = Load([]byte(`iutf:init:main { title: 5 }`), &c)
	if !errors.Is(err, ErrLoad) {
		t.Errorf("type: got %v", err)
	}
	if err := FromIR(nil, &c); !errors.Is(err, ir.ErrNilNode) {
		t.Errorf("nil: got %v", err)
	}
}

type keys []string

func (k *keys) FromIR(node *ir.Node) error {
	*k = node.Keys()
	return nil
}

func TestFromIRer(t *testing.T) {
	var k keys
	if err := Load([]byte(`iutf:init:main { b: 1, a: 2 }`), &k); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(keys{"b", "a"}, k); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
