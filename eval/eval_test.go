package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/parse"
)

const doc = `iutf:init:main {
  title: "X",
  version: 1,
  list: [1, 2, 3],
  meta: { tags: ["a", 'b'], ratio: 0.5 },
}`

func mustParse(t *testing.T) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(doc)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { node.Release() })
	return node
}

func TestEval(t *testing.T) {
	t.Setenv("IUTF_EVAL_TEST", "yes")
	node := mustParse(t)
	tests := []struct {
		src  string
		want any
	}{
		{`title + "!"`, "X!"},
		{`version >= 1 && title != ""`, true},
		{`len(list)`, 3},
		{`getpath("meta.tags[1]")`, "b"},
		{`getpath("$.meta.ratio") * 2`, 1.0},
		{`exists("meta.tags")`, true},
		{`exists("meta.nope")`, false},
		{`kind("meta")`, "Branch"},
		{`kind("list[0]")`, "Integer"},
		{`doc.meta.tags[0]`, "a"},
		{`getenv("IUTF_EVAL_TEST")`, "yes"},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(node, tc.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	node := mustParse(t)
	for _, src := range []string{`title +`, `nosuchvar`, `getpath("nope")`} {
		if _, err := Eval(node, src); err == nil {
			t.Errorf("%s: expected error", src)
		}
	}
}

func TestToNode(t *testing.T) {
	n, err := ToNode(map[string]any{
		"b": []any{1, "x", nil},
		"a": map[string]any{"f": 1.5, "t": true},
	})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, n.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	want := map[string]any{
		"b": []any{int64(1), "x", nil},
		"a": map[string]any{"f": 1.5, "t": true},
	}
	if diff := cmp.Diff(want, ir.ToAny(n)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ToNode(struct{}{}); err == nil {
		t.Errorf("expected error")
	}
}

func TestEvalVars(t *testing.T) {
	node := mustParse(t)
	got, err := Eval(node, `title + suffix`, Vars(map[string]any{"suffix": "?"}))
	if err != nil {
		t.Fatal(err)
	}
	if got != "X?" {
		t.Errorf("got %v", got)
	}
	got, err = Eval(node, `title`, Vars(map[string]any{"title": "override"}))
	if err != nil {
		t.Fatal(err)
	}
	if got != "override" {
		t.Errorf("got %v", got)
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv(EnvVars, "")
	vars, err := LoadEnv()
	if err != nil || vars != nil {
		t.Fatalf("unset: got %v, %v", vars, err)
	}
	t.Setenv(EnvVars, `iutf:init:main { stage: "prod", replicas: 3 }`)
	vars, err = LoadEnv()
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]any{"stage": "prod", "replicas": int64(3)}
	if diff := cmp.Diff(want, vars); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	t.Setenv(EnvVars, `stage: prod`)
	if _, err := LoadEnv(); err == nil {
		t.Error("expected error for a value without header")
	}
}
