package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAddAndGet(t *testing.T) {
	root := NewBranch()
	if err := root.Add("a", FromInt(1)); err != nil {
		t.Fatal(err)
	}
	if err := root.Add("b", FromString("x")); err != nil {
		t.Fatal(err)
	}
	if err := root.Add("a", FromInt(2)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "b", "a"}, root.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	got := root.Get("a")
	if got == nil || got.Int64 != 1 {
		t.Errorf("Get(a) = %+v, want first child with 1", got)
	}
	if root.Get("missing") != nil {
		t.Errorf("Get(missing) should be nil")
	}
	for i, child := range root.Values {
		if child.Parent != root || child.ParentIndex != i {
			t.Errorf("child %d: parent %p index %d", i, child.Parent, child.ParentIndex)
		}
	}
}

func TestAddErrors(t *testing.T) {
	attached := FromInt(1)
	other := NewBranch()
	if err := other.Add("x", attached); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		n    *Node
		key  string
		v    *Node
		want error
	}{
		{"nil value", NewBranch(), "a", nil, ErrNilNode},
		{"not branch", NewArray(), "a", FromInt(1), ErrNotBranch},
		{"leaf", FromInt(3), "a", FromInt(1), ErrNotBranch},
		{"empty key", NewBranch(), "", FromInt(1), ErrEmptyKey},
		{"attached", NewBranch(), "a", attached, ErrAttached},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.n.Add(tc.key, tc.v)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAppend(t *testing.T) {
	arr := NewArray()
	for i := range 3 {
		if err := arr.Append(FromInt(int64(i))); err != nil {
			t.Fatal(err)
		}
	}
	if len(arr.Values) != 3 {
		t.Fatalf("got %d values", len(arr.Values))
	}
	keyed := FromInt(9)
	keyed.Key = "k"
	if err := arr.Append(keyed); !errors.Is(err, ErrKeyedElement) {
		t.Errorf("keyed element: got %v", err)
	}
	if err := NewBranch().Append(FromInt(1)); !errors.Is(err, ErrNotArray) {
		t.Errorf("append to branch: got %v", err)
	}
	if err := NewBranch().Append(arr.Values[0]); !errors.Is(err, ErrNotArray) {
		t.Errorf("append attached to branch: got %v", err)
	}
	if err := NewArray().Append(arr.Values[0]); !errors.Is(err, ErrAttached) {
		t.Errorf("append attached: got %v", err)
	}
}

func sample() *Node {
	root := NewBranch()
	root.Add("title", FromString("X"))
	meta := NewBranch()
	tags := NewArray()
	tags.Append(FromString("a"))
	tags.Append(FromChar('b'))
	meta.Add("tags", tags)
	meta.Add("big", FromBigString("raw ] text"))
	root.Add("meta", meta)
	root.Add("n", Null())
	return root
}

func TestRelease(t *testing.T) {
	root := sample()
	if got := root.Release(); got != 8 {
		t.Errorf("released %d nodes, want 8", got)
	}
	if !root.Released() {
		t.Errorf("root not marked released")
	}
	if got := root.Release(); got != 0 {
		t.Errorf("second release returned %d", got)
	}
	var nilNode *Node
	if got := nilNode.Release(); got != 0 {
		t.Errorf("nil release returned %d", got)
	}
}

func TestPath(t *testing.T) {
	root := sample()
	tags := root.Get("meta").Get("tags")
	tests := []struct {
		n    *Node
		want string
	}{
		{root, "$"},
		{root.Get("title"), "$.title"},
		{tags, "$.meta.tags"},
		{tags.Values[1], "$.meta.tags[1]"},
	}
	for _, tc := range tests {
		if got := tc.n.Path(); got != tc.want {
			t.Errorf("got %q, want %q", got, tc.want)
		}
	}
	odd := NewBranch()
	v := Null()
	odd.Add("a.b", v)
	if got := v.Path(); got != "$.'a.b'" {
		t.Errorf("got %q", got)
	}
}

func TestWalk(t *testing.T) {
	var types []Type
	sample().Walk(func(n *Node) bool {
		types = append(types, n.Type)
		return n.Type != ArrayType
	})
	want := []Type{BranchType, StringType, BranchType, ArrayType, BigStringType, NullType}
	if diff := cmp.Diff(want, types); diff != "" {
		t.Errorf("walk order (-want +got):\n%s", diff)
	}
}

func TestToAny(t *testing.T) {
	root := sample()
	root.Add("title", FromString("Y"))
	root.Add("count", FromLong(5))
	want := map[string]any{
		"title": "Y",
		"meta": map[string]any{
			"tags": []any{"a", "b"},
			"big":  "raw ] text",
		},
		"n":     nil,
		"count": int64(5),
	}
	if diff := cmp.Diff(want, ToAny(root)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestTypeText(t *testing.T) {
	for _, tt := range Types() {
		d, err := tt.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != tt {
			t.Errorf("%s came back as %s", tt, back)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Tuple")); err == nil {
		t.Errorf("expected error")
	}
}

func TestGetPath(t *testing.T) {
	root := sample()
	odd := NewBranch()
	odd.Add("it's", FromInt(4))
	root.Add("a.b", odd)
	tests := []struct {
		path string
		want *Node
	}{
		{"$", root},
		{"", root},
		{"$.title", root.Get("title")},
		{"title", root.Get("title")},
		{"meta.tags[1]", root.Get("meta").Get("tags").Values[1]},
		{"$.meta.big", root.Get("meta").Get("big")},
		{`$.'a.b'.'it\'s'`, odd.Values[0]},
	}
	for _, tc := range tests {
		got, err := root.GetPath(tc.path)
		if err != nil {
			t.Errorf("%q: %v", tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q: got %s", tc.path, got.Path())
		}
	}
	for _, n := range []*Node{odd.Values[0], root.Get("meta").Get("tags").Values[0]} {
		got, err := root.GetPath(n.Path())
		if err != nil || got != n {
			t.Errorf("GetPath(%q) did not find the node: %v", n.Path(), err)
		}
	}
	for _, bad := range []string{"$.missing", "title[0]", "meta.tags[9]", "meta.tags.x", "$x", "meta..tags", "meta.tags[", "$.'open"} {
		if _, err := root.GetPath(bad); !errors.Is(err, ErrPath) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}
