package parse

import (
	"testing"

	"github.com/iutf-format/iutf/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`iutf:init:main {}`,
		`iutf:init:main { title: "X", version: 1 }`,
		`iutf:init:main { a: [1, 2.5, 3L, 'c', '\n'] }`,
		`iutf:init:main { b: BigString[ a [ nested ] b ] }`,
		`iutf:init:main { p: | line one | }`,
		`iutf:init:main { n: null, t: true, f: false }`,
		"iutf:init:main {\n  // c\n  /* d */ x: {}\n}",
		`iutf:init:main { a: BigString[ }`,
		`iutf:init:main { a: "`,
		`iutf:init:main { a: | }`,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, in string) {
		root, err := ParseString(in)
		if err != nil {
			if root != nil {
				t.Fatalf("tree returned with error %v", err)
			}
			return
		}
		if root.Type != ir.BranchType {
			t.Fatalf("root is %s", root.Type)
		}
		root.Walk(func(n *ir.Node) bool {
			for i, child := range n.Values {
				if child.Parent != n || child.ParentIndex != i {
					t.Fatalf("bad parent link at %s", child.Path())
				}
				if (n.Type == ir.BranchType) == (child.Key == "") {
					t.Fatalf("bad key %q at %s", child.Key, child.Path())
				}
			}
			return true
		})
		root.Release()
	})
}
