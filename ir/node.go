package ir

import (
	"fmt"
)

type Node struct {
	Type        Type
	Key         string
	Parent      *Node
	ParentIndex int
	Values      []*Node

	String  string
	Int64   int64
	Float64 float64
	Char    rune
	Bool    bool

	released bool
}

func NewBranch() *Node {
	return &Node{Type: BranchType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBigString(v string) *Node {
	return &Node{Type: BigStringType, String: v}
}

func FromPipeString(v string) *Node {
	return &Node{Type: PipeStringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromLong(v int64) *Node {
	return &Node{Type: LongType, Int64: v}
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float64: f}
}

func FromChar(c rune) *Node {
	return &Node{Type: CharacterType, Char: c}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// Add appends v to branch n under key.
func (n *Node) Add(key string, v *Node) error {
	if n == nil || v == nil {
		return ErrNilNode
	}
	if n.Type != BranchType {
		return fmt.Errorf("%w: cannot add %q to %s", ErrNotBranch, key, n.Type)
	}
	if key == "" {
		return ErrEmptyKey
	}
	if v.Parent != nil {
		return fmt.Errorf("%w: %s", ErrAttached, v.Path())
	}
	v.Key = key
	n.attach(v)
	return nil
}

// Append appends v to array n. v must not carry a key.
func (n *Node) Append(v *Node) error {
	if n == nil || v == nil {
		return ErrNilNode
	}
	if n.Type != ArrayType {
		return fmt.Errorf("%w: cannot append to %s", ErrNotArray, n.Type)
	}
	if v.Key != "" {
		return fmt.Errorf("%w: %q", ErrKeyedElement, v.Key)
	}
	if v.Parent != nil {
		return fmt.Errorf("%w: %s", ErrAttached, v.Path())
	}
	n.attach(v)
	return nil
}

func (n *Node) attach(v *Node) {
	v.Parent = n
	v.ParentIndex = len(n.Values)
	n.Values = append(n.Values, v)
}

// Release tears down n and all of its descendants, returning the number of
// nodes released. Releasing a nil or already released node does nothing.
func (n *Node) Release() int {
	if n == nil || n.released {
		return 0
	}
	count := 1
	for _, child := range n.Values {
		count += child.Release()
	}
	n.Values = nil
	n.Parent = nil
	n.ParentIndex = 0
	n.Key = ""
	n.String = ""
	n.released = true
	return count
}

// Released reports whether n has been torn down by Release.
func (n *Node) Released() bool {
	return n != nil && n.released
}

// Get returns the first child of branch n with the given key, or nil.
func (n *Node) Get(key string) *Node {
	if n == nil || n.Type != BranchType {
		return nil
	}
	for _, child := range n.Values {
		if child.Key == key {
			return child
		}
	}
	return nil
}

// Keys returns the keys of branch n in order, including duplicates.
func (n *Node) Keys() []string {
	if n == nil || n.Type != BranchType {
		return nil
	}
	res := make([]string, len(n.Values))
	for i, child := range n.Values {
		res[i] = child.Key
	}
	return res
}

func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

// Walk calls f on n and its descendants in document order. If f returns
// false the children of that node are skipped.
func (n *Node) Walk(f func(*Node) bool) {
	if n == nil {
		return
	}
	if !f(n) {
		return
	}
	for _, child := range n.Values {
		child.Walk(f)
	}
}
