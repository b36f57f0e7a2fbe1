// Package ir provides the in-memory tree for IUTF documents.
//
// # Node Structure
//
// A Node is a tagged union: the Type field selects which of the payload
// fields is meaningful.
//
//   - BranchType, ArrayType: Values holds the children in insertion order
//   - StringType, BigStringType, PipeStringType: String
//   - IntegerType, LongType: Int64
//   - FloatType: Float64
//   - CharacterType: Char
//   - BoolType: Bool
//   - NullType: no payload
//
// Children of a Branch carry a non-empty Key. Children of an Array, and the
// root, carry none. Keys within a Branch are not required to be unique;
// [Node.Get] returns the first match.
//
// # Creating Nodes
//
//	root := ir.NewBranch()
//	if err := root.Add("title", ir.FromString("X")); err != nil {
//	    return err
//	}
//	list := ir.NewArray()
//	list.Append(ir.FromInt(1))
//	root.Add("list", list)
//
// Each node has exactly one parent. [Node.Add] and [Node.Append] refuse a
// node which is already attached.
//
// # Releasing Trees
//
// [Node.Release] tears a tree down recursively, visiting each node once.
// It is safe to call on a nil node or on a tree already released.
//
// # Thread Safety
//
// Node structures are not thread-safe.
package ir
