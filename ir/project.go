package ir

// ToAny projects n onto plain Go values: branches become map[string]any
// (a later duplicate key replaces an earlier one), arrays []any, text nodes
// string, integers and longs int64, characters one-rune strings.
func ToAny(n *Node) any {
	if n == nil {
		return nil
	}
	switch n.Type {
	case BranchType:
		res := make(map[string]any, len(n.Values))
		for _, child := range n.Values {
			res[child.Key] = ToAny(child)
		}
		return res
	case ArrayType:
		res := make([]any, len(n.Values))
		for i, child := range n.Values {
			res[i] = ToAny(child)
		}
		return res
	case StringType, BigStringType, PipeStringType:
		return n.String
	case IntegerType, LongType:
		return n.Int64
	case FloatType:
		return n.Float64
	case CharacterType:
		return string(n.Char)
	case BoolType:
		return n.Bool
	case NullType:
		return nil
	}
	return nil
}
