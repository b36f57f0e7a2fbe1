package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/iutf-format/iutf/ir"
)

func encodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(ToYAML(node))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

// ToYAML projects node onto values for go-yaml. Branches become
// yaml.MapSlice so entry order and duplicate keys are kept.
func ToYAML(node *ir.Node) any {
	switch node.Type {
	case ir.BranchType:
		res := make(yaml.MapSlice, 0, len(node.Values))
		for _, child := range node.Values {
			res = append(res, yaml.MapItem{Key: child.Key, Value: ToYAML(child)})
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, child := range node.Values {
			res[i] = ToYAML(child)
		}
		return res
	}
	return ir.ToAny(node)
}
