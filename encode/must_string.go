package encode

import (
	"bytes"
	"strings"

	"github.com/iutf-format/iutf/ir"
)

// MustString renders node in the debug format, panicking on error.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}
