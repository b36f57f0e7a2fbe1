package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns a JSONPath style path to n, such as $.meta.tags[1].
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case BranchType:
		prefix := n.Parent.Path() + "."
		if n.Key != "" && strings.IndexAny(n.Key, "'.*$[]") == -1 {
			return prefix + n.Key
		}
		return prefix + "'" + strings.Replace(n.Key, "'", "\\'", -1) + "'"
	case ArrayType:
		return n.Parent.Path() + "[" + strconv.Itoa(n.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetPath returns the node at path relative to n. Paths take the form
// produced by [Node.Path]; the leading "$" is optional, so "a.b[0]" and
// "$.a.b[0]" are the same. A key segment selects the first entry with that
// key.
func (n *Node) GetPath(path string) (*Node, error) {
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	res := n
	for _, seg := range segs {
		switch {
		case seg.index >= 0:
			if res.Type != ArrayType {
				return nil, fmt.Errorf("%w: [%d] on %s at %s", ErrPath, seg.index, res.Type, res.Path())
			}
			if seg.index >= len(res.Values) {
				return nil, fmt.Errorf("%w: index %d out of range at %s", ErrPath, seg.index, res.Path())
			}
			res = res.Values[seg.index]
		default:
			if res.Type != BranchType {
				return nil, fmt.Errorf("%w: key %q on %s at %s", ErrPath, seg.key, res.Type, res.Path())
			}
			next := res.Get(seg.key)
			if next == nil {
				return nil, fmt.Errorf("%w: no key %q at %s", ErrPath, seg.key, res.Path())
			}
			res = next
		}
	}
	return res, nil
}

type pathSeg struct {
	key   string
	index int
}

func splitPath(path string) ([]pathSeg, error) {
	p := strings.TrimPrefix(path, "$")
	var res []pathSeg
	for len(p) > 0 {
		switch p[0] {
		case '.':
			p = p[1:]
			if strings.HasPrefix(p, "'") {
				key, rest, ok := quotedKey(p[1:])
				if !ok {
					return nil, fmt.Errorf("%w: unterminated quote in %q", ErrPath, path)
				}
				res = append(res, pathSeg{key: key, index: -1})
				p = rest
				continue
			}
			i := strings.IndexAny(p, ".[")
			if i == -1 {
				i = len(p)
			}
			if i == 0 {
				return nil, fmt.Errorf("%w: empty key in %q", ErrPath, path)
			}
			res = append(res, pathSeg{key: p[:i], index: -1})
			p = p[i:]
		case '[':
			end := strings.IndexByte(p, ']')
			if end == -1 {
				return nil, fmt.Errorf("%w: missing ']' in %q", ErrPath, path)
			}
			idx, err := strconv.Atoi(p[1:end])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, p[1:end], path)
			}
			res = append(res, pathSeg{index: idx})
			p = p[end+1:]
		default:
			if len(res) == 0 && path[0] != '$' {
				p = "." + p
				continue
			}
			return nil, fmt.Errorf("%w: unexpected %q in %q", ErrPath, p[0], path)
		}
	}
	return res, nil
}

// quotedKey reads a key up to an unescaped quote, undoing the escapes
// written by Path.
func quotedKey(p string) (string, string, bool) {
	buf := &strings.Builder{}
	for i := 0; i < len(p); i++ {
		switch p[i] {
		case '\\':
			if i+1 < len(p) && p[i+1] == '\'' {
				buf.WriteByte('\'')
				i++
				continue
			}
		case '\'':
			return buf.String(), p[i+1:], true
		}
		buf.WriteByte(p[i])
	}
	return "", "", false
}
