package encode

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iutf-format/iutf/ir"
	"github.com/iutf-format/iutf/token"
)

type debugStyle struct{}

func (debugStyle) key(k string) (string, error) {
	return `"` + k + `"`, nil
}

func (debugStyle) scalar(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.StringType, ir.BigStringType, ir.PipeStringType:
		return `"` + n.String + `"`, nil
	case ir.IntegerType, ir.LongType:
		return strconv.FormatInt(n.Int64, 10), nil
	case ir.FloatType:
		return fmt.Sprintf("%.6f", n.Float64), nil
	case ir.CharacterType:
		return "'" + string(n.Char) + "'", nil
	}
	return keyword(n)
}

type jsonStyle struct{}

func (jsonStyle) key(k string) (string, error) {
	return jsonString(k)
}

func (jsonStyle) scalar(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.StringType, ir.BigStringType, ir.PipeStringType:
		return jsonString(n.String)
	case ir.CharacterType:
		return jsonString(string(n.Char))
	case ir.IntegerType, ir.LongType:
		return strconv.FormatInt(n.Int64, 10), nil
	case ir.FloatType:
		d, err := json.Marshal(n.Float64)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return string(d), nil
	}
	return keyword(n)
}

func jsonString(s string) (string, error) {
	buf := &strings.Builder{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

type iutfStyle struct{}

func (iutfStyle) key(k string) (string, error) {
	if !token.IsIdentifier(k) {
		return "", fmt.Errorf("%w: key %q is not an identifier", ErrEncoding, k)
	}
	return k, nil
}

func (iutfStyle) scalar(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.StringType:
		if !rawQuotable(n.String) {
			return "", fmt.Errorf("%w: string %q has an unescaped quote", ErrEncoding, n.String)
		}
		return `"` + n.String + `"`, nil
	case ir.BigStringType:
		if end, ok := token.MatchBracket([]byte(n.String+"]"), 0); !ok || end != len(n.String) {
			return "", fmt.Errorf("%w: BigString %q has unbalanced brackets", ErrEncoding, n.String)
		}
		return "BigString[" + n.String + "]", nil
	case ir.PipeStringType:
		if !pipeSafe(n.String) {
			return "", fmt.Errorf("%w: PipeString %q cannot be delimited", ErrEncoding, n.String)
		}
		return "|" + n.String + "|", nil
	case ir.IntegerType, ir.LongType:
		if n.Int64 < 0 {
			return "", fmt.Errorf("%w: negative number %d", ErrEncoding, n.Int64)
		}
		s := strconv.FormatInt(n.Int64, 10)
		if n.Type == ir.LongType {
			s += "L"
		}
		return s, nil
	case ir.FloatType:
		f := n.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
			return "", fmt.Errorf("%w: float %v", ErrEncoding, f)
		}
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s, nil
	case ir.CharacterType:
		switch n.Char {
		case '\'', '\\':
			return `'\` + string(n.Char) + "'", nil
		}
		return "'" + string(n.Char) + "'", nil
	}
	return keyword(n)
}

func keyword(n *ir.Node) (string, error) {
	switch n.Type {
	case ir.BoolType:
		return strconv.FormatBool(n.Bool), nil
	case ir.NullType:
		return "null", nil
	}
	return "", fmt.Errorf("%w: unexpected %s", ErrEncoding, n.Type)
}

// rawQuotable reports whether s can be put between double quotes and lex
// back to the same bytes.
func rawQuotable(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 == len(s) {
				return false
			}
			i++
		case '"':
			return false
		}
	}
	return true
}

// pipeSafe reports whether the first '|' token found when lexing s
// followed by a closing '|' is that closing one.
func pipeSafe(s string) bool {
	lex := token.NewLexer([]byte(s + "|"))
	for {
		tok, err := lex.Next()
		if err != nil {
			continue
		}
		switch tok.Type {
		case token.TEOF:
			return false
		case token.TPipe:
			return tok.Off() == len(s)
		}
	}
}
