package parse

import (
	"errors"
	"fmt"

	"github.com/iutf-format/iutf/token"
)

var (
	ErrParse         = errors.New("parse error")
	ErrUnexpected    = fmt.Errorf("%w: unexpected token", ErrParse)
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrHeader        = fmt.Errorf("%w: bad document header", ErrParse)
	ErrCharLiteral   = fmt.Errorf("%w: malformed character literal", ErrParse)
	ErrNumber        = fmt.Errorf("%w: malformed number", ErrParse)
)

// ParseErr is a structural error found at a token.
type ParseErr struct {
	Err error
	Pos *token.Pos
	Got token.TokenType
}

func (e *ParseErr) Unwrap() error {
	return e.Err
}

func (e *ParseErr) Position() *token.Pos {
	return e.Pos
}

func (e *ParseErr) Error() string {
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
