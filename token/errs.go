package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminatedString    = errors.New("unterminated string")
	ErrUnterminatedEscape    = errors.New("unterminated escape sequence")
	ErrUnterminatedComment   = errors.New("unterminated block comment")
	ErrUnterminatedBigString = errors.New("unterminated BigString")
	ErrUnterminatedChar      = errors.New("unterminated character literal")
	ErrUnexpectedChar        = errors.New("unexpected character")
)

// Positioned is implemented by errors which carry a source position.
type Positioned interface {
	error
	Position() *Pos
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func (t *TokenizeErr) Position() *Pos {
	return &t.Pos
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
