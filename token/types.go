package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TError
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TEquals
	TPipe
	TComma
	TString
	TInteger
	TCharacter
	TFloat
	TLong
	TTrue
	TFalse
	TNull
	TIdentifier
	TBigString
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:        "EOF",
		TError:      "ERROR",
		TLCurl:      "{",
		TRCurl:      "}",
		TLSquare:    "[",
		TRSquare:    "]",
		TColon:      ":",
		TEquals:     "=",
		TPipe:       "|",
		TComma:      ",",
		TString:     "STRING",
		TInteger:    "NUMBER",
		TCharacter:  "CHARACTER",
		TFloat:      "FLOAT",
		TLong:       "LONG",
		TTrue:       "TRUE",
		TFalse:      "FALSE",
		TNull:       "NULL",
		TIdentifier: "IDENTIFIER",
		TBigString:  "BIGSTRING",
	}[t]
	if ok {
		return s
	}
	return "UNKNOWN"
}

// IsValueStart reports whether a token of type t can begin a value.
func (t TokenType) IsValueStart() bool {
	switch t {
	case TString, TInteger, TFloat, TLong, TCharacter, TTrue, TFalse, TNull,
		TLSquare, TBigString, TPipe, TLCurl:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// Off returns the byte offset of the first byte of t.
func (t *Token) Off() int {
	return t.Pos.I
}

// End returns the byte offset just past the last byte of t.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}
