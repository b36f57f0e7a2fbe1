package ir

import (
	"errors"
)

var (
	ErrNilNode      = errors.New("nil node")
	ErrNotBranch    = errors.New("not a branch")
	ErrNotArray     = errors.New("not an array")
	ErrEmptyKey     = errors.New("empty key")
	ErrKeyedElement = errors.New("array elements cannot carry a key")
	ErrAttached     = errors.New("node already has a parent")
	ErrPath         = errors.New("bad path")
)
