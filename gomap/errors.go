package gomap

import "errors"

var ErrLoad = errors.New("cannot load document")
