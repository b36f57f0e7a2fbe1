package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	DebugFormat Format = iota
	IUTFFormat
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"d":     DebugFormat,
		"debug": DebugFormat,
		"i":     IUTFFormat,
		"iutf":  IUTFFormat,
		"j":     JSONFormat,
		"json":  JSONFormat,
		"y":     YAMLFormat,
		"yaml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case DebugFormat:
		return []byte("debug"), nil
	case IUTFFormat:
		return []byte("iutf"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsDebug() bool { return f == DebugFormat }
func (f Format) IsIUTF() bool  { return f == IUTFFormat }
func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsYAML() bool  { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case IUTFFormat:
		return ".utext"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ".txt"
	}
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{DebugFormat, IUTFFormat, JSONFormat, YAMLFormat}
}
