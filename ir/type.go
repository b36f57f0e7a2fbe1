package ir

import "fmt"

type Type int

const (
	BranchType Type = iota
	StringType
	IntegerType
	FloatType
	LongType
	CharacterType
	BoolType
	NullType
	ArrayType
	BigStringType
	PipeStringType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		BranchType:     "Branch",
		StringType:     "String",
		IntegerType:    "Integer",
		FloatType:      "Float",
		LongType:       "Long",
		CharacterType:  "Character",
		BoolType:       "Boolean",
		NullType:       "Null",
		ArrayType:      "Array",
		BigStringType:  "BigString",
		PipeStringType: "PipeString",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		BranchType,
		StringType,
		IntegerType,
		FloatType,
		LongType,
		CharacterType,
		BoolType,
		NullType,
		ArrayType,
		BigStringType,
		PipeStringType,
	}
}

func (t Type) IsLeaf() bool {
	switch t {
	case BranchType, ArrayType:
		return false
	default:
		return true
	}
}

// IsText reports whether nodes of type t keep their payload in String.
func (t Type) IsText() bool {
	switch t {
	case StringType, BigStringType, PipeStringType:
		return true
	default:
		return false
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case IntegerType, FloatType, LongType:
		return true
	default:
		return false
	}
}
