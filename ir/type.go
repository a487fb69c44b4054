package ir

import "fmt"

// Type discriminates the three node shapes.
type Type int

const (
	ScalarType Type = iota
	SequenceType
	MappingType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ScalarType:   "Scalar",
		SequenceType: "Sequence",
		MappingType:  "Mapping",
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
	tt, ok := map[string]Type{
		"Scalar":   ScalarType,
		"Sequence": SequenceType,
		"Mapping":  MappingType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		ScalarType,
		SequenceType,
		MappingType,
	}
}

func (t Type) IsLeaf() bool {
	return t == ScalarType
}

// Kind is the runtime shape of a scalar value.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	IntKind
	FloatKind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "Null"
	case BoolKind:
		return "Bool"
	case IntKind:
		return "Int"
	case FloatKind:
		return "Float"
	case StringKind:
		return "String"
	default:
		return "<unknown kind>"
	}
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		BoolKind,
		IntKind,
		FloatKind,
		StringKind,
	}
}
