package ir

import "fmt"

// Type is the variant of a node.
//
// Input trees (*Node) use every type but AliasType; output trees (*Out) use
// every type but AliasedType.
type Type int

const (
	RealType Type = iota
	IntegerType
	StringType
	BooleanType
	ArrayType
	HashType
	AnchoredType
	AliasedType
	AliasType
	NullType
	BadValueType
)

var typeNames = map[Type]string{
	RealType:     "Real",
	IntegerType:  "Integer",
	StringType:   "String",
	BooleanType:  "Boolean",
	ArrayType:    "Array",
	HashType:     "Hash",
	AnchoredType: "Anchored",
	AliasedType:  "Aliased",
	AliasType:    "Alias",
	NullType:     "Null",
	BadValueType: "BadValue",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, s := range typeNames {
		if s == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		RealType,
		IntegerType,
		StringType,
		BooleanType,
		ArrayType,
		HashType,
		AnchoredType,
		AliasedType,
		AliasType,
		NullType,
		BadValueType,
	}
}

// IsLeaf reports whether nodes of type t have no children.
func (t Type) IsLeaf() bool {
	switch t {
	case ArrayType, HashType, AnchoredType, AliasedType:
		return false
	default:
		return true
	}
}

// IsScalar reports whether t is one of the scalar types
// (Real, Integer, String, Boolean, Null).
func (t Type) IsScalar() bool {
	switch t {
	case RealType, IntegerType, StringType, BooleanType, NullType:
		return true
	default:
		return false
	}
}
