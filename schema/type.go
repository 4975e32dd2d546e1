package schema

import "fmt"

// Prim is a fixed-width Cap'n Proto primitive.
type Prim int

const (
	PrimBool Prim = iota
	PrimInt8
	PrimInt16
	PrimInt32
	PrimInt64
	PrimUInt8
	PrimUInt16
	PrimUInt32
	PrimUInt64
	PrimFloat32
	PrimFloat64
)

func (p Prim) String() string {
	switch p {
	case PrimBool:
		return "Bool"
	case PrimInt8:
		return "Int8"
	case PrimInt16:
		return "Int16"
	case PrimInt32:
		return "Int32"
	case PrimInt64:
		return "Int64"
	case PrimUInt8:
		return "UInt8"
	case PrimUInt16:
		return "UInt16"
	case PrimUInt32:
		return "UInt32"
	case PrimUInt64:
		return "UInt64"
	case PrimFloat32:
		return "Float32"
	case PrimFloat64:
		return "Float64"
	}
	return fmt.Sprintf("Prim(%d)", int(p))
}

// TypeKind discriminates Type variants.
type TypeKind int

const (
	TypeInvalid TypeKind = iota
	TypePrimitive
	TypeText
	TypeData
	TypeList
	TypeNamed
	TypeOptionalWrapper

	// TypeOptionalPrimitive refers to the fixed OptionalBool,
	// OptionalInt32, ... vocabulary assumed to pre-exist in the target
	// schema; these are never synthesized.
	TypeOptionalPrimitive
)

// Type is a schema type reference.
type Type struct {
	Kind  TypeKind
	Prim  Prim   // TypePrimitive, TypeOptionalPrimitive
	Elem  *Type  // TypeList
	Class string // TypeNamed, TypeOptionalWrapper
}

// Ref renders the type as it appears after a field's ordinal tag.
func (t Type) Ref() string {
	switch t.Kind {
	case TypePrimitive:
		return t.Prim.String()
	case TypeText:
		return "Text"
	case TypeData:
		return "Data"
	case TypeList:
		return "List(" + t.Elem.Ref() + ")"
	case TypeNamed:
		return t.Class
	case TypeOptionalWrapper:
		return "Optional" + t.Class
	case TypeOptionalPrimitive:
		return "Optional" + t.Prim.String()
	}
	return "Invalid"
}

func primitive(p Prim) Type { return Type{Kind: TypePrimitive, Prim: p} }
func named(class string) Type {
	return Type{Kind: TypeNamed, Class: class}
}
