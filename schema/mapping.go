package schema

import (
	"github.com/hmartens/cpp2capnp/cppast"
)

// Mapper resolves raw C++ member types to schema type references. It
// is pure except for the stub/wrapper registrations it delegates to
// the registry.
type Mapper struct {
	reg *Registry
}

// NewMapper creates a mapper registering stubs and wrappers in reg.
func NewMapper(reg *Registry) *Mapper {
	return &Mapper{reg: reg}
}

// MapType maps one raw type. Unsupported types return an
// *UnsupportedTypeError carrying the spelling; the caller attaches
// class and field context.
func (m *Mapper) MapType(rt *cppast.RawType) (Type, error) {
	switch rt.Kind {
	case cppast.KindBuiltin:
		return primitive(primFor(rt.Builtin)), nil

	case cppast.KindString:
		return Type{Kind: TypeText}, nil

	case cppast.KindSequence:
		if rt.Elem.Kind == cppast.KindBuiltin && primFor(rt.Elem.Builtin) == PrimUInt8 {
			return Type{Kind: TypeData}, nil
		}
		elem, err := m.mapElem(rt.Elem)
		if err != nil {
			return Type{}, err
		}
		return Type{Kind: TypeList, Elem: &elem}, nil

	case cppast.KindOptional:
		switch rt.Elem.Kind {
		case cppast.KindBuiltin:
			return Type{Kind: TypeOptionalPrimitive, Prim: primFor(rt.Elem.Builtin)}, nil
		case cppast.KindNamed:
			if _, err := m.reg.WrapperFor(rt.Elem.Name); err != nil {
				return Type{}, err
			}
			return Type{Kind: TypeOptionalWrapper, Class: rt.Elem.Name}, nil
		case cppast.KindOptional, cppast.KindSequence:
			return Type{}, &UnsupportedTypeError{
				Spelling: rt.Spelling,
				Reason:   "optional of optional or container is not supported",
			}
		default:
			return Type{}, &UnsupportedTypeError{
				Spelling: rt.Spelling,
				Reason:   "optional element type has no mapping",
			}
		}

	case cppast.KindNamed:
		m.reg.Declare(rt.Name)
		return named(rt.Name), nil
	}

	return Type{}, &UnsupportedTypeError{
		Spelling: rt.Spelling,
		Reason:   "type is outside the recognized set",
	}
}

// mapElem maps a sequence element. Only one level of container
// unwrapping is supported; nesting fails loudly rather than mis-map.
func (m *Mapper) mapElem(rt *cppast.RawType) (Type, error) {
	switch rt.Kind {
	case cppast.KindSequence, cppast.KindOptional:
		return Type{}, &UnsupportedTypeError{
			Spelling: rt.Spelling,
			Reason:   "nested containers are not supported",
		}
	}
	return m.MapType(rt)
}

// primFor is the fixed builtin mapping table. It is total over the
// recognized builtin set. Collapses: long and long long both map to
// Int64 (likewise unsigned), plain char maps to UInt8 and long double
// to Float64, since the target format has no closer type.
func primFor(b cppast.Builtin) Prim {
	switch b {
	case cppast.BuiltinBool:
		return PrimBool
	case cppast.BuiltinChar, cppast.BuiltinUChar:
		return PrimUInt8
	case cppast.BuiltinSChar:
		return PrimInt8
	case cppast.BuiltinShort:
		return PrimInt16
	case cppast.BuiltinUShort:
		return PrimUInt16
	case cppast.BuiltinInt:
		return PrimInt32
	case cppast.BuiltinUInt:
		return PrimUInt32
	case cppast.BuiltinLong, cppast.BuiltinLongLong:
		return PrimInt64
	case cppast.BuiltinULong, cppast.BuiltinULongLong:
		return PrimUInt64
	case cppast.BuiltinFloat:
		return PrimFloat32
	case cppast.BuiltinDouble, cppast.BuiltinLongDouble:
		return PrimFloat64
	}
	// Unreachable while the table stays total over cppast.Builtins.
	return PrimInt32
}
