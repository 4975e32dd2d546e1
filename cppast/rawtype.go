package cppast

import "strings"

// Kind discriminates RawType variants.
type Kind int

const (
	KindInvalid Kind = iota

	// KindBuiltin is a recognized builtin scalar (see Builtin).
	KindBuiltin

	// KindString is a recognized string-like type (std::string).
	KindString

	// KindSequence is a recognized contiguous sequence (std::vector<T>).
	KindSequence

	// KindOptional is boost::optional<T> or std::optional<T>.
	KindOptional

	// KindNamed is a user-defined type referenced by name.
	KindNamed

	// KindUnsupported is anything the descriptor grammar does not
	// cover: pointers, references, arrays, unrecognized templates,
	// unrecognized standard-library types.
	KindUnsupported
)

// Builtin identifies a recognized C++ builtin scalar. Fixed-width
// aliases (int32_t and friends) fold onto the builtin of the same
// width and signedness.
type Builtin int

const (
	BuiltinBool Builtin = iota
	BuiltinChar
	BuiltinSChar
	BuiltinUChar
	BuiltinShort
	BuiltinUShort
	BuiltinInt
	BuiltinUInt
	BuiltinLong
	BuiltinULong
	BuiltinLongLong
	BuiltinULongLong
	BuiltinFloat
	BuiltinDouble
	BuiltinLongDouble
)

// Builtins returns all recognized builtin scalar kinds.
func Builtins() []Builtin {
	return []Builtin{
		BuiltinBool,
		BuiltinChar,
		BuiltinSChar,
		BuiltinUChar,
		BuiltinShort,
		BuiltinUShort,
		BuiltinInt,
		BuiltinUInt,
		BuiltinLong,
		BuiltinULong,
		BuiltinLongLong,
		BuiltinULongLong,
		BuiltinFloat,
		BuiltinDouble,
		BuiltinLongDouble,
	}
}

func (b Builtin) String() string {
	switch b {
	case BuiltinBool:
		return "bool"
	case BuiltinChar:
		return "char"
	case BuiltinSChar:
		return "signed char"
	case BuiltinUChar:
		return "unsigned char"
	case BuiltinShort:
		return "short"
	case BuiltinUShort:
		return "unsigned short"
	case BuiltinInt:
		return "int"
	case BuiltinUInt:
		return "unsigned int"
	case BuiltinLong:
		return "long"
	case BuiltinULong:
		return "unsigned long"
	case BuiltinLongLong:
		return "long long"
	case BuiltinULongLong:
		return "unsigned long long"
	case BuiltinFloat:
		return "float"
	case BuiltinDouble:
		return "double"
	case BuiltinLongDouble:
		return "long double"
	}
	return "builtin(?)"
}

// RawType describes a member's type with just enough structure for
// schema mapping. One level of sequence/optional nesting is preserved
// structurally; everything else is a name or unsupported. Spelling
// always carries the normalized source text for diagnostics.
type RawType struct {
	Kind     Kind
	Builtin  Builtin  // KindBuiltin
	Elem     *RawType // KindSequence, KindOptional
	Name     string   // KindNamed, unqualified
	Spelling string
}

var builtinSpellings = map[string]Builtin{
	"bool":                   BuiltinBool,
	"char":                   BuiltinChar,
	"signed char":            BuiltinSChar,
	"unsigned char":          BuiltinUChar,
	"short":                  BuiltinShort,
	"short int":              BuiltinShort,
	"signed short":           BuiltinShort,
	"signed short int":       BuiltinShort,
	"unsigned short":         BuiltinUShort,
	"unsigned short int":     BuiltinUShort,
	"int":                    BuiltinInt,
	"signed":                 BuiltinInt,
	"signed int":             BuiltinInt,
	"unsigned":               BuiltinUInt,
	"unsigned int":           BuiltinUInt,
	"long":                   BuiltinLong,
	"long int":               BuiltinLong,
	"signed long":            BuiltinLong,
	"unsigned long":          BuiltinULong,
	"unsigned long int":      BuiltinULong,
	"long long":              BuiltinLongLong,
	"long long int":          BuiltinLongLong,
	"signed long long":       BuiltinLongLong,
	"unsigned long long":     BuiltinULongLong,
	"unsigned long long int": BuiltinULongLong,
	"float":                  BuiltinFloat,
	"double":                 BuiltinDouble,
	"long double":            BuiltinLongDouble,

	// Fixed-width aliases fold onto builtins of matching width.
	"int8_t":        BuiltinSChar,
	"int16_t":       BuiltinShort,
	"int32_t":       BuiltinInt,
	"int64_t":       BuiltinLongLong,
	"uint8_t":       BuiltinUChar,
	"uint16_t":      BuiltinUShort,
	"uint32_t":      BuiltinUInt,
	"uint64_t":      BuiltinULongLong,
	"std::int8_t":   BuiltinSChar,
	"std::int16_t":  BuiltinShort,
	"std::int32_t":  BuiltinInt,
	"std::int64_t":  BuiltinLongLong,
	"std::uint8_t":  BuiltinUChar,
	"std::uint16_t": BuiltinUShort,
	"std::uint32_t": BuiltinUInt,
	"std::uint64_t": BuiltinULongLong,
	"std::size_t":   BuiltinULong,
	"size_t":        BuiltinULong,
	"std::byte":     BuiltinUChar,
}

// ParseType parses a member type spelling into a RawType. It never
// fails: anything outside the recognized grammar becomes
// KindUnsupported, so the schema layer can make an explicit decision
// rather than inheriting a silent fallback.
func ParseType(spelling string) *RawType {
	s := normalizeSpelling(spelling)
	rt := &RawType{Spelling: s}
	if s == "" {
		rt.Kind = KindUnsupported
		return rt
	}
	if strings.ContainsAny(s, "*&()[]") {
		rt.Kind = KindUnsupported
		return rt
	}
	if b, ok := builtinSpellings[s]; ok {
		rt.Kind = KindBuiltin
		rt.Builtin = b
		return rt
	}
	if s == "std::string" || strings.HasPrefix(s, "std::basic_string<") {
		rt.Kind = KindString
		return rt
	}
	if lt := strings.IndexByte(s, '<'); lt >= 0 {
		if !strings.HasSuffix(s, ">") {
			rt.Kind = KindUnsupported
			return rt
		}
		head := strings.TrimSpace(s[:lt])
		inner := firstTemplateArg(s[lt+1 : len(s)-1])
		switch head {
		case "std::vector":
			rt.Kind = KindSequence
			rt.Elem = ParseType(inner)
		case "std::optional", "boost::optional":
			rt.Kind = KindOptional
			rt.Elem = ParseType(inner)
		default:
			rt.Kind = KindUnsupported
		}
		return rt
	}
	// Unrecognized std/boost types are unsupported rather than treated
	// as user classes, so they never stub-register library names.
	if strings.HasPrefix(s, "std::") || strings.HasPrefix(s, "boost::") {
		rt.Kind = KindUnsupported
		return rt
	}
	if name, ok := parseQualifiedName(s); ok {
		rt.Kind = KindNamed
		rt.Name = name
		return rt
	}
	rt.Kind = KindUnsupported
	return rt
}

// normalizeSpelling collapses whitespace and drops cv-qualifiers and
// elaborated type keywords that do not affect mapping.
func normalizeSpelling(s string) string {
	fields := strings.Fields(s)
	kept := fields[:0]
	for _, f := range fields {
		switch f {
		case "const", "volatile", "mutable", "struct", "class", "typename":
			continue
		}
		kept = append(kept, f)
	}
	return strings.Join(kept, " ")
}

// firstTemplateArg returns the first top-level template argument,
// dropping allocator and comparator tails like std::vector<T, Alloc>.
func firstTemplateArg(s string) string {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(s[:i])
			}
		}
	}
	return strings.TrimSpace(s)
}

// parseQualifiedName accepts identifiers with optional namespace
// qualification (a::b::C) and returns the unqualified name.
func parseQualifiedName(s string) (string, bool) {
	segs := strings.Split(s, "::")
	for _, seg := range segs {
		if !isIdent(seg) {
			return "", false
		}
	}
	return segs[len(segs)-1], true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
