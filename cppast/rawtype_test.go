package cppast

import "testing"

func TestParseTypeBuiltins(t *testing.T) {
	tests := []struct {
		spelling string
		want     Builtin
	}{
		{"int", BuiltinInt},
		{"const int", BuiltinInt},
		{"unsigned", BuiltinUInt},
		{"unsigned int", BuiltinUInt},
		{"signed char", BuiltinSChar},
		{"unsigned long long", BuiltinULongLong},
		{"long long int", BuiltinLongLong},
		{"int8_t", BuiltinSChar},
		{"std::uint32_t", BuiltinUInt},
		{"uint64_t", BuiltinULongLong},
		{"std::size_t", BuiltinULong},
		{"std::byte", BuiltinUChar},
		{"long double", BuiltinLongDouble},
		{"bool", BuiltinBool},
	}
	for _, tc := range tests {
		rt := ParseType(tc.spelling)
		if rt.Kind != KindBuiltin {
			t.Errorf("%q: got kind %d, want builtin", tc.spelling, rt.Kind)
			continue
		}
		if rt.Builtin != tc.want {
			t.Errorf("%q: got %s, want %s", tc.spelling, rt.Builtin, tc.want)
		}
	}
}

func TestParseTypeShapes(t *testing.T) {
	tests := []struct {
		name     string
		spelling string
		check    func(t *testing.T, rt *RawType)
	}{
		{"string", "std::string", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindString {
				t.Errorf("got kind %d", rt.Kind)
			}
		}},
		{"basic_string", "std::basic_string<char>", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindString {
				t.Errorf("got kind %d", rt.Kind)
			}
		}},
		{"vector of int", "std::vector<int>", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindSequence || rt.Elem.Kind != KindBuiltin || rt.Elem.Builtin != BuiltinInt {
				t.Errorf("got %+v", rt)
			}
		}},
		{"vector with allocator", "std::vector<int, MyAlloc<int>>", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindSequence || rt.Elem.Kind != KindBuiltin {
				t.Errorf("got %+v", rt)
			}
		}},
		{"boost optional", "boost::optional<int>", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindOptional || rt.Elem.Builtin != BuiltinInt {
				t.Errorf("got %+v", rt)
			}
		}},
		{"std optional of class", "std::optional<Foo>", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindOptional || rt.Elem.Kind != KindNamed || rt.Elem.Name != "Foo" {
				t.Errorf("got %+v", rt)
			}
		}},
		{"optional of vector", "std::optional<std::vector<int>>", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindOptional || rt.Elem.Kind != KindSequence {
				t.Errorf("got %+v", rt)
			}
		}},
		{"qualified class", "geom::Point", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindNamed || rt.Name != "Point" {
				t.Errorf("got %+v", rt)
			}
		}},
		{"plain class", "Point", func(t *testing.T, rt *RawType) {
			if rt.Kind != KindNamed || rt.Name != "Point" {
				t.Errorf("got %+v", rt)
			}
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, ParseType(tc.spelling))
		})
	}
}

func TestParseTypeUnsupported(t *testing.T) {
	spellings := []string{
		"int *",
		"char&",
		"int[4]",
		"void (*)(int)",
		"std::map<int, int>",
		"std::wstring",
		"boost::variant<int, bool>",
		"std::shared_ptr<Foo>",
		"",
	}
	for _, s := range spellings {
		if rt := ParseType(s); rt.Kind != KindUnsupported {
			t.Errorf("%q: got kind %d, want unsupported", s, rt.Kind)
		}
	}
}
