package encode

import (
	"testing"

	"github.com/hmartens/cpp2capnp/cppast"
	"github.com/hmartens/cpp2capnp/schema"
)

func TestEncode(t *testing.T) {
	decls := []*schema.ClassDecl{
		{Name: "A", Fields: []schema.FieldDecl{
			{Name: "x", Ordinal: 0, Type: schema.Type{Kind: schema.TypePrimitive, Prim: schema.PrimInt32}},
			{Name: "y", Ordinal: 1, Type: schema.Type{Kind: schema.TypeOptionalPrimitive, Prim: schema.PrimInt32}},
			{Name: "z", Ordinal: 2, Type: schema.Type{Kind: schema.TypeOptionalWrapper, Class: "B"}},
		}},
		{Name: "B", IsStub: true},
		{Name: "OptionalB", Fields: []schema.FieldDecl{
			{Name: "value", Ordinal: 0, Type: schema.Type{Kind: schema.TypeNamed, Class: "B"}},
		}},
	}
	got := MustString(decls)
	want := `@0xc0de1234abcd5678;

struct A {
  x @0 :Int32;
  y @1 :OptionalInt32;
  z @2 :OptionalB;
}

struct B {
}

struct OptionalB {
  value @0 :B;
}

`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeOptions(t *testing.T) {
	decls := []*schema.ClassDecl{
		{Name: "A", Fields: []schema.FieldDecl{
			{Name: "n", Ordinal: 0, Type: schema.Type{Kind: schema.TypePrimitive, Prim: schema.PrimUInt64}},
		}},
	}
	got := MustString(decls, FileID("0xdeadbeefdeadbeef"), Indent(4))
	want := `@0xdeadbeefdeadbeef;

struct A {
    n @0 :UInt64;
}

`
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

// Scanning the same headers twice must render byte-identical schemas.
func TestRerunByteIdentical(t *testing.T) {
	src := []byte(`
class A {
	int x;
	std::optional<int> y;
	boost::optional<B> z;
};
class C {
	std::optional<B> b;
	std::vector<double> samples;
};
`)
	render := func() string {
		classes, err := cppast.Scan(src, "a.h")
		if err != nil {
			t.Fatal(err)
		}
		res, err := schema.Derive(classes)
		if err != nil {
			t.Fatal(err)
		}
		return MustString(res.Decls)
	}
	first := render()
	second := render()
	if first != second {
		t.Fatalf("reruns differ:\n%s\n---\n%s", first, second)
	}
	want := `@0xc0de1234abcd5678;

struct A {
  x @0 :Int32;
  y @1 :OptionalInt32;
  z @2 :OptionalB;
}

struct C {
  b @0 :OptionalB;
  samples @1 :List(Float64);
}

struct B {
}

struct OptionalB {
  value @0 :B;
}

`
	if first != want {
		t.Fatalf("got:\n%s\nwant:\n%s", first, want)
	}
}
