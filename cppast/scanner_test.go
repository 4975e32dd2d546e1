package cppast

import (
	"errors"
	"testing"
)

const testHeader = `#pragma once
#include <vector>
#include <optional>

// A point in space.
class Point {
public:
	Point();
	double X() const { return x; }
	bool operator==(const Point& o) const;
private:
	double x;
	double y; // vertical
};

struct Config; // forward declaration

namespace net {

struct Packet {
	uint32_t id;
	std::vector<uint8_t> payload;
	std::optional<Point> origin = {};
	bool urgent : 1;
	static int counter;
	void reset();
	using clock = int;
};

} // namespace net

enum class Mode { Fast, Slow };

template <class T>
class Box {
	T value;
};
`

func TestScan(t *testing.T) {
	classes, err := Scan([]byte(testHeader), "test.h")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 2 {
		t.Fatalf("expected Point and Packet, got %d classes", len(classes))
	}

	point := classes[0]
	if point.Name != "Point" {
		t.Fatalf("got %q, want Point", point.Name)
	}
	if len(point.Fields) != 2 || point.Fields[0].Name != "x" || point.Fields[1].Name != "y" {
		t.Fatalf("Point fields: %+v", point.Fields)
	}
	if point.Fields[0].Type.Kind != KindBuiltin || point.Fields[0].Type.Builtin != BuiltinDouble {
		t.Errorf("Point.x type: %+v", point.Fields[0].Type)
	}

	packet := classes[1]
	if packet.Name != "Packet" {
		t.Fatalf("got %q, want Packet", packet.Name)
	}
	wantFields := []string{"id", "payload", "origin", "urgent"}
	if len(packet.Fields) != len(wantFields) {
		t.Fatalf("Packet fields: %+v", packet.Fields)
	}
	for i, w := range wantFields {
		if packet.Fields[i].Name != w {
			t.Errorf("Packet field %d: got %q, want %q", i, packet.Fields[i].Name, w)
		}
	}
	if packet.Fields[1].Type.Kind != KindSequence {
		t.Errorf("payload type: %+v", packet.Fields[1].Type)
	}
	if packet.Fields[2].Type.Kind != KindOptional || packet.Fields[2].Type.Elem.Name != "Point" {
		t.Errorf("origin type: %+v", packet.Fields[2].Type)
	}
	if packet.File != "test.h" || packet.Line == 0 {
		t.Errorf("missing provenance: %+v", packet)
	}
}

func TestScanFieldDeclarators(t *testing.T) {
	src := `
struct S {
	int plain;
	int initialized = 3;
	int braced{4};
	mutable long flagged;
	const std::string name;
	int arr[4];
	Foo* ptr;
	std::vector<std::string> words;
};
`
	classes, err := Scan([]byte(src), "s.h")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 {
		t.Fatalf("got %d classes", len(classes))
	}
	s := classes[0]
	want := []struct {
		name string
		kind Kind
	}{
		{"plain", KindBuiltin},
		{"initialized", KindBuiltin},
		{"braced", KindBuiltin},
		{"flagged", KindBuiltin},
		{"name", KindString},
		{"arr", KindUnsupported},
		{"ptr", KindUnsupported},
		{"words", KindSequence},
	}
	if len(s.Fields) != len(want) {
		t.Fatalf("fields: %+v", s.Fields)
	}
	for i, w := range want {
		f := s.Fields[i]
		if f.Name != w.name || f.Type.Kind != w.kind {
			t.Errorf("field %d: got %s/%d, want %s/%d", i, f.Name, f.Type.Kind, w.name, w.kind)
		}
	}
}

func TestScanMultiDeclarator(t *testing.T) {
	src := `
struct S {
	int a, b;
	double x, y, z;
	int n = 1, m = 2;
	unsigned p : 2, q : 3;
	int ok, *bad, arr2[2];
};
`
	classes, err := Scan([]byte(src), "s.h")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 {
		t.Fatalf("got %d classes", len(classes))
	}
	s := classes[0]
	want := []struct {
		name string
		kind Kind
	}{
		{"a", KindBuiltin},
		{"b", KindBuiltin},
		{"x", KindBuiltin},
		{"y", KindBuiltin},
		{"z", KindBuiltin},
		{"n", KindBuiltin},
		{"m", KindBuiltin},
		{"p", KindBuiltin},
		{"q", KindBuiltin},
		{"ok", KindBuiltin},
		{"bad", KindUnsupported},
		{"arr2", KindUnsupported},
	}
	if len(s.Fields) != len(want) {
		t.Fatalf("fields: %+v", s.Fields)
	}
	for i, w := range want {
		f := s.Fields[i]
		if f.Name != w.name || f.Type.Kind != w.kind {
			t.Errorf("field %d: got %s/%d, want %s/%d", i, f.Name, f.Type.Kind, w.name, w.kind)
		}
	}
}

func TestScanSkipsFunctionBodies(t *testing.T) {
	src := `
inline int f() {
	class Local { int x; };
	Local l;
	return 0;
}

Point operator+(const Point& a, const Point& b) {
	struct Scratch { double d; };
	return a;
}

struct S { int a; };
`
	classes, err := Scan([]byte(src), "f.h")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 || classes[0].Name != "S" {
		t.Fatalf("local classes leaked out of function bodies: %+v", classes)
	}
}

func TestScanCommentsAndStrings(t *testing.T) {
	src := `
struct S {
	/* class Hidden { int x; }; */
	int a; // struct AlsoHidden { int y; };
	std::string s = "class InString { int z; };";
};
`
	classes, err := Scan([]byte(src), "s.h")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 || len(classes[0].Fields) != 2 {
		t.Fatalf("comment or literal text leaked into scan: %+v", classes)
	}
}

func TestScanUnterminated(t *testing.T) {
	_, err := Scan([]byte("class Broken {\n\tint x;\n"), "b.h")
	if !errors.Is(err, ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.File != "b.h" {
		t.Fatalf("expected located ParseError, got %v", err)
	}
}

func TestScanSkipsMemberlessClasses(t *testing.T) {
	src := `
class Empty {};
class Methods {
public:
	void f();
};
class HasField { int x; };
`
	classes, err := Scan([]byte(src), "m.h")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 || classes[0].Name != "HasField" {
		t.Fatalf("got %+v", classes)
	}
}
