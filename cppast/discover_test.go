package cppast

import (
	"testing"

	"golang.org/x/tools/txtar"
)

func TestDiscoverFS(t *testing.T) {
	ar := txtar.Parse([]byte(`
-- net/packet.h --
struct Packet {
	int id;
	std::string body;
};
-- shapes/point.hpp --
class Point {
	double x;
	double y;
};
-- shapes/readme.md --
not a header, must be ignored even though it says class X { int y; };
`))
	fsys, err := txtar.FS(ar)
	if err != nil {
		t.Fatal(err)
	}
	classes, err := DiscoverFS(fsys)
	if err != nil {
		t.Fatal(err)
	}
	// Lexical walk order: net/ before shapes/.
	want := []string{"Packet", "Point"}
	if len(classes) != len(want) {
		t.Fatalf("got %d classes, want %d", len(classes), len(want))
	}
	for i, w := range want {
		if classes[i].Name != w {
			t.Errorf("class %d: got %q, want %q", i, classes[i].Name, w)
		}
	}
	if classes[0].File != "net/packet.h" {
		t.Errorf("provenance: %q", classes[0].File)
	}
}

func TestDiscoverFSBadHeader(t *testing.T) {
	ar := txtar.Parse([]byte(`
-- broken.h --
class Broken {
	int x;
`))
	fsys, err := txtar.FS(ar)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := DiscoverFS(fsys); err == nil {
		t.Fatal("expected scan failure to surface")
	}
}
