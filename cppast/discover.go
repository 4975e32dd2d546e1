package cppast

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/hmartens/cpp2capnp/debug"
)

var headerExts = map[string]bool{
	".h":   true,
	".hh":  true,
	".hpp": true,
	".hxx": true,
}

// Discover recursively scans dir for C++ headers and returns all class
// definitions. Files are visited in lexical order, so discovery order
// is deterministic for a given tree.
func Discover(dir string) ([]*Class, error) {
	return DiscoverFS(os.DirFS(dir))
}

// DiscoverFS is Discover over an fs.FS.
func DiscoverFS(fsys fs.FS) ([]*Class, error) {
	var classes []*Class
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !headerExts[path.Ext(p)] {
			return nil
		}
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("failed to read %q: %w", p, err)
		}
		cs, err := Scan(src, p)
		if err != nil {
			return err
		}
		if debug.Scan() {
			fmt.Fprintf(os.Stderr, "cppast: %s: %d classes\n", p, len(cs))
		}
		classes = append(classes, cs...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return classes, nil
}
