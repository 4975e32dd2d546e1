package schema

import (
	"errors"
	"fmt"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/hmartens/cpp2capnp/cppast"
	"github.com/hmartens/cpp2capnp/debug"
)

// Mode selects how unsupported member types are handled.
type Mode int

const (
	// Strict fails the run on the first unsupported member type.
	Strict Mode = iota

	// Lenient emits the class with the member skipped and records a
	// Diagnostic. The skipped member still consumes its ordinal slot,
	// so numbering is identical across strict and lenient runs.
	Lenient
)

// Diagnostic records a member skipped in lenient mode.
type Diagnostic struct {
	Class    string
	Field    string
	Ordinal  int
	Spelling string
	Reason   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("skipped %s.%s @%d: unsupported type %q (%s)",
		d.Class, d.Field, d.Ordinal, d.Spelling, d.Reason)
}

type deriveOpts struct {
	mode Mode
}

// Option configures a derivation run.
type Option func(*deriveOpts)

// WithMode sets strict or lenient handling of unsupported types.
func WithMode(m Mode) Option {
	return func(o *deriveOpts) { o.mode = m }
}

// Result is the outcome of one derivation run.
type Result struct {
	// Decls is the complete declaration list in emission order.
	Decls []*ClassDecl

	// Diagnostics lists members skipped in lenient mode.
	Diagnostics []Diagnostic
}

// Derive runs the derivation pass over classes in discovery order and
// returns the final declaration list. The pass is a single forward
// walk: each class is promoted to real, then each member gets the next
// ordinal and a mapped type, registering stubs and wrappers as a side
// effect. Cycles terminate because stub and wrapper creation is lazy
// and idempotent.
func Derive(classes []*cppast.Class, opts ...Option) (*Result, error) {
	o := &deriveOpts{}
	for _, opt := range opts {
		opt(o)
	}

	reg := NewRegistry()
	mapper := NewMapper(reg)
	res := &Result{}

	for _, c := range classes {
		d, err := reg.PromoteToReal(c.Name)
		if err != nil {
			return nil, err
		}
		seen := make(map[string]bool, len(c.Fields))
		for ord, f := range c.Fields {
			t, err := mapper.MapType(f.Type)
			if err != nil {
				var ute *UnsupportedTypeError
				if o.mode == Lenient && errors.As(err, &ute) {
					res.Diagnostics = append(res.Diagnostics, Diagnostic{
						Class:    c.Name,
						Field:    f.Name,
						Ordinal:  ord,
						Spelling: ute.Spelling,
						Reason:   ute.Reason,
					})
					continue // the ordinal slot stays consumed
				}
				if errors.As(err, &ute) {
					ute.Class = c.Name
					ute.Field = f.Name
				}
				return nil, err
			}
			name := fieldName(f.Name)
			if seen[name] {
				return nil, &DuplicateFieldError{Class: c.Name, Field: name}
			}
			seen[name] = true
			d.Fields = append(d.Fields, FieldDecl{Name: name, Ordinal: ord, Type: t})
		}
		if debug.Derive() {
			fmt.Fprintf(os.Stderr, "schema: %s: %d fields\n", c.Name, len(d.Fields))
		}
	}

	if err := reg.Verify(); err != nil {
		return nil, err
	}
	res.Decls = reg.Decls()
	return res, nil
}

// fieldName renders a member name in the schema's lowerCamel
// convention by lowering the first rune only.
func fieldName(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
