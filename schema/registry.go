package schema

import (
	"fmt"
	"slices"
)

// Registry owns every ClassDecl of one derivation run: real classes in
// discovery order, stubs in first-reference order and synthesized
// wrappers in synthesis order. It is created per run and discarded;
// nothing here is process-wide.
type Registry struct {
	decls map[string]*ClassDecl

	real     []*ClassDecl
	stubs    []*ClassDecl
	wrappers []*ClassDecl

	wrapperFor map[string]*ClassDecl
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		decls:      make(map[string]*ClassDecl),
		wrapperFor: make(map[string]*ClassDecl),
	}
}

// Declare returns the declaration for name, creating a field-less stub
// if the name is unknown. Idempotent.
func (r *Registry) Declare(name string) *ClassDecl {
	if d, ok := r.decls[name]; ok {
		return d
	}
	d := &ClassDecl{Name: name, IsStub: true}
	r.decls[name] = d
	r.stubs = append(r.stubs, d)
	return d
}

// PromoteToReal marks name as a defined class and appends it to the
// discovery-order log. A prior stub is converted in place so earlier
// references resolve to the completed declaration; promotion is
// one-directional and a second definition is an error.
func (r *Registry) PromoteToReal(name string) (*ClassDecl, error) {
	d, ok := r.decls[name]
	if !ok {
		d = &ClassDecl{Name: name}
		r.decls[name] = d
		r.real = append(r.real, d)
		return d, nil
	}
	if !d.IsStub {
		return nil, &DuplicateClassError{Class: name}
	}
	d.IsStub = false
	r.real = append(r.real, d)
	return d, nil
}

// WrapperFor returns the synthesized Optional<name> wrapper, creating
// it on first use. The wrapped class is stub-registered if unknown; a
// known real class is left untouched. A user class already claiming
// the wrapper's name is an input error, not an invariant violation.
func (r *Registry) WrapperFor(name string) (*ClassDecl, error) {
	if w, ok := r.wrapperFor[name]; ok {
		return w, nil
	}
	wname := "Optional" + name
	if _, taken := r.decls[wname]; taken {
		return nil, &WrapperNameError{Class: wname, Wrapped: name}
	}
	r.Declare(name)
	w := &ClassDecl{
		Name:   wname,
		Fields: []FieldDecl{{Name: "value", Ordinal: 0, Type: named(name)}},
	}
	r.decls[wname] = w
	r.wrapperFor[name] = w
	r.wrappers = append(r.wrappers, w)
	return w, nil
}

// Decls returns the final emission order: real classes in discovery
// order, classes still stubs in first-reference order, then wrappers
// in synthesis order. This ordering is the contract that makes reruns
// over unchanged input byte-identical.
func (r *Registry) Decls() []*ClassDecl {
	out := slices.Clone(r.real)
	for _, s := range r.stubs {
		if s.IsStub {
			out = append(out, s)
		}
	}
	return append(out, r.wrappers...)
}

// Verify checks that every named reference in every field resolves to
// a declaration in the final set. A failure is a programming error in
// the derivation pass, not bad input.
func (r *Registry) Verify() error {
	for _, d := range r.Decls() {
		for _, f := range d.Fields {
			if err := r.verifyType(d.Name, f.Name, f.Type); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) verifyType(class, field string, t Type) error {
	switch t.Kind {
	case TypeList:
		return r.verifyType(class, field, *t.Elem)
	case TypeNamed:
		if _, ok := r.decls[t.Class]; !ok {
			return fmt.Errorf("%w: %s.%s references undeclared class %q",
				ErrInvariant, class, field, t.Class)
		}
	case TypeOptionalWrapper:
		if _, ok := r.wrapperFor[t.Class]; !ok {
			return fmt.Errorf("%w: %s.%s references unsynthesized wrapper for %q",
				ErrInvariant, class, field, t.Class)
		}
	}
	return nil
}
