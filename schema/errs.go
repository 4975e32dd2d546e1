package schema

import (
	"errors"
	"fmt"
)

// ErrInvariant wraps violations of registry invariants. These are
// programming errors, never expected from valid input.
var ErrInvariant = errors.New("schema invariant violated")

// UnsupportedTypeError reports a member whose type has no mapping.
type UnsupportedTypeError struct {
	Class    string
	Field    string
	Spelling string
	Reason   string
}

func (e *UnsupportedTypeError) Error() string {
	loc := e.Class
	if e.Field != "" {
		loc += "." + e.Field
	}
	if loc != "" {
		return fmt.Sprintf("unsupported type at %s: %q (%s)", loc, e.Spelling, e.Reason)
	}
	return fmt.Sprintf("unsupported type %q (%s)", e.Spelling, e.Reason)
}

// DuplicateClassError reports a class defined more than once across
// the scanned headers.
type DuplicateClassError struct {
	Class string
}

func (e *DuplicateClassError) Error() string {
	return fmt.Sprintf("class %q defined more than once", e.Class)
}

// WrapperNameError reports a scanned class whose name collides with an
// optional wrapper the derivation needs to synthesize.
type WrapperNameError struct {
	Class   string // the declared class
	Wrapped string // the class needing an optional wrapper
}

func (e *WrapperNameError) Error() string {
	return fmt.Sprintf("class %q collides with the optional wrapper for %q", e.Class, e.Wrapped)
}

// DuplicateFieldError reports two members of one class colliding on
// the same schema field name after renaming.
type DuplicateFieldError struct {
	Class string
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("class %q: duplicate schema field name %q", e.Class, e.Field)
}
