package cppast

import (
	"errors"
	"fmt"
)

// ErrParse wraps all scanner failures; they are fatal and never
// retried (scanning identical input fails identically).
var ErrParse = errors.New("parse error")

// ParseError reports a scanning failure with its source location.
type ParseError struct {
	File    string
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}
