// Package cppast extracts class declarations from C++ header files.
//
// It is deliberately not a C++ front end: it recognizes just enough of
// the language to report, per class, an ordered list of data members
// with a structured type descriptor. Method declarations, access
// specifiers, nested types and preprocessor lines are skipped.
//
// # Related Packages
//
//   - github.com/hmartens/cpp2capnp/schema - Schema derivation
//   - github.com/hmartens/cpp2capnp/encode - Schema text output
package cppast
