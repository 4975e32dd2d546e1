// Package schema derives Cap'n Proto schema declarations from class
// declarations discovered in C++ source.
//
// The derivation is a single forward pass: real classes are promoted
// into the registry in discovery order, each member is mapped to a
// schema type in declaration order, and references to classes that
// were never defined materialize as zero-field stubs. optional<T>
// members of user types synthesize a single-field OptionalT wrapper,
// deduplicated by name. The final declaration order is real classes,
// then stubs, then wrappers, so reruns over unchanged input produce
// byte-identical output.
//
// # Related Packages
//
//   - github.com/hmartens/cpp2capnp/cppast - Class extraction
//   - github.com/hmartens/cpp2capnp/encode - Schema text output
package schema
