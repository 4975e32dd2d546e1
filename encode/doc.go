// Package encode renders schema declarations as Cap'n Proto text.
//
// # Usage
//
//	res, err := schema.Derive(classes)
//	// ...
//	err = encode.Encode(res.Decls, os.Stdout)
//
//	// With options
//	err = encode.Encode(res.Decls, w, encode.FileID("0xdead..."), encode.Indent(4))
//
// # Related Packages
//
//   - github.com/hmartens/cpp2capnp/schema - Schema derivation
package encode
