package encode

import (
	"bytes"

	"github.com/hmartens/cpp2capnp/schema"
)

func MustString(decls []*schema.ClassDecl, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(decls, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
