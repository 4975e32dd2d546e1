package encode

import (
	"fmt"
	"io"
	"strings"

	"github.com/hmartens/cpp2capnp/schema"
)

// DefaultFileID is the constant top-level file identifier prepended to
// every generated schema.
const DefaultFileID = "0xc0de1234abcd5678"

type EncState struct {
	indent int
	fileID string

	Color func(ColorAttr, string) string
}

// Encode renders decls as a Cap'n Proto schema document: the file ID
// line, then one struct block per declaration with members in ordinal
// order.
func Encode(decls []*schema.ClassDecl, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		fileID: DefaultFileID,
	}
	for _, opt := range opts {
		opt(es)
	}
	if err := writeString(w, es.color(SepColor, "@"+es.fileID+";")+"\n\n"); err != nil {
		return err
	}
	for _, d := range decls {
		if err := encodeDecl(d, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeDecl(d *schema.ClassDecl, w io.Writer, es *EncState) error {
	head := es.color(KeywordColor, "struct") + " " + es.color(NameColor, d.Name) + " {\n"
	if err := writeString(w, head); err != nil {
		return err
	}
	pad := strings.Repeat(" ", es.indent)
	for i := range d.Fields {
		f := &d.Fields[i]
		line := fmt.Sprintf("%s%s %s :%s;\n",
			pad,
			es.color(FieldColor, f.Name),
			es.color(OrdinalColor, fmt.Sprintf("@%d", f.Ordinal)),
			es.color(TypeColor, f.Type.Ref()),
		)
		if err := writeString(w, line); err != nil {
			return err
		}
	}
	return writeString(w, "}\n\n")
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
