package schema

// FieldDecl is one numbered field of a schema declaration. Ordinal is
// the field's declaration-order position; it is assigned once and
// never shifts, so a field skipped in lenient mode leaves a gap rather
// than renumbering its successors.
type FieldDecl struct {
	Name    string
	Ordinal int
	Type    Type
}

// ClassDecl is a named schema declaration. IsStub marks declarations
// synthesized because the name was referenced but never defined;
// promotion clears it in place so earlier references resolve to the
// completed declaration.
type ClassDecl struct {
	Name   string
	IsStub bool
	Fields []FieldDecl
}
