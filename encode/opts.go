package encode

type EncodeOption func(*EncState)

// Indent sets the member indent width.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// FileID overrides the top-level file identifier ("0x..." form).
func FileID(id string) EncodeOption {
	return func(es *EncState) { es.fileID = id }
}

// EncodeColors enables colored output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
