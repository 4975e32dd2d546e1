package cppast

import (
	"strings"
)

// Field is one data member of a class, in declaration order.
type Field struct {
	Name string
	Type *RawType
}

// Class is a class or struct definition with its ordered data members.
type Class struct {
	Name   string
	File   string
	Line   int
	Fields []*Field
}

// Scan extracts class definitions from C++ header source. Classes are
// reported in source order; only classes with at least one data member
// are reported (referenced-but-memberless classes surface downstream
// as stubs). file is used for error locations only.
func Scan(src []byte, file string) ([]*Class, error) {
	s := &scanner{src: stripNoise(src), file: file, line: 1}
	var classes []*Class
	for {
		word, ok, err := s.nextWord()
		if err != nil {
			return nil, err
		}
		if !ok {
			return classes, nil
		}
		switch word {
		case "enum":
			if err := s.skipEnum(); err != nil {
				return nil, err
			}
		case "template":
			// Class templates are out of scope; skip the parameter
			// list and the declaration that follows.
			if err := s.skipTemplateDecl(); err != nil {
				return nil, err
			}
		case "class", "struct":
			cls, err := s.scanClass()
			if err != nil {
				return nil, err
			}
			if cls != nil && len(cls.Fields) > 0 {
				classes = append(classes, cls)
			}
		}
		// Everything else, including namespace blocks and extern "C"
		// blocks, is scanned through transparently.
	}
}

type scanner struct {
	src  []byte
	file string
	i    int
	line int
}

func (s *scanner) errf(msg string) error {
	return &ParseError{File: s.file, Line: s.line, Message: msg}
}

// scanClass parses one class/struct definition starting just after the
// keyword. Forward declarations and anonymous types return nil.
func (s *scanner) scanClass() (*Class, error) {
	startLine := s.line
	name, ok := s.readIdent()
	if !ok {
		return nil, s.skipDeclaration()
	}
	term, err := s.skipToBodyOrSemi()
	if err != nil {
		return nil, err
	}
	if term == ';' {
		return nil, nil // forward declaration
	}
	fields, err := s.scanClassBody()
	if err != nil {
		return nil, err
	}
	return &Class{Name: name, File: s.file, Line: startLine, Fields: fields}, nil
}

// scanClassBody consumes member statements until the closing brace.
func (s *scanner) scanClassBody() ([]*Field, error) {
	var fields []*Field
	var stmt []byte
	parens := 0
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\n':
			s.line++
			s.i++
			stmt = append(stmt, ' ')
		case c == '(':
			parens++
			stmt = append(stmt, c)
			s.i++
		case c == ')':
			parens--
			stmt = append(stmt, c)
			s.i++
		case c == '{' && parens == 0:
			// Method body, nested type body, or brace initializer.
			// Either way the declarator precedes the brace.
			if err := s.skipBraces(); err != nil {
				return nil, err
			}
			s.skipSpace()
			if s.i < len(s.src) && s.src[s.i] == ';' {
				s.i++
			}
			fields = append(fields, parseFieldStmt(string(stmt))...)
			stmt = stmt[:0]
		case c == ';' && parens == 0:
			s.i++
			fields = append(fields, parseFieldStmt(string(stmt))...)
			stmt = stmt[:0]
		case c == ':' && parens == 0:
			if s.i+1 < len(s.src) && s.src[s.i+1] == ':' {
				stmt = append(stmt, ':', ':')
				s.i += 2
				continue
			}
			if w := strings.TrimSpace(string(stmt)); w == "public" || w == "private" || w == "protected" {
				stmt = stmt[:0] // access label
			} else {
				stmt = append(stmt, ':')
			}
			s.i++
		case c == '}' && parens == 0:
			s.i++
			s.skipSpace()
			if s.i < len(s.src) && s.src[s.i] == ';' {
				s.i++
			}
			return fields, nil
		default:
			stmt = append(stmt, c)
			s.i++
		}
	}
	return nil, s.errf("unterminated class body")
}

// declKeywords start member statements that are never data members.
var declKeywords = map[string]bool{
	"using":     true,
	"typedef":   true,
	"friend":    true,
	"template":  true,
	"static":    true,
	"constexpr": true,
	"class":     true,
	"struct":    true,
	"enum":      true,
	"union":     true,
	"operator":  true,
	"virtual":   true,
	"explicit":  true,
	"public":    true,
	"private":   true,
	"protected": true,
}

// parseFieldStmt decides whether a member statement declares data
// members and extracts one Field per declarator, in declaration order.
// A comma list (int a, b;) shares the head declarator's type prefix.
// Returns nil for methods, nested types and everything else that is
// not a field.
func parseFieldStmt(stmt string) []*Field {
	parts := splitTopLevel(stmt, ',')
	head := declText(parts[0])
	if head == "" {
		return nil
	}
	if strings.ContainsRune(head, '(') {
		return nil // method, constructor or function pointer declarator
	}
	first := head
	if sp := strings.IndexAny(first, " \t"); sp >= 0 {
		first = first[:sp]
	}
	if declKeywords[first] {
		return nil
	}
	name, prefix, suffix, ok := splitDeclarator(head)
	if !ok || prefix == "" || declKeywords[name] {
		return nil
	}
	// A declarator suffix like an array extent rides along in the
	// spelling so the type parser rejects it loudly.
	fields := []*Field{{Name: name, Type: ParseType(prefix + suffix)}}
	for _, part := range parts[1:] {
		text := declText(part)
		if text == "" || strings.ContainsRune(text, '(') {
			continue // a function declarator in the comma list
		}
		// Pointer and array decorations belong to the declarator, not
		// the shared type; they ride into the spelling the same way.
		dname, decor, dsuffix, ok := splitDeclarator(text)
		if !ok || declKeywords[dname] {
			continue
		}
		fields = append(fields, &Field{Name: dname, Type: ParseType(prefix + decor + dsuffix)})
	}
	return fields
}

// declText strips a declarator's initializer and bitfield width.
func declText(s string) string {
	s = cutTopLevel(s, '=')
	s = cutTopLevel(s, ':')
	return strings.TrimSpace(s)
}

// splitDeclarator locates the declared name: the last top-level
// identifier of the statement. prefix is the type spelling before it,
// suffix whatever follows (array extents and the like).
func splitDeclarator(text string) (name, prefix, suffix string, ok bool) {
	depth := 0
	lastStart, lastEnd := -1, -1
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case c == '<':
			depth++
			i++
		case c == '>':
			depth--
			i++
		case depth == 0 && isIdentByte(c) && !(c >= '0' && c <= '9'):
			start := i
			for i < len(text) && isIdentByte(text[i]) {
				i++
			}
			// A qualified segment (foo::bar) is part of the type, not
			// a declared name; so is the segment before '::'.
			if i+1 < len(text) && text[i] == ':' && text[i+1] == ':' {
				i += 2
				continue
			}
			if start >= 2 && text[start-1] == ':' && text[start-2] == ':' {
				continue
			}
			lastStart, lastEnd = start, i
		default:
			i++
		}
	}
	if lastStart < 0 {
		return "", "", "", false
	}
	name = text[lastStart:lastEnd]
	prefix = strings.TrimSpace(text[:lastStart])
	suffix = strings.TrimSpace(text[lastEnd:])
	return name, prefix, suffix, true
}

// splitTopLevel splits text at occurrences of sep outside template and
// paren nesting.
func splitTopLevel(text string, sep byte) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, text[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, text[start:])
}

// cutTopLevel returns text before the first occurrence of sep outside
// template and paren nesting, skipping '::' pairs when sep is ':'.
func cutTopLevel(text string, sep byte) string {
	depth := 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch c {
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case ':':
			if i+1 < len(text) && text[i+1] == ':' {
				i++
				continue
			}
		}
		if c == sep && depth == 0 {
			return text[:i]
		}
	}
	return text
}

// skipEnum consumes an enum declaration, including enum class bodies.
func (s *scanner) skipEnum() error {
	term, err := s.skipToBodyOrSemi()
	if err != nil {
		return err
	}
	if term == ';' {
		return nil
	}
	s.i-- // back onto '{' for skipBraces
	if err := s.skipBraces(); err != nil {
		return err
	}
	s.skipSpace()
	if s.i < len(s.src) && s.src[s.i] == ';' {
		s.i++
	}
	return nil
}

// skipTemplateDecl skips a template parameter list and the templated
// declaration after it.
func (s *scanner) skipTemplateDecl() error {
	s.skipSpace()
	if s.i < len(s.src) && s.src[s.i] == '<' {
		depth := 0
		for s.i < len(s.src) {
			switch s.src[s.i] {
			case '<':
				depth++
			case '>':
				depth--
			case '\n':
				s.line++
			}
			s.i++
			if depth == 0 {
				break
			}
		}
		if depth != 0 {
			return s.errf("unterminated template parameter list")
		}
	}
	return s.skipDeclaration()
}

// skipDeclaration consumes through the next top-level ';', skipping a
// braced body if one appears first.
func (s *scanner) skipDeclaration() error {
	term, err := s.skipToBodyOrSemi()
	if err != nil || term == ';' {
		return err
	}
	s.i-- // back onto '{'
	if err := s.skipBraces(); err != nil {
		return err
	}
	s.skipSpace()
	if s.i < len(s.src) && s.src[s.i] == ';' {
		s.i++
	}
	return nil
}

// skipToBodyOrSemi advances to the first '{' or ';' outside template
// and paren nesting, consuming it.
func (s *scanner) skipToBodyOrSemi() (byte, error) {
	depth := 0
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch c {
		case '\n':
			s.line++
		case '<', '(':
			depth++
		case '>', ')':
			depth--
		case '{', ';':
			if depth <= 0 {
				s.i++
				return c, nil
			}
		}
		s.i++
	}
	return 0, s.errf("unexpected end of file in declaration")
}

// skipBraces consumes a balanced brace group starting at '{'.
func (s *scanner) skipBraces() error {
	if s.i >= len(s.src) || s.src[s.i] != '{' {
		return s.errf("expected '{'")
	}
	depth := 0
	for s.i < len(s.src) {
		switch s.src[s.i] {
		case '{':
			depth++
		case '}':
			depth--
		case '\n':
			s.line++
		}
		s.i++
		if depth == 0 {
			return nil
		}
	}
	return s.errf("unbalanced braces")
}

func (s *scanner) skipSpace() {
	for s.i < len(s.src) {
		switch s.src[s.i] {
		case ' ', '\t', '\r':
			s.i++
		case '\n':
			s.line++
			s.i++
		default:
			return
		}
	}
}

// nextWord advances to and returns the next identifier-shaped token,
// scanning transparently over punctuation and namespace braces. A
// parenthesized group with a brace block after it is a function
// declarator and its body; both are skipped whole so local classes
// never surface as top-level declarations.
func (s *scanner) nextWord() (string, bool, error) {
	for s.i < len(s.src) {
		c := s.src[s.i]
		switch {
		case c == '\n':
			s.line++
			s.i++
		case c == '(':
			if err := s.skipParens(); err != nil {
				return "", false, err
			}
			s.skipSpace()
			if s.i < len(s.src) && s.src[s.i] == '{' {
				if err := s.skipBraces(); err != nil {
					return "", false, err
				}
			}
		case isIdentByte(c) && !(c >= '0' && c <= '9'):
			start := s.i
			for s.i < len(s.src) && isIdentByte(s.src[s.i]) {
				s.i++
			}
			return string(s.src[start:s.i]), true, nil
		default:
			s.i++
		}
	}
	return "", false, nil
}

// skipParens consumes a balanced paren group starting at '('.
func (s *scanner) skipParens() error {
	depth := 0
	for s.i < len(s.src) {
		switch s.src[s.i] {
		case '(':
			depth++
		case ')':
			depth--
		case '\n':
			s.line++
		}
		s.i++
		if depth == 0 {
			return nil
		}
	}
	return s.errf("unbalanced parentheses")
}

func (s *scanner) readIdent() (string, bool) {
	s.skipSpace()
	if s.i >= len(s.src) {
		return "", false
	}
	c := s.src[s.i]
	if !isIdentByte(c) || (c >= '0' && c <= '9') {
		return "", false
	}
	start := s.i
	for s.i < len(s.src) && isIdentByte(s.src[s.i]) {
		s.i++
	}
	return string(s.src[start:s.i]), true
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

// stripNoise blanks comments, preprocessor lines and literal contents,
// preserving newlines so error locations stay accurate.
func stripNoise(src []byte) []byte {
	out := make([]byte, len(src))
	const (
		code = iota
		lineComment
		blockComment
		dquote
		squote
		preproc
	)
	state := code
	bcStar := -1 // index of the '*' that opened a block comment
	lineStart := true
	for i := 0; i < len(src); i++ {
		c := src[i]
		keep := byte(' ')
		switch state {
		case code:
			switch {
			case c == '/' && i+1 < len(src) && src[i+1] == '/':
				state = lineComment
			case c == '/' && i+1 < len(src) && src[i+1] == '*':
				state = blockComment
				bcStar = i + 1
			case c == '"':
				state = dquote
				keep = c
			case c == '\'':
				state = squote
				keep = c
			case c == '#' && lineStart:
				state = preproc
			default:
				keep = c
			}
		case lineComment:
			if c == '\n' {
				state = code
			}
		case blockComment:
			// the opening '*' of "/*" must not also close the comment
			if c == '/' && i > 0 && src[i-1] == '*' && i-1 > bcStar {
				state = code
			}
		case dquote:
			if c == '\\' && i+1 < len(src) {
				out[i] = ' '
				i++
				out[i] = blanked(src[i])
				continue
			}
			if c == '"' {
				state = code
				keep = c
			}
		case squote:
			if c == '\\' && i+1 < len(src) {
				out[i] = ' '
				i++
				out[i] = blanked(src[i])
				continue
			}
			if c == '\'' {
				state = code
				keep = c
			}
		case preproc:
			if c == '\n' && (i == 0 || src[i-1] != '\\') {
				state = code
			}
		}
		if c == '\n' {
			out[i] = '\n'
		} else {
			out[i] = keep
		}
		lineStart = c == '\n' || (lineStart && (c == ' ' || c == '\t'))
	}
	return out
}

func blanked(c byte) byte {
	if c == '\n' {
		return '\n'
	}
	return ' '
}
