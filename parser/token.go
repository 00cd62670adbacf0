package parser

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

// Span is half-open: Start is the first byte of the token, End is one past
// the last byte.
type Span struct {
	Start Position
	End   Position
}

func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Contains reports whether the 0-based byte offset falls inside the span,
// start-inclusive and end-exclusive.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start.Offset && offset < s.End.Offset
}

func (s Span) Cover(other Span) Span {
	if other.Start.Offset < s.Start.Offset {
		s.Start = other.Start
	}
	if other.End.Offset > s.End.Offset {
		s.End = other.End
	}
	return s
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenSpace
	TokenString

	// Keywords
	TokenModule
	TokenWhere

	TokenEquals
	TokenSymbol
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:    "EOF",
	TokenSpace:  "Whitespace",
	TokenString: "StringLiteral",
	TokenModule: "module",
	TokenWhere:  "where",
	TokenEquals: "=",
	TokenSymbol: "Symbol",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

var tokenKindDescriptions = map[TokenKind]string{
	TokenEOF:    "end of input",
	TokenSpace:  "whitespace",
	TokenString: "a string literal",
	TokenModule: "the module keyword",
	TokenWhere:  "the where keyword",
	TokenEquals: "the definition operator",
	TokenSymbol: "a symbol",
}

// Describe returns the human-readable category description used by hover.
func (k TokenKind) Describe() string {
	if desc, ok := tokenKindDescriptions[k]; ok {
		return desc
	}
	return "an unknown token"
}

// Token carries its classification and the exact slice of source text it
// covers. Literal aliases the lexed input; it is never a copy.
type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

// Value returns the token's content: the text between the quotes for a
// string literal, the raw literal for everything else.
func (t Token) Value() string {
	if t.Kind == TokenString && len(t.Literal) >= 2 {
		return t.Literal[1 : len(t.Literal)-1]
	}
	return t.Literal
}

var keywords = map[string]TokenKind{
	"module": TokenModule,
	"where":  TokenWhere,
}

// LookupKeyword classifies a complete alphanumeric run. Keywords match
// whole words only, so "modulefoo" stays a symbol.
func LookupKeyword(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return TokenSymbol
}
