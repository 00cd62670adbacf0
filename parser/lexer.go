package parser

import (
	"unicode"
	"unicode/utf8"
)

// Lexer produces Saffron tokens from a buffer or a single line. Rule
// priority, first match wins: whitespace run, string literal, reserved
// word, equals, symbol. Every match consumes at least one byte.
type Lexer struct {
	input  string
	file   string
	pos    int
	line   int
	column int
}

func NewLexer(input, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		pos:    0,
		line:   1,
		column: 1,
	}
}

// NewLineLexer lexes a single line that sits at the given 1-based line
// number of its document. Offsets and columns are relative to the line
// start.
func NewLineLexer(line, file string, lineNo int) *Lexer {
	l := NewLexer(line, file)
	l.line = lineNo
	return l
}

func (l *Lexer) Position() Position {
	return Position{
		File:   l.file,
		Offset: l.pos,
		Line:   l.line,
		Column: l.column,
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

func (l *Lexer) advanceRune() {
	if l.pos >= len(l.input) {
		return
	}
	_, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += size
	l.column++
}

// NextToken returns the next token, a TokenEOF at end of input, or a
// LexError when the remaining prefix matches no rule.
func (l *Lexer) NextToken() (Token, *LexError) {
	start := l.Position()

	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Span: Span{Start: start, End: start}}, nil
	}

	ch := l.peek()

	if isSpace(ch) {
		return l.scanWhitespace(start), nil
	}

	if ch == '"' {
		return l.scanString(start)
	}

	if isSymbolStart(l.input[l.pos:]) {
		return l.scanSymbolOrKeyword(start), nil
	}

	if ch == '=' {
		l.advance()
		return l.token(TokenEquals, start), nil
	}

	return Token{}, &LexError{Kind: LexIllegalChar, Pos: start}
}

func (l *Lexer) scanWhitespace(start Position) Token {
	for isSpace(l.peek()) {
		l.advance()
	}
	return l.token(TokenSpace, start)
}

func (l *Lexer) scanString(start Position) (Token, *LexError) {
	l.advance()
	for {
		if l.pos >= len(l.input) {
			return Token{}, &LexError{Kind: LexUnexpectedEOF, Pos: l.Position()}
		}
		if l.peek() == '\n' {
			return Token{}, &LexError{Kind: LexUnterminatedString, Pos: l.Position()}
		}
		if l.peek() == '"' {
			l.advance()
			return l.token(TokenString, start), nil
		}
		l.advance()
	}
}

func (l *Lexer) scanSymbolOrKeyword(start Position) Token {
	for isSymbolStart(l.input[l.pos:]) {
		l.advanceRune()
	}
	tok := l.token(TokenSymbol, start)
	tok.Kind = LookupKeyword(tok.Literal)
	return tok
}

func (l *Lexer) token(kind TokenKind, start Position) Token {
	end := l.Position()
	return Token{
		Kind:    kind,
		Span:    Span{Start: start, End: end},
		Literal: l.input[start.Offset:end.Offset],
	}
}

// Lex tokenizes the whole input. On failure it returns only the error:
// no partial token list escapes.
func Lex(input, file string) ([]Token, *LexError) {
	return lexAll(NewLexer(input, file))
}

// LexLineAt tokenizes one line of a document, positioning every token on
// the given 1-based line. Offsets are byte offsets into the line.
func LexLineAt(line, file string, lineNo int) ([]Token, *LexError) {
	return lexAll(NewLineLexer(line, file, lineNo))
}

func lexAll(l *Lexer) ([]Token, *LexError) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Kind == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isSymbolStart(s string) bool {
	if s == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
