package parser

import "fmt"

type LexErrorKind int

const (
	LexIllegalChar LexErrorKind = iota
	LexUnterminatedString
	LexUnexpectedEOF
)

func (k LexErrorKind) String() string {
	switch k {
	case LexIllegalChar:
		return "illegal character"
	case LexUnterminatedString:
		return "unterminated string literal"
	case LexUnexpectedEOF:
		return "unexpected end of input"
	}
	return "lex error"
}

// LexError is the single failure a lexing pass produces: no partial token
// list accompanies it.
type LexError struct {
	Kind LexErrorKind
	Pos  Position
}

func (e *LexError) Error() string {
	if e.Pos.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Column, e.Kind)
	}
	return fmt.Sprintf("%d:%d: %s", e.Pos.Line, e.Pos.Column, e.Kind)
}

type ParseErrorKind int

const (
	ParseLexFailed ParseErrorKind = iota
	ParseUnexpectedToken
	ParseMissingModuleName
	ParseMissingWhere
	ParseDanglingContinuation
	ParseIncompleteDefinition
	ParseMissingHeader
	ParseDuplicateHeader
	ParseMisplacedHeader
	ParseDuplicateDefinition
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseLexFailed:
		return "lex failed"
	case ParseUnexpectedToken:
		return "unexpected token"
	case ParseMissingModuleName:
		return "missing module name"
	case ParseMissingWhere:
		return "missing where"
	case ParseDanglingContinuation:
		return "dangling continuation"
	case ParseIncompleteDefinition:
		return "incomplete definition"
	case ParseMissingHeader:
		return "missing module header"
	case ParseDuplicateHeader:
		return "duplicate module header"
	case ParseMisplacedHeader:
		return "misplaced module header"
	case ParseDuplicateDefinition:
		return "duplicate definition"
	}
	return "parse error"
}

// ParseError is line-scoped: one failing line yields one of these and
// never stops sibling lines from being analyzed.
type ParseError struct {
	Kind ParseErrorKind
	Span Span
	Msg  string
}

func (e *ParseError) Error() string {
	pos := e.Span.Start
	if pos.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", pos.File, pos.Line, pos.Column, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, e.Msg)
}

func parseErrorf(kind ParseErrorKind, span Span, format string, args ...any) *ParseError {
	return &ParseError{
		Kind: kind,
		Span: span,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func lexFailed(err *LexError) *ParseError {
	span := Span{Start: err.Pos, End: err.Pos}
	return parseErrorf(ParseLexFailed, span, "%s", err.Kind)
}
