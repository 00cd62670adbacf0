package lsp

import (
	"testing"

	"github.com/dhamidi/saffron/parser"
)

// The selection convention: a token wins when its half-open span contains
// the column; otherwise the first token at or after the column.
func TestTokenAtColumn(t *testing.T) {
	line := "module Foo where"

	tests := []struct {
		name   string
		column int
		kind   parser.TokenKind
	}{
		{"start of keyword", 0, parser.TokenModule},
		{"inside keyword", 3, parser.TokenModule},
		{"last byte of keyword", 5, parser.TokenModule},
		{"first byte past keyword", 6, parser.TokenSpace},
		{"inside symbol", 8, parser.TokenSymbol},
		{"inside where", 12, parser.TokenWhere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := tokenAtColumn(line, 0, tt.column)
			if tok == nil {
				t.Fatalf("tokenAtColumn(%d) = nil", tt.column)
			}
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
		})
	}
}

func TestTokenAtColumnPastEnd(t *testing.T) {
	if tok := tokenAtColumn("module Foo where", 0, 99); tok != nil {
		t.Errorf("tokenAtColumn(99) = %+v, want nil", tok)
	}
}

func TestTokenAtColumnEmptyLine(t *testing.T) {
	if tok := tokenAtColumn("", 0, 0); tok != nil {
		t.Errorf("tokenAtColumn on empty line = %+v, want nil", tok)
	}
}

func TestTokenAtColumnLexFailure(t *testing.T) {
	if tok := tokenAtColumn("a : b", 0, 0); tok != nil {
		t.Errorf("tokenAtColumn on unlexable line = %+v, want nil", tok)
	}
}

func TestHoverDescriptions(t *testing.T) {
	tests := []struct {
		kind parser.TokenKind
		want string
	}{
		{parser.TokenModule, "the module keyword"},
		{parser.TokenWhere, "the where keyword"},
		{parser.TokenEquals, "the definition operator"},
		{parser.TokenString, "a string literal"},
		{parser.TokenSymbol, "a symbol"},
		{parser.TokenSpace, "whitespace"},
	}
	for _, tt := range tests {
		if got := tt.kind.Describe(); got != tt.want {
			t.Errorf("Describe(%v) = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
