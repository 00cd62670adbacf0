package parser

import (
	"testing"
)

func TestParseDocumentMinimal(t *testing.T) {
	module, errs := ParseDocument("module Foo where\n", "test.sfr")
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}
	if module.Name != "Foo" {
		t.Errorf("Name = %q, want %q", module.Name, "Foo")
	}
	if len(module.Imports) != 0 {
		t.Errorf("len(Imports) = %d, want 0", len(module.Imports))
	}
	if len(module.Defs) != 0 {
		t.Errorf("len(Defs) = %d, want 0", len(module.Defs))
	}
}

func TestParseDocumentFull(t *testing.T) {
	text := `module Main where
import Prelude
import List map

greeting =
  "hello"

main = print greeting
`
	module, errs := ParseDocument(text, "main.sfr")
	if len(errs) > 0 {
		t.Fatalf("errors: %v", errs)
	}

	if module.Name != "Main" {
		t.Errorf("Name = %q, want %q", module.Name, "Main")
	}

	if len(module.Imports) != 2 {
		t.Fatalf("len(Imports) = %d, want 2", len(module.Imports))
	}
	if module.Imports[0].Kind != ImportWildcard {
		t.Errorf("Imports[0].Kind = %v, want %v", module.Imports[0].Kind, ImportWildcard)
	}
	if module.Imports[1].Kind != ImportSingle {
		t.Errorf("Imports[1].Kind = %v, want %v", module.Imports[1].Kind, ImportSingle)
	}

	if len(module.Defs) != 2 {
		t.Fatalf("len(Defs) = %d, want 2", len(module.Defs))
	}

	greeting := module.Def("greeting")
	if greeting == nil {
		t.Fatal("no definition named greeting")
	}
	lit, ok := greeting.Value.(*StringLit)
	if !ok {
		t.Fatalf("greeting.Value = %T, want *StringLit", greeting.Value)
	}
	if lit.Value != "hello" {
		t.Errorf("greeting = %q, want %q", lit.Value, "hello")
	}
	if _, ok := greeting.Type.(*Hole); !ok {
		t.Errorf("greeting.Type = %T, want *Hole", greeting.Type)
	}

	main := module.Def("main")
	if main == nil {
		t.Fatal("no definition named main")
	}
	apply, ok := main.Value.(*Apply)
	if !ok {
		t.Fatalf("main.Value = %T, want *Apply", main.Value)
	}
	fn, ok := apply.Fn.(*Ref)
	if !ok || fn.Name != "print" {
		t.Errorf("Fn = %+v, want reference to print", apply.Fn)
	}
	if len(apply.Args) != 1 {
		t.Errorf("len(Args) = %d, want 1", len(apply.Args))
	}
}

// Failing lines accumulate; they never abort the lines around them.
func TestParseDocumentAccumulatesErrors(t *testing.T) {
	text := `module M where
= broken
ok = 1
also broken
`
	module, errs := ParseDocument(text, "test.sfr")
	if module != nil {
		t.Fatalf("module = %+v, want nil", module)
	}
	if len(errs) != 2 {
		t.Fatalf("len(errs) = %d, want 2: %v", len(errs), errs)
	}
	lines := map[int]bool{}
	for _, err := range errs {
		lines[err.Span.Start.Line] = true
	}
	if !lines[2] || !lines[4] {
		t.Errorf("error lines = %v, want lines 2 and 4", lines)
	}
}

// A line that fails to lex becomes one line-scoped error and leaves
// sibling lines alone.
func TestParseDocumentLexFailure(t *testing.T) {
	text := "module M where\nbad : line\n"
	module, errs := ParseDocument(text, "test.sfr")
	if module != nil {
		t.Fatalf("module = %+v, want nil", module)
	}
	if len(errs) != 1 {
		t.Fatalf("len(errs) = %d, want 1: %v", len(errs), errs)
	}
	if errs[0].Kind != ParseLexFailed {
		t.Errorf("Kind = %v, want %v", errs[0].Kind, ParseLexFailed)
	}
	if errs[0].Span.Start.Line != 2 {
		t.Errorf("Line = %d, want 2", errs[0].Span.Start.Line)
	}
}

func TestCombineAllEmpty(t *testing.T) {
	if p := CombineAll(nil); !p.IsEmpty() {
		t.Errorf("CombineAll(nil) = %+v, want Empty", p)
	}
}
