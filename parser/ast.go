package parser

// Expr is the closed set of Saffron expression forms.
type Expr interface {
	ExprSpan() Span
	exprNode()
}

// StringLit is a double-quoted literal; Value excludes the quotes.
type StringLit struct {
	Span  Span
	Value string
}

// Ref is a reference to a named binding.
type Ref struct {
	Span Span
	Name string
}

// Apply is the application of Fn to one or more arguments.
type Apply struct {
	Fn   Expr
	Args []Expr
}

// Hole marks an expression the source does not provide. Definitions carry
// one as their type until the surface syntax has type annotations.
type Hole struct {
	Span Span
}

func (e *StringLit) exprNode() {}
func (e *Ref) exprNode()       {}
func (e *Apply) exprNode()     {}
func (e *Hole) exprNode()      {}

func (e *StringLit) ExprSpan() Span { return e.Span }
func (e *Ref) ExprSpan() Span       { return e.Span }
func (e *Hole) ExprSpan() Span      { return e.Span }

func (e *Apply) ExprSpan() Span {
	span := e.Fn.ExprSpan()
	for _, arg := range e.Args {
		span = span.Cover(arg.ExprSpan())
	}
	return span
}

// applyExprs folds a left-to-right expression sequence into a single
// expression: one element stays itself, more become an application.
func applyExprs(exprs []Expr) Expr {
	if len(exprs) == 0 {
		return nil
	}
	if len(exprs) == 1 {
		return exprs[0]
	}
	return &Apply{Fn: exprs[0], Args: exprs[1:]}
}

// Definition is one named binding. Type is a Hole until the language can
// spell type expressions.
type Definition struct {
	Name  string
	Span  Span
	Type  Expr
	Value Expr
}

type ImportKind int

const (
	// ImportWildcard brings every name of the target module into scope.
	ImportWildcard ImportKind = iota
	// ImportSingle brings exactly one name into scope.
	ImportSingle
	// ImportList brings an explicit list of names into scope.
	ImportList
)

func (k ImportKind) String() string {
	switch k {
	case ImportWildcard:
		return "wildcard"
	case ImportSingle:
		return "single"
	case ImportList:
		return "list"
	}
	return "unknown"
}

type Import struct {
	Module string
	Kind   ImportKind
	Names  []string
	Span   Span
}

// Module is the result of a successful whole-document parse.
type Module struct {
	Name    string
	Imports []Import
	Defs    []Definition
}

// Def returns the definition with the given name, or nil.
func (m *Module) Def(name string) *Definition {
	for i := range m.Defs {
		if m.Defs[i].Name == name {
			return &m.Defs[i]
		}
	}
	return nil
}
