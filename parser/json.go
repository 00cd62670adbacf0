package parser

import "encoding/json"

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonPosition struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

type jsonToken struct {
	Kind    string   `json:"kind"`
	Span    jsonSpan `json:"span"`
	Literal string   `json:"literal"`
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonToken{
		Kind:    t.Kind.String(),
		Span:    spanToJSON(t.Span),
		Literal: t.Literal,
	})
}

type jsonModule struct {
	Name    string       `json:"name"`
	Imports []jsonImport `json:"imports"`
	Defs    []jsonDef    `json:"definitions"`
}

type jsonImport struct {
	Module string   `json:"module"`
	Kind   string   `json:"kind"`
	Names  []string `json:"names,omitempty"`
}

type jsonDef struct {
	Name  string    `json:"name"`
	Span  jsonSpan  `json:"span"`
	Value *jsonExpr `json:"value"`
}

type jsonExpr struct {
	Kind  string      `json:"kind"`
	Value string      `json:"value,omitempty"`
	Name  string      `json:"name,omitempty"`
	Fn    *jsonExpr   `json:"fn,omitempty"`
	Args  []*jsonExpr `json:"args,omitempty"`
}

func (m *Module) MarshalJSON() ([]byte, error) {
	out := jsonModule{
		Name:    m.Name,
		Imports: make([]jsonImport, 0, len(m.Imports)),
		Defs:    make([]jsonDef, 0, len(m.Defs)),
	}
	for _, imp := range m.Imports {
		out.Imports = append(out.Imports, jsonImport{
			Module: imp.Module,
			Kind:   imp.Kind.String(),
			Names:  imp.Names,
		})
	}
	for _, def := range m.Defs {
		out.Defs = append(out.Defs, jsonDef{
			Name:  def.Name,
			Span:  spanToJSON(def.Span),
			Value: exprToJSON(def.Value),
		})
	}
	return json.Marshal(out)
}

func spanToJSON(s Span) jsonSpan {
	return jsonSpan{
		Start: jsonPosition{Line: s.Start.Line, Column: s.Start.Column, Offset: s.Start.Offset},
		End:   jsonPosition{Line: s.End.Line, Column: s.End.Column, Offset: s.End.Offset},
	}
}

func exprToJSON(e Expr) *jsonExpr {
	switch expr := e.(type) {
	case nil:
		return nil
	case *StringLit:
		return &jsonExpr{Kind: "string", Value: expr.Value}
	case *Ref:
		return &jsonExpr{Kind: "ref", Name: expr.Name}
	case *Hole:
		return &jsonExpr{Kind: "hole"}
	case *Apply:
		out := &jsonExpr{Kind: "apply", Fn: exprToJSON(expr.Fn)}
		for _, arg := range expr.Args {
			out.Args = append(out.Args, exprToJSON(arg))
		}
		return out
	}
	return &jsonExpr{Kind: "unknown"}
}
