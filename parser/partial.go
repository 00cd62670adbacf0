package parser

// ModuleHeader is a parsed "module <name> where" line.
type ModuleHeader struct {
	Name string
	Span Span
}

// OpenDef is a definition whose body may still grow: the grammar allows a
// binding's expressions to continue on following indented lines. The body
// stays possibly-empty until Finalize judges it.
type OpenDef struct {
	Name string
	Span Span
	Body []Expr
}

// Fragment is the structure accumulated from one or more lines.
//
// Lead holds continuation expressions still waiting for an open
// definition to their left; Orphans holds continuation expressions that
// met their left neighbor and found nothing open. Joining fragments is
// total: every structural verdict (empty body, dangling continuation,
// header placement, duplicates) is deferred to Finalize, which is what
// keeps Combine associative.
type Fragment struct {
	Headers []ModuleHeader
	Imports []Import
	Defs    []OpenDef
	Open    *OpenDef
	Lead    []Expr
	Orphans []Expr
}

func (f *Fragment) hasConstruct() bool {
	return len(f.Headers) > 0 || len(f.Imports) > 0 || len(f.Defs) > 0 || f.Open != nil
}

// PartialExpr is the result of analyzing zero or more lines. A non-empty
// error set suppresses the value. The zero value is Empty, the identity
// of Combine.
type PartialExpr struct {
	Frag *Fragment
	Errs []*ParseError
}

func Partial(frag *Fragment) PartialExpr {
	return PartialExpr{Frag: frag}
}

func Failed(errs ...*ParseError) PartialExpr {
	return PartialExpr{Errs: errs}
}

func (p PartialExpr) IsEmpty() bool {
	return p.Frag == nil && len(p.Errs) == 0
}

func (p PartialExpr) HasErrors() bool {
	return len(p.Errs) > 0
}

// ParseLine turns one line's token sequence into a PartialExpr. A blank
// line is Empty; an uninterpretable line is a line-scoped error, never a
// reason to stop analyzing sibling lines.
func ParseLine(tokens []Token) PartialExpr {
	if len(tokens) == 0 {
		return PartialExpr{}
	}

	if tokens[0].Kind == TokenSpace {
		rest := significant(tokens)
		if len(rest) == 0 {
			return PartialExpr{}
		}
		exprs, err := parseExprSeq(rest)
		if err != nil {
			return Failed(err)
		}
		return Partial(&Fragment{Lead: exprs})
	}

	switch tokens[0].Kind {
	case TokenModule:
		return parseHeaderLine(tokens)
	case TokenSymbol:
		if tokens[0].Literal == "import" {
			return parseImportLine(tokens)
		}
		return parseDefinitionLine(tokens)
	}

	return Failed(parseErrorf(ParseUnexpectedToken, tokens[0].Span,
		"unexpected %s at start of line", tokens[0].Kind.Describe()))
}

// significant drops whitespace tokens.
func significant(tokens []Token) []Token {
	var out []Token
	for _, tok := range tokens {
		if tok.Kind != TokenSpace {
			out = append(out, tok)
		}
	}
	return out
}

func parseHeaderLine(tokens []Token) PartialExpr {
	toks := significant(tokens)
	span := toks[0].Span

	if len(toks) < 2 || toks[1].Kind != TokenSymbol {
		return Failed(parseErrorf(ParseMissingModuleName, span,
			"expected module name after module keyword"))
	}
	if len(toks) < 3 || toks[2].Kind != TokenWhere {
		return Failed(parseErrorf(ParseMissingWhere, span.Cover(toks[1].Span),
			"expected where after module name"))
	}
	if len(toks) > 3 {
		return Failed(parseErrorf(ParseUnexpectedToken, toks[3].Span,
			"unexpected %s after where", toks[3].Kind.Describe()))
	}

	header := ModuleHeader{
		Name: toks[1].Literal,
		Span: span.Cover(toks[2].Span),
	}
	return Partial(&Fragment{Headers: []ModuleHeader{header}})
}

func parseImportLine(tokens []Token) PartialExpr {
	toks := significant(tokens)
	span := toks[0].Span

	if len(toks) < 2 || toks[1].Kind != TokenSymbol {
		return Failed(parseErrorf(ParseUnexpectedToken, span,
			"expected module name after import"))
	}

	imp := Import{
		Module: toks[1].Literal,
		Span:   span.Cover(toks[1].Span),
	}
	for _, tok := range toks[2:] {
		if tok.Kind != TokenSymbol {
			return Failed(parseErrorf(ParseUnexpectedToken, tok.Span,
				"expected imported name, got %s", tok.Kind.Describe()))
		}
		imp.Names = append(imp.Names, tok.Literal)
		imp.Span = imp.Span.Cover(tok.Span)
	}

	switch len(imp.Names) {
	case 0:
		imp.Kind = ImportWildcard
	case 1:
		imp.Kind = ImportSingle
	default:
		imp.Kind = ImportList
	}
	return Partial(&Fragment{Imports: []Import{imp}})
}

func parseDefinitionLine(tokens []Token) PartialExpr {
	toks := significant(tokens)
	name := toks[0]

	if len(toks) < 2 || toks[1].Kind != TokenEquals {
		return Failed(parseErrorf(ParseUnexpectedToken, name.Span,
			"expected = after %s", name.Literal))
	}

	body, err := parseExprSeq(toks[2:])
	if err != nil {
		return Failed(err)
	}
	return Partial(&Fragment{Open: &OpenDef{
		Name: name.Literal,
		Span: name.Span.Cover(toks[1].Span),
		Body: body,
	}})
}

func parseExprSeq(toks []Token) ([]Expr, *ParseError) {
	var exprs []Expr
	for _, tok := range toks {
		switch tok.Kind {
		case TokenSymbol:
			exprs = append(exprs, &Ref{Span: tok.Span, Name: tok.Literal})
		case TokenString:
			exprs = append(exprs, &StringLit{Span: tok.Span, Value: tok.Value()})
		default:
			return nil, parseErrorf(ParseUnexpectedToken, tok.Span,
				"%s is not valid in an expression", tok.Kind.Describe())
		}
	}
	return exprs, nil
}

// Combine merges two PartialExpr values. Empty is the two-sided identity.
// If either side carries errors the result carries both error sets, left
// before right, and no value. The operation is associative: left fold,
// right fold and balanced reduction over a line sequence agree on the
// final value and the final error multiset.
func Combine(l, r PartialExpr) PartialExpr {
	if l.IsEmpty() {
		return r
	}
	if r.IsEmpty() {
		return l
	}

	if len(l.Errs) > 0 || len(r.Errs) > 0 {
		errs := make([]*ParseError, 0, len(l.Errs)+len(r.Errs))
		errs = append(errs, l.Errs...)
		errs = append(errs, r.Errs...)
		return PartialExpr{Errs: errs}
	}

	return Partial(joinFragments(l.Frag, r.Frag))
}

// joinFragments merges the right fragment into the left. Inputs are never
// mutated; folds may reuse the same values in several groupings.
func joinFragments(l, r *Fragment) *Fragment {
	out := &Fragment{
		Headers: concat(l.Headers, r.Headers),
		Imports: concat(l.Imports, r.Imports),
		Lead:    l.Lead,
		Orphans: concat(l.Orphans, r.Orphans),
	}

	open := cloneOpen(l.Open)

	// The right side's continuation expressions attach to the left's open
	// definition. With nothing at all on the left they stay leading; with
	// closed constructs on the left they are orphans, judged at Finalize.
	if len(r.Lead) > 0 {
		switch {
		case open != nil:
			open.Body = concat(open.Body, r.Lead)
		case !l.hasConstruct():
			out.Lead = concat(l.Lead, r.Lead)
		default:
			out.Orphans = concat(out.Orphans, r.Lead)
		}
	}

	// A construct on the right closes the left's open definition.
	defs := l.Defs
	if open != nil && r.hasConstruct() {
		defs = append(concat(defs, nil), *open)
		open = nil
	}
	out.Defs = concat(defs, r.Defs)

	if r.hasConstruct() {
		out.Open = cloneOpen(r.Open)
	} else {
		out.Open = open
	}
	return out
}

func cloneOpen(open *OpenDef) *OpenDef {
	if open == nil {
		return nil
	}
	clone := *open
	clone.Body = concat(open.Body, nil)
	return &clone
}

// concat returns a fresh slice so neither input's backing array is shared
// with the result.
func concat[T any](a, b []T) []T {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Finalize judges whether a fully combined PartialExpr closes every
// construct, and builds the module. Incompleteness and structural
// violations come back as errors; an errored input passes through
// untouched.
func Finalize(p PartialExpr) (*Module, []*ParseError) {
	if len(p.Errs) > 0 {
		return nil, p.Errs
	}
	if p.Frag == nil {
		return nil, []*ParseError{parseErrorf(ParseMissingHeader, Span{},
			"document incomplete: no module header")}
	}

	frag := p.Frag
	var errs []*ParseError

	// One dangling-continuation error per source line that contributed
	// unattached expressions.
	seenLines := make(map[int]bool)
	for _, expr := range append(concat(frag.Lead, nil), frag.Orphans...) {
		line := expr.ExprSpan().Start.Line
		if seenLines[line] {
			continue
		}
		seenLines[line] = true
		errs = append(errs, parseErrorf(ParseDanglingContinuation,
			expr.ExprSpan(), "continuation line has no definition to continue"))
	}

	opens := frag.Defs
	if frag.Open != nil {
		opens = append(concat(opens, nil), *frag.Open)
	}

	defs := make([]Definition, 0, len(opens))
	for _, open := range opens {
		def, err := finishDef(open)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		defs = append(defs, def)
	}

	switch {
	case len(frag.Headers) == 0:
		errs = append(errs, parseErrorf(ParseMissingHeader, Span{},
			"document incomplete: no module header"))
	case len(frag.Headers) > 1:
		for _, h := range frag.Headers[1:] {
			errs = append(errs, parseErrorf(ParseDuplicateHeader, h.Span,
				"duplicate module header %s", h.Name))
		}
	}

	if len(frag.Headers) > 0 {
		header := frag.Headers[0]
		first := firstConstructLine(frag.Imports, defs)
		if first > 0 && header.Span.Start.Line > first {
			errs = append(errs, parseErrorf(ParseMisplacedHeader, header.Span,
				"module header must precede imports and definitions"))
		}
	}

	seen := make(map[string]bool, len(defs))
	for _, def := range defs {
		if seen[def.Name] {
			errs = append(errs, parseErrorf(ParseDuplicateDefinition, def.Span,
				"duplicate definition of %s", def.Name))
		}
		seen[def.Name] = true
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &Module{
		Name:    frag.Headers[0].Name,
		Imports: frag.Imports,
		Defs:    defs,
	}, nil
}

func finishDef(open OpenDef) (Definition, *ParseError) {
	value := applyExprs(open.Body)
	if value == nil {
		return Definition{}, parseErrorf(ParseIncompleteDefinition, open.Span,
			"definition of %s has no body", open.Name)
	}
	return Definition{
		Name:  open.Name,
		Span:  open.Span.Cover(value.ExprSpan()),
		Type:  &Hole{Span: open.Span},
		Value: value,
	}, nil
}

func firstConstructLine(imports []Import, defs []Definition) int {
	first := 0
	for _, imp := range imports {
		if first == 0 || imp.Span.Start.Line < first {
			first = imp.Span.Start.Line
		}
	}
	for _, def := range defs {
		if first == 0 || def.Span.Start.Line < first {
			first = def.Span.Start.Line
		}
	}
	return first
}
