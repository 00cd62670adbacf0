package parser

import (
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
)

// ParseDocument analyzes a whole document: every line is lexed and
// partially parsed independently, the per-line results are combined, and
// the combination is finalized into a Module. On failure the accumulated
// per-line and finalization errors come back instead; errors never stop
// sibling lines from being analyzed.
func ParseDocument(text, file string) (*Module, []*ParseError) {
	return Finalize(CombineAll(parseLines(text, file)))
}

// parseLines fans the per-line work out over a bounded worker group.
// Results land in a slice indexed by line, so scheduling order never
// changes the sequence handed to the combiner.
func parseLines(text, file string) []PartialExpr {
	lines := strings.Split(text, "\n")
	parts := make([]PartialExpr, len(lines))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			parts[i] = parseOneLine(line, file, i+1)
			return nil
		})
	}
	_ = g.Wait() // workers never fail
	return parts
}

func parseOneLine(line, file string, lineNo int) PartialExpr {
	tokens, lexErr := LexLineAt(line, file, lineNo)
	if lexErr != nil {
		return Failed(lexFailed(lexErr))
	}
	return ParseLine(tokens)
}

// CombineAll reduces an ordered sequence of per-line results into one.
// It reduces pairwise as a balanced tree; Combine's associativity makes
// this interchangeable with a sequential fold, which the tests assert.
func CombineAll(parts []PartialExpr) PartialExpr {
	switch len(parts) {
	case 0:
		return PartialExpr{}
	case 1:
		return parts[0]
	}
	mid := len(parts) / 2
	return Combine(CombineAll(parts[:mid]), CombineAll(parts[mid:]))
}
