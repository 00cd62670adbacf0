package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/saffron/parser"
)

const hoverFallback = "Not sure what this is"

// textDocumentHover re-lexes the line under the cursor and describes the
// token there. Selection convention: the token whose half-open span
// contains the 0-based column wins; otherwise the first token starting at
// or after the column; otherwise the fallback message. Lex failures and
// unknown documents degrade to the fallback, never an error.
func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	line := int(params.Position.Line)
	column := int(params.Position.Character)
	log.Infof("hover at %d:%d", line, column)

	text := s.store.Line(params.TextDocument.URI, line)
	message := hoverFallback
	if tok := tokenAtColumn(text, line, column); tok != nil {
		message = "You're hovering on " + tok.Kind.Describe()
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: message,
		},
	}, nil
}

func tokenAtColumn(text string, line, column int) *parser.Token {
	tokens, err := parser.LexLineAt(text, "", line+1)
	if err != nil {
		return nil
	}
	for i := range tokens {
		if tokens[i].Span.Contains(column) {
			return &tokens[i]
		}
	}
	for i := range tokens {
		if tokens[i].Span.Start.Offset >= column {
			return &tokens[i]
		}
	}
	return nil
}
