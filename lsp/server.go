// Package lsp exposes the analysis core to editors over the Language
// Server Protocol: full-document sync, hover, placeholder completion and
// published diagnostics.
package lsp

import (
	"github.com/dhamidi/saffron/document"
	"github.com/dhamidi/saffron/parser"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "saffron"

var log = commonlog.GetLogger("saffron.lsp")

type Server struct {
	store   *document.Store
	handler protocol.Handler
	server  *server.Server
	version string
}

func NewServer(version string) *Server {
	s := &Server{
		store:   document.NewStore(),
		version: version,
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentHover:      s.textDocumentHover,
		TextDocumentCompletion: s.textDocumentCompletion,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.HoverProvider = true

	triggerChars := []string{"."}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: triggerChars,
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Info("server initialized")
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	uri := params.TextDocument.URI
	log.Infof("did open %q", uri)
	doc := s.store.Open(uri, params.TextDocument.Text)
	s.publishDiagnostics(ctx, doc)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// Only whole-document replacement is handled; applying ranged edits
	// is an open gap.
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		doc := s.store.Replace(uri, whole.Text)
		s.publishDiagnostics(ctx, doc)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.store.Close(params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	// Placeholder list, independent of the request: completion is an
	// unfinished capability without a symbol table behind it.
	items := []protocol.CompletionItem{
		completionItem("Hello", "Some detail"),
		completionItem("Bye", "More detail"),
	}
	return items, nil
}

func (s *Server) publishDiagnostics(ctx *glsp.Context, doc *document.Document) {
	diagnostics := make([]protocol.Diagnostic, 0, len(doc.Errs))
	for _, err := range doc.Errs {
		severity := protocol.DiagnosticSeverityError
		source := lsName
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanToRange(err.Span),
			Severity: &severity,
			Source:   &source,
			Message:  err.Msg,
		})
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentUri(doc.URI),
		Diagnostics: diagnostics,
	})
}

func completionItem(label, detail string) protocol.CompletionItem {
	kind := protocol.CompletionItemKindText
	return protocol.CompletionItem{
		Label:  label,
		Kind:   &kind,
		Detail: &detail,
	}
}

func spanToRange(span parser.Span) protocol.Range {
	return protocol.Range{
		Start: positionToProtocol(span.Start),
		End:   positionToProtocol(span.End),
	}
}

func positionToProtocol(pos parser.Position) protocol.Position {
	line := pos.Line - 1
	if line < 0 {
		line = 0
	}
	column := pos.Column - 1
	if column < 0 {
		column = 0
	}
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(column),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
