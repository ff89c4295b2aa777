package langserver

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// The grammar's keyword surface: comparison spellings and operation
// names. Comparisons insert their parenthesized key form.
var keywordCompletions = []struct {
	label  string
	insert string
	detail string
}{
	{"create", "create($1)", "create revision comparison"},
	{"c", "c($1)", "create revision comparison (short form)"},
	{"mod", "mod($1)", "mod revision comparison"},
	{"m", "m($1)", "mod revision comparison (short form)"},
	{"value", "value($1)", "value comparison"},
	{"val", "val($1)", "value comparison (short form)"},
	{"version", "version($1)", "version comparison"},
	{"ver", "ver($1)", "version comparison (short form)"},
	{"lease", "lease($1)", "lease comparison"},
	{"put", "put ", "put a key-value pair"},
	{"del", "del ", "delete a key"},
	{"get", "get ", "read a key"},
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	items := make([]protocol.CompletionItem, 0, len(keywordCompletions))
	for _, kw := range keywordCompletions {
		kind := protocol.CompletionItemKindKeyword
		detail := kw.detail
		insertText := kw.insert
		format := protocol.InsertTextFormatSnippet

		items = append(items, protocol.CompletionItem{
			Label:            kw.label,
			Kind:             &kind,
			Detail:           &detail,
			InsertText:       &insertText,
			InsertTextFormat: &format,
		})
	}
	return items, nil
}
