package langserver

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnoseCleanDocument(t *testing.T) {
	got := Diagnose([]byte("mod(key1) > 0\n\nput key1 v\n\ndel key1"))
	if got == nil {
		t.Fatal("Diagnose = nil, want empty slice so stale diagnostics clear")
	}
	if len(got) != 0 {
		t.Errorf("Diagnose = %v, want no diagnostics", got)
	}
}

func TestDiagnoseParseFailure(t *testing.T) {
	got := Diagnose([]byte("creat(key) = 1\n\n\n\n"))
	if len(got) != 1 {
		t.Fatalf("len(Diagnose) = %d, want 1", len(got))
	}

	d := got[0]
	if d.Message == "" {
		t.Error("diagnostic has no message")
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 0 {
		t.Errorf("Range.Start = %v, want document start", d.Range.Start)
	}
}

func TestNewServerRegistersDocuments(t *testing.T) {
	s := NewServer("test")
	if s.docs == nil {
		t.Fatal("docs map not initialized")
	}
	if s.handler.TextDocumentDidOpen == nil || s.handler.TextDocumentDidChange == nil {
		t.Error("text document handlers not registered")
	}
}
