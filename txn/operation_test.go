package txn

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func parseOperationString(t *testing.T, input string) Operation {
	t.Helper()
	op, err := parseOperation(NewScanner([]byte(input)))
	if err != nil {
		t.Fatalf("parseOperation(%q): %v", input, err)
	}
	return op
}

func TestParsePut(t *testing.T) {
	tests := []struct {
		input string
		want  Operation
	}{
		{`put key value`, Operation{Kind: OpPut, Key: []byte("key"), Value: []byte("value")}},
		{`put "key" "value"`, Operation{Kind: OpPut, Key: []byte("key"), Value: []byte("value")}},
		{`put key1 "overwrote-key1"`, Operation{Kind: OpPut, Key: []byte("key1"), Value: []byte("overwrote-key1")}},
		{`put key2 "some extra key"`, Operation{Kind: OpPut, Key: []byte("key2"), Value: []byte("some extra key")}},
		{`  put key value  `, Operation{Kind: OpPut, Key: []byte("key"), Value: []byte("value")}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseOperationString(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDeleteAndGet(t *testing.T) {
	tests := []struct {
		input string
		want  Operation
	}{
		{`del key`, Operation{Kind: OpDelete, Key: []byte("key")}},
		{`del "key"`, Operation{Kind: OpDelete, Key: []byte("key")}},
		{`get key`, Operation{Kind: OpGet, Key: []byte("key")}},
		{`get "a key"`, Operation{Kind: OpGet, Key: []byte("a key")}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseOperationString(t, tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseOperationStopsAtLineFeed(t *testing.T) {
	s := NewScanner([]byte("get key1\nget key2"))
	op, err := parseOperation(s)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if string(op.Key) != "key1" {
		t.Errorf("Key = %q, want %q", op.Key, "key1")
	}
	if got := string(s.Rest()); got != "\nget key2" {
		t.Errorf("rest = %q, want next line intact", got)
	}
}

func TestParseOperationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"keyword is an exact match", "putt key value"},
		{"no long form for del", "delete key"},
		{"put needs two literals", "put key"},
		{"put without literals", "put"},
		{"del without key", "del"},
		{"get without key", "get"},
		{"unterminated quote", `get "key`},
		{"unknown keyword", "set key value"},
		{"empty input", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseOperation(NewScanner([]byte(tt.input)))
			if !errors.Is(err, ErrUnexpectedToken) {
				t.Errorf("err = %v, want ErrUnexpectedToken", err)
			}
		})
	}
}
