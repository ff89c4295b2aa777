package txn

import (
	"errors"
	"testing"
)

func TestParseData(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		rest    string
		wantErr bool
	}{
		{`key`, "key", "", false},
		{`key rest`, "key", " rest", false},
		{`"key"`, "key", "", false},
		{`"a b c" rest`, "a b c", " rest", false},
		{`""`, "", "", false},
		{`"tab\tand spaces"`, `tab\tand spaces`, "", false}, // no escape processing
		{`"unterminated`, "", "", true},
		{``, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := NewScanner([]byte(tt.input))
			got, err := parseData(s)
			if tt.wantErr {
				if !errors.Is(err, ErrUnexpectedToken) {
					t.Fatalf("err = %v, want ErrUnexpectedToken", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("data = %q, want %q", got, tt.want)
			}
			if rest := string(s.Rest()); rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestParseDataUnquotedNeverContainsWhitespace(t *testing.T) {
	s := NewScanner([]byte("one two"))
	got, err := parseData(s)
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	for _, b := range got {
		if b == ' ' || b == '\t' || b == '\n' {
			t.Fatalf("unquoted literal %q contains whitespace", got)
		}
	}
}
