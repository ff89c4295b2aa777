package txn

import (
	"errors"
	"testing"
)

func TestScanGroup(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		open, close byte
		inner       string
		n           int
		wantErr     bool
	}{
		{"parens", "(key) = 1", '(', ')', "key", 5, false},
		{"empty parens", "()", '(', ')', "", 2, false},
		{"quotes", `"a b" rest`, '"', '"', "a b", 5, false},
		{"empty quotes", `""`, '"', '"', "", 2, false},
		{"missing opener", "key)", '(', ')', "", 0, true},
		{"unterminated", "(key", '(', ')', "", 0, true},
		{"unterminated quote", `"key`, '"', '"', "", 0, true},
		{"empty input", "", '(', ')', "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner, n, err := scanGroup([]byte(tt.input), tt.open, tt.close)
			if tt.wantErr {
				if !errors.Is(err, ErrUnexpectedToken) {
					t.Fatalf("err = %v, want ErrUnexpectedToken", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("err = %v", err)
			}
			if string(inner) != tt.inner {
				t.Errorf("inner = %q, want %q", inner, tt.inner)
			}
			if n != tt.n {
				t.Errorf("n = %d, want %d", n, tt.n)
			}
		})
	}
}

func TestScanGroupNoNesting(t *testing.T) {
	// The first closing delimiter wins; groups do not nest.
	inner, n, err := scanGroup([]byte("(a(b)c)"), '(', ')')
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if string(inner) != "a(b" {
		t.Errorf("inner = %q, want %q", inner, "a(b")
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
}

func TestScanUntil(t *testing.T) {
	before, next, ok := scanUntil([]byte("one\n\ntwo"), []byte("\n\n"))
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if string(before) != "one" {
		t.Errorf("before = %q, want %q", before, "one")
	}
	if next != 5 {
		t.Errorf("next = %d, want 5", next)
	}

	_, _, ok = scanUntil([]byte("one\ntwo"), []byte("\n\n"))
	if ok {
		t.Error("ok = true for absent pattern, want false")
	}

	// Pattern at the very start yields an empty region.
	before, next, ok = scanUntil([]byte("\n\ntwo"), []byte("\n\n"))
	if !ok || len(before) != 0 || next != 2 {
		t.Errorf("got (%q, %d, %v), want (\"\", 2, true)", before, next, ok)
	}
}
