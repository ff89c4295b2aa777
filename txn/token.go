package txn

import (
	"bytes"
	"strconv"
)

func isSpace(b byte) bool {
	return b == ' ' || b == '\t'
}

// skipSpaces consumes ASCII spaces and tabs. Line feeds are
// separators, never whitespace, so they are left alone. Never fails.
func skipSpaces(s *Scanner) {
	for isSpace(s.Peek()) {
		s.pos++
	}
}

// scanWord returns the maximal run of non-whitespace bytes at the
// start of d, stopping at space, tab, line feed or end of input.
func scanWord(d []byte) []byte {
	i := 0
	for i < len(d) && !isSpace(d[i]) && d[i] != '\n' {
		i++
	}
	return d[:i]
}

// scanLine returns the bytes up to, not including, the next line feed,
// or all of d when there is none.
func scanLine(d []byte) []byte {
	if i := bytes.IndexByte(d, '\n'); i >= 0 {
		return d[:i]
	}
	return d
}

func trimTrailingSpaces(d []byte) []byte {
	for len(d) > 0 && isSpace(d[len(d)-1]) {
		d = d[:len(d)-1]
	}
	return d
}

// isBlank reports whether d contains only whitespace and line feeds.
func isBlank(d []byte) bool {
	for _, b := range d {
		if !isSpace(b) && b != '\n' {
			return false
		}
	}
	return true
}

// parseUint consumes a non-empty run of ASCII digits and converts it
// to a uint64. An empty run or a value past 64 bits is a failure,
// never a truncation.
func parseUint(s *Scanner) (uint64, error) {
	d := s.Rest()
	i := 0
	for i < len(d) && d[i] >= '0' && d[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, ErrUnexpectedToken
	}
	v, err := strconv.ParseUint(string(d[:i]), 10, 64)
	if err != nil {
		return 0, ErrUnexpectedToken
	}
	s.Advance(i)
	return v, nil
}

// keyword consumes the next word if it is exactly want. A word that
// merely starts with want does not match.
func keyword(s *Scanner, want string) error {
	w := scanWord(s.Rest())
	if string(w) != want {
		return ErrUnexpectedToken
	}
	s.Advance(len(w))
	return nil
}
