package txn

// Scanner is a positional view over an immutable byte buffer. Rules
// read through Rest and commit by advancing; a rule that fails must
// leave the position where it found it. Sub-regions are parsed with
// an independent Scanner created over the region slice, so inner
// rules cannot read past the region boundary.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner returns a scanner positioned at the start of data. The
// scanner never copies: slices handed out by Rest alias data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// Rest returns the bytes from the current position to the end.
func (s *Scanner) Rest() []byte {
	return s.data[s.pos:]
}

// Len returns the number of bytes remaining.
func (s *Scanner) Len() int {
	return len(s.data) - s.pos
}

// IsEmpty reports whether the scanner is exhausted.
func (s *Scanner) IsEmpty() bool {
	return s.pos >= len(s.data)
}

// Pos returns the current offset into the buffer.
func (s *Scanner) Pos() int {
	return s.pos
}

// SetPos rewinds or advances to a previously observed offset. Used by
// the alternative dispatcher to roll back a failed rule.
func (s *Scanner) SetPos(pos int) {
	s.pos = pos
}

// Peek returns the byte at the current position, or 0 at end of input.
func (s *Scanner) Peek() byte {
	if s.pos >= len(s.data) {
		return 0
	}
	return s.data[s.pos]
}

// Advance moves the position forward by n bytes. It reports false,
// without moving, if fewer than n bytes remain.
func (s *Scanner) Advance(n int) bool {
	if n > s.Len() {
		return false
	}
	s.pos += n
	return true
}

// Take consumes b if it is the next byte.
func (s *Scanner) Take(b byte) bool {
	if s.Peek() != b {
		return false
	}
	s.pos++
	return true
}
