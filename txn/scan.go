package txn

import "bytes"

// scanGroup matches a delimited group at the start of d: the opening
// byte, the inner bytes, and the first matching closing byte. There
// is no nesting and no escape processing; a quoted literal cannot
// contain a quote. It returns the inner slice with the delimiters
// excluded and the total number of bytes consumed including both
// delimiters. A missing opener or closer is a failure.
func scanGroup(d []byte, open, close byte) (inner []byte, n int, err error) {
	if len(d) == 0 || d[0] != open {
		return nil, 0, ErrUnexpectedToken
	}
	end := bytes.IndexByte(d[1:], close)
	if end < 0 {
		return nil, 0, ErrUnexpectedToken
	}
	return d[1 : 1+end], end + 2, nil
}

// scanUntil splits d at the first occurrence of pattern, returning
// the bytes before it and the offset just past it. ok is false when
// the pattern does not occur.
func scanUntil(d, pattern []byte) (before []byte, next int, ok bool) {
	i := bytes.Index(d, pattern)
	if i < 0 {
		return nil, 0, false
	}
	return d[:i], i + len(pattern), true
}
