package txn

// parseData recognizes a key or value literal: a double-quoted string
// with the quotes stripped, or a bare run of non-whitespace bytes.
// Quoted content is taken verbatim, embedded whitespace included.
// An unterminated quote is a failure; the opening quote commits the
// literal to the quoted form. The returned slice aliases the input.
func parseData(s *Scanner) ([]byte, error) {
	if s.Peek() == '"' {
		inner, n, err := scanGroup(s.Rest(), '"', '"')
		if err != nil {
			return nil, err
		}
		s.Advance(n)
		return inner, nil
	}
	word := scanWord(s.Rest())
	if len(word) == 0 {
		return nil, ErrUnexpectedToken
	}
	s.Advance(len(word))
	return word, nil
}
