package txn

// A rule parses one grammar production at the scanner position and
// reports ErrUnexpectedToken when its precondition is not met. Rules
// may leave the scanner mid-production on failure; firstMatch owns
// the rollback.
type rule[T any] func(*Scanner) (T, error)

// firstMatch tries each rule in order against the same starting
// position, committing to the first that succeeds and restoring the
// position after each failure. When every alternative fails the
// dispatch itself fails.
func firstMatch[T any](s *Scanner, rules []rule[T]) (T, error) {
	start := s.Pos()
	for _, r := range rules {
		v, err := r(s)
		if err == nil {
			return v, nil
		}
		s.SetPos(start)
	}
	var zero T
	return zero, ErrUnexpectedToken
}

// parseLines parses a line-feed separated list of items spanning the
// whole scanner. A region that is empty or all whitespace yields no
// items. Anything else must parse completely: a line that fails every
// alternative surfaces as an error rather than being dropped.
func parseLines[T any](s *Scanner, item rule[T]) ([]T, error) {
	if isBlank(s.Rest()) {
		return nil, nil
	}
	var items []T
	for {
		v, err := item(s)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		skipSpaces(s)
		if !s.Take('\n') {
			break
		}
		if isBlank(s.Rest()) {
			break
		}
	}
	if !isBlank(s.Rest()) {
		return nil, ErrUnexpectedToken
	}
	return items, nil
}
