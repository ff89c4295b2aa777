package txn

import "bytes"

// Operator is a comparison operator.
type Operator int

const (
	Equal Operator = iota
	GreaterThan
	LessThan
)

func (o Operator) String() string {
	switch o {
	case Equal:
		return "="
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	}
	return "?"
}

// CompareKind identifies which attribute of a key a comparison checks.
type CompareKind int

const (
	CompareCreateRevision CompareKind = iota
	CompareModRevision
	CompareValue
	CompareVersion
	CompareLease
)

func (k CompareKind) String() string {
	switch k {
	case CompareCreateRevision:
		return "create-revision"
	case CompareModRevision:
		return "mod-revision"
	case CompareValue:
		return "value"
	case CompareVersion:
		return "version"
	case CompareLease:
		return "lease"
	}
	return "unknown"
}

// Compare is a single conditional check against a key. Rev holds the
// right-hand side for the create-revision, mod-revision, version and
// lease variants; Value holds it for the value variant. Key and Value
// alias the parsed input.
type Compare struct {
	Kind  CompareKind
	Key   []byte
	Op    Operator
	Rev   uint64
	Value []byte
}

// Declared order is a deliberate tie break. The spellings are exact
// matches so no variant can shadow another, but the order is fixed
// and covered by tests so that stays true.
var compareRules = []rule[Compare]{
	parseModRevision,
	parseCreateRevision,
	parseValueCompare,
	parseVersion,
	parseLease,
}

func parseCompare(s *Scanner) (Compare, error) {
	return firstMatch(s, compareRules)
}

func parseOperator(s *Scanner) (Operator, error) {
	switch s.Peek() {
	case '=':
		s.Advance(1)
		return Equal, nil
	case '>':
		s.Advance(1)
		return GreaterThan, nil
	case '<':
		s.Advance(1)
		return LessThan, nil
	}
	return 0, ErrUnexpectedToken
}

// compareKeyword matches the keyword before the opening parenthesis
// against the variant's accepted spellings and consumes it, leaving
// the parenthesis for parseCompareKey. Trailing whitespace between
// keyword and parenthesis is tolerated.
func compareKeyword(s *Scanner, spellings ...string) error {
	rest := s.Rest()
	i := bytes.IndexByte(rest, '(')
	if i < 0 {
		return ErrUnexpectedToken
	}
	word := trimTrailingSpaces(rest[:i])
	for _, spelling := range spellings {
		if string(word) == spelling {
			s.Advance(i)
			return nil
		}
	}
	return ErrUnexpectedToken
}

// parseCompareKey parses the parenthesized key as a data literal,
// bounded to the group so the literal cannot read past the closing
// parenthesis.
func parseCompareKey(s *Scanner) ([]byte, error) {
	inner, n, err := scanGroup(s.Rest(), '(', ')')
	if err != nil {
		return nil, err
	}
	key, err := parseData(NewScanner(inner))
	if err != nil {
		return nil, err
	}
	s.Advance(n)
	return key, nil
}

// parseRevisionCompare covers the four variants whose right-hand side
// is an unsigned 64-bit integer.
func parseRevisionCompare(s *Scanner, kind CompareKind, spellings ...string) (Compare, error) {
	skipSpaces(s)
	if err := compareKeyword(s, spellings...); err != nil {
		return Compare{}, err
	}
	key, err := parseCompareKey(s)
	if err != nil {
		return Compare{}, err
	}
	skipSpaces(s)
	op, err := parseOperator(s)
	if err != nil {
		return Compare{}, err
	}
	skipSpaces(s)
	rev, err := parseUint(s)
	if err != nil {
		return Compare{}, err
	}
	return Compare{Kind: kind, Key: key, Op: op, Rev: rev}, nil
}

func parseCreateRevision(s *Scanner) (Compare, error) {
	return parseRevisionCompare(s, CompareCreateRevision, "c", "create")
}

func parseModRevision(s *Scanner) (Compare, error) {
	return parseRevisionCompare(s, CompareModRevision, "m", "mod")
}

func parseVersion(s *Scanner) (Compare, error) {
	return parseRevisionCompare(s, CompareVersion, "ver", "version")
}

func parseLease(s *Scanner) (Compare, error) {
	return parseRevisionCompare(s, CompareLease, "lease")
}

// parseValueCompare handles the value variant, whose right-hand side
// is the remainder of the line as raw bytes.
func parseValueCompare(s *Scanner) (Compare, error) {
	skipSpaces(s)
	if err := compareKeyword(s, "val", "value"); err != nil {
		return Compare{}, err
	}
	key, err := parseCompareKey(s)
	if err != nil {
		return Compare{}, err
	}
	skipSpaces(s)
	op, err := parseOperator(s)
	if err != nil {
		return Compare{}, err
	}
	skipSpaces(s)
	value := scanLine(s.Rest())
	s.Advance(len(value))
	return Compare{Kind: CompareValue, Key: key, Op: op, Value: value}, nil
}
