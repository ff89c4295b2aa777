package txn

// Txn is a parsed transaction document: the conditional checks and
// the two branches of operations, each in source order. Any of the
// three lists may be empty. Every byte slice in the document aliases
// the buffer given to Parse.
type Txn struct {
	Compares []Compare
	Success  []Operation
	Failure  []Operation
}

// sectionEnd separates the three sections of a document: exactly two
// line feeds, consumed when the section region is carved out. Extra
// blank lines belong to the following section and fail its grammar.
var sectionEnd = []byte("\n\n")

type section int

const (
	readCompareSection section = iota
	readSuccessSection
	readFailureSection
	sectionsDone
)

// Parse parses a transaction document from raw bytes in a single
// pass. Both section boundaries must be present even when the
// sections around them are empty; the failure section runs to end of
// input and needs no trailing line feed.
//
// Parse is all or nothing: any malformed line, missing boundary,
// unterminated group or out-of-range number yields ErrUnexpectedToken
// and no document.
func Parse(data []byte) (*Txn, error) {
	s := NewScanner(data)
	skipSpaces(s)

	var t Txn
	for state := readCompareSection; state != sectionsDone; {
		switch state {
		case readCompareSection:
			region, next, ok := scanUntil(s.Rest(), sectionEnd)
			if !ok {
				return nil, ErrUnexpectedToken
			}
			compares, err := parseLines(NewScanner(region), parseCompare)
			if err != nil {
				return nil, err
			}
			t.Compares = compares
			s.Advance(next)
			state = readSuccessSection

		case readSuccessSection:
			region, next, ok := scanUntil(s.Rest(), sectionEnd)
			if !ok {
				return nil, ErrUnexpectedToken
			}
			success, err := parseLines(NewScanner(region), parseOperation)
			if err != nil {
				return nil, err
			}
			t.Success = success
			s.Advance(next)
			state = readFailureSection

		case readFailureSection:
			failure, err := parseLines(NewScanner(s.Rest()), parseOperation)
			if err != nil {
				return nil, err
			}
			t.Failure = failure
			s.Advance(s.Len())
			state = sectionsDone
		}
	}
	return &t, nil
}
