package txn

// OperationKind identifies the kind of key-value request.
type OperationKind int

const (
	OpPut OperationKind = iota
	OpDelete
	OpGet
)

func (k OperationKind) String() string {
	switch k {
	case OpPut:
		return "put"
	case OpDelete:
		return "delete"
	case OpGet:
		return "get"
	}
	return "unknown"
}

// Operation is a single key-value request from the success or failure
// branch. Value is set for put only. Key and Value alias the parsed
// input.
type Operation struct {
	Kind  OperationKind
	Key   []byte
	Value []byte
}

var operationRules = []rule[Operation]{
	parsePut,
	parseDelete,
	parseGet,
}

func parseOperation(s *Scanner) (Operation, error) {
	return firstMatch(s, operationRules)
}

func parsePut(s *Scanner) (Operation, error) {
	skipSpaces(s)
	if err := keyword(s, "put"); err != nil {
		return Operation{}, err
	}
	skipSpaces(s)
	key, err := parseData(s)
	if err != nil {
		return Operation{}, err
	}
	skipSpaces(s)
	value, err := parseData(s)
	if err != nil {
		return Operation{}, err
	}
	skipSpaces(s)
	return Operation{Kind: OpPut, Key: key, Value: value}, nil
}

func parseDelete(s *Scanner) (Operation, error) {
	key, err := parseKeyOnly(s, "del")
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpDelete, Key: key}, nil
}

func parseGet(s *Scanner) (Operation, error) {
	key, err := parseKeyOnly(s, "get")
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: OpGet, Key: key}, nil
}

// parseKeyOnly parses an operation made of a keyword and a single
// key. The key is parsed within the current line so a quoted key
// cannot swallow the line separator.
func parseKeyOnly(s *Scanner, word string) ([]byte, error) {
	skipSpaces(s)
	if err := keyword(s, word); err != nil {
		return nil, err
	}
	skipSpaces(s)
	sub := NewScanner(scanLine(s.Rest()))
	key, err := parseData(sub)
	if err != nil {
		return nil, err
	}
	s.Advance(sub.Pos())
	skipSpaces(s)
	return key, nil
}
