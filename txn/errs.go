package txn

import "errors"

// ErrUnexpectedToken is the parser's single failure mode: a grammar
// rule's precondition was not met at the current position. The error
// carries no location; callers that need diagnostics re-scan the
// input themselves.
var ErrUnexpectedToken = errors.New("unexpected token")
