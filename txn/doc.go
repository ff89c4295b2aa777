// Package txn parses the line-oriented mini-language that describes a
// conditional key-value transaction: a block of comparison checks
// followed by two blocks of operations, one applied when the checks
// pass and one when they fail.
//
// # Grammar
//
//	document   := ws* compare-section blank-line success-section blank-line failure-section
//	compare-section := (comparison (LF comparison)*)?
//	success-section := (operation (LF operation)*)?
//	failure-section := (operation (LF operation)*)?
//	comparison  := ("c"|"create")   '(' data ')' ws* op ws* uint
//	             | ("m"|"mod")      '(' data ')' ws* op ws* uint
//	             | ("val"|"value")  '(' data ')' ws* op ws* bytes-to-eol
//	             | ("ver"|"version")'(' data ')' ws* op ws* uint
//	             | "lease"          '(' data ')' ws* op ws* uint
//	operation   := "put" ws* data ws* data
//	             | "del" ws* data
//	             | "get" ws* data
//	data        := '"' bytes-no-quote '"' | bytes-no-whitespace
//	op          := '=' | '>' | '<'
//
// A blank line is exactly two line feeds. Whitespace (ws) is ASCII
// space and tab; line feeds only ever act as separators. Any of the
// three sections may be empty.
//
// # Parsing model
//
// [Parse] makes a single linear pass over an in-memory buffer and
// either produces a complete [Txn] or fails with
// [ErrUnexpectedToken]. There is no partial output and no recovery.
// Every key and value in the result is a sub-slice of the input
// buffer, so the document is only valid as long as the buffer is.
package txn
