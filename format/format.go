// Package format renders parsed transactions for human and machine
// consumption. It is an output convenience for the CLI; it does not
// serialize documents back into the mini-language.
package format

import (
	"encoding"

	"github.com/dhamidi/etcdtxn/txn"
)

// Encoder writes a parsed transaction to an output stream.
type Encoder interface {
	encoding.TextMarshaler
	Encode(t *txn.Txn) error
}
