package format

import (
	"bytes"
	"fmt"
	"io"

	"github.com/dhamidi/etcdtxn/txn"
)

// TextEncoder writes one line per parsed entry, prefixed with the
// section it came from.
type TextEncoder struct {
	w io.Writer
	t *txn.Txn
}

func NewTextEncoder(w io.Writer) *TextEncoder {
	return &TextEncoder{w: w}
}

func (e *TextEncoder) Encode(t *txn.Txn) error {
	e.t = t
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TextEncoder) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	for _, c := range e.t.Compares {
		writeCompare(&buf, c)
	}
	for _, op := range e.t.Success {
		writeOperation(&buf, "success", op)
	}
	for _, op := range e.t.Failure {
		writeOperation(&buf, "failure", op)
	}
	return buf.Bytes(), nil
}

func writeCompare(buf *bytes.Buffer, c txn.Compare) {
	if c.Kind == txn.CompareValue {
		fmt.Fprintf(buf, "compare %s(%s) %s %s\n", c.Kind, c.Key, c.Op, c.Value)
		return
	}
	fmt.Fprintf(buf, "compare %s(%s) %s %d\n", c.Kind, c.Key, c.Op, c.Rev)
}

func writeOperation(buf *bytes.Buffer, section string, op txn.Operation) {
	if op.Kind == txn.OpPut {
		fmt.Fprintf(buf, "%s %s %s = %s\n", section, op.Kind, op.Key, op.Value)
		return
	}
	fmt.Fprintf(buf, "%s %s %s\n", section, op.Kind, op.Key)
}
