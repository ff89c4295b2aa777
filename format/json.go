package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/etcdtxn/txn"
)

type JSONEncoder struct {
	w io.Writer
	t *txn.Txn
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(t *txn.Txn) error {
	e.t = t
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.buildTxnData(), "", "  ")
}

// Keys and values are rendered as strings rather than []byte so the
// output is readable text instead of base64.
type jsonTxn struct {
	Compares []jsonCompare   `json:"compares"`
	Success  []jsonOperation `json:"success"`
	Failure  []jsonOperation `json:"failure"`
}

type jsonCompare struct {
	Target string  `json:"target"`
	Key    string  `json:"key"`
	Op     string  `json:"op"`
	Rev    *uint64 `json:"rev,omitempty"`
	Value  *string `json:"value,omitempty"`
}

type jsonOperation struct {
	Type  string  `json:"type"`
	Key   string  `json:"key"`
	Value *string `json:"value,omitempty"`
}

func (e *JSONEncoder) buildTxnData() jsonTxn {
	data := jsonTxn{
		Compares: make([]jsonCompare, 0, len(e.t.Compares)),
		Success:  make([]jsonOperation, 0, len(e.t.Success)),
		Failure:  make([]jsonOperation, 0, len(e.t.Failure)),
	}
	for _, c := range e.t.Compares {
		data.Compares = append(data.Compares, buildCompare(c))
	}
	for _, op := range e.t.Success {
		data.Success = append(data.Success, buildOperation(op))
	}
	for _, op := range e.t.Failure {
		data.Failure = append(data.Failure, buildOperation(op))
	}
	return data
}

func buildCompare(c txn.Compare) jsonCompare {
	out := jsonCompare{
		Target: c.Kind.String(),
		Key:    string(c.Key),
		Op:     c.Op.String(),
	}
	if c.Kind == txn.CompareValue {
		value := string(c.Value)
		out.Value = &value
	} else {
		rev := c.Rev
		out.Rev = &rev
	}
	return out
}

func buildOperation(op txn.Operation) jsonOperation {
	out := jsonOperation{
		Type: op.Kind.String(),
		Key:  string(op.Key),
	}
	if op.Kind == txn.OpPut {
		value := string(op.Value)
		out.Value = &value
	}
	return out
}
