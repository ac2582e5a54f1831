// Package jsonx wraps Sonic behind the small JSON surface the transport
// layer needs. It mirrors encoding/json's API so handlers read naturally.
package jsonx

import (
	"bytes"
	"io"

	"github.com/bytedance/sonic"
)

var api = sonic.Config{
	EscapeHTML: false,
	UseInt64:   true,
}.Froze()

// Marshal returns the JSON encoding of v.
func Marshal(v interface{}) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal parses data and stores the result in the value pointed to by v.
func Unmarshal(data []byte, v interface{}) error {
	return api.Unmarshal(data, v)
}

// Decoder reads a single JSON value from an io.Reader.
type Decoder struct {
	reader io.Reader
	buf    *bytes.Buffer
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{reader: r}
}

// Decode reads the next JSON value from the input and stores it in v.
func (d *Decoder) Decode(v interface{}) error {
	if d.buf == nil {
		d.buf = &bytes.Buffer{}
	}
	if _, err := io.Copy(d.buf, d.reader); err != nil {
		return err
	}
	return api.Unmarshal(d.buf.Bytes(), v)
}
