// Package text provides a plain-text encoder for extracted names.
// Names are written as raw UTF-8 bytes with no framing, which makes it
// the natural choice for headers, file names, and other string-shaped slots.
package text

import (
	typename "github.com/mara-schulke/serde-typename"
)

// Encoder implements typename.Encoder using the name's raw bytes.
type Encoder struct{}

var _ typename.Encoder = &Encoder{}

// Encode extracts v's name and returns it as UTF-8 bytes.
func (e *Encoder) Encode(v typename.Serializable) ([]byte, error) {
	name, err := typename.ToName(v)
	if err != nil {
		return nil, err
	}
	return []byte(name), nil
}

// Decode reconstructs v from the name held in data.
func (e *Encoder) Decode(data []byte, v typename.Deserializable) error {
	return typename.FromName(string(data), v)
}

// New creates a new plain-text encoder.
func New() *Encoder {
	return &Encoder{}
}
