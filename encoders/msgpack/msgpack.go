package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"

	typename "github.com/mara-schulke/serde-typename"
)

type Encoder struct{}

var _ typename.Encoder = &Encoder{}

func (e *Encoder) Encode(v typename.Serializable) ([]byte, error) {
	name, err := typename.ToName(v)
	if err != nil {
		return nil, err
	}
	return msgpack.Marshal(name)
}

func (e *Encoder) Decode(data []byte, v typename.Deserializable) error {
	var name string
	if err := msgpack.Unmarshal(data, &name); err != nil {
		return err
	}
	return typename.FromName(name, v)
}

func New() *Encoder {
	return &Encoder{}
}
