package vector

import (
	"github.com/goccy/go-json"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

var (
	_ json.Marshaler        = (*Vector[int])(nil)
	_ json.Unmarshaler      = (*Vector[int])(nil)
	_ msgpack.CustomEncoder = (*Vector[int])(nil)
	_ msgpack.CustomDecoder = (*Vector[int])(nil)
	_ yaml.Marshaler        = (*Vector[int])(nil)
	_ yaml.Unmarshaler      = (*Vector[int])(nil)
)

// MarshalJSON encodes the elements as a JSON array. An empty vector encodes
// as [] rather than null.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.length == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(v.AsSlice())
}

// UnmarshalJSON replaces the contents with the decoded array.
// The previous elements are dropped.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	v.replace(items)
	return nil
}

// EncodeMsgpack writes the elements as a msgpack array.
func (v *Vector[T]) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(v.length); err != nil {
		return err
	}
	for _, x := range v.data[:v.length] {
		if err := enc.Encode(x); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack replaces the contents with the decoded array.
// A nil array decodes as an empty vector.
func (v *Vector[T]) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n < 0 {
		n = 0
	}
	items := make([]T, n)
	for i := range items {
		if err := dec.Decode(&items[i]); err != nil {
			return err
		}
	}
	v.replace(items)
	return nil
}

// MarshalYAML encodes the elements as a YAML sequence.
func (v *Vector[T]) MarshalYAML() (interface{}, error) {
	out := make([]T, v.length)
	copy(out, v.data)
	return out, nil
}

// UnmarshalYAML replaces the contents with the decoded sequence.
func (v *Vector[T]) UnmarshalYAML(value *yaml.Node) error {
	var items []T
	if err := value.Decode(&items); err != nil {
		return err
	}
	v.replace(items)
	return nil
}
