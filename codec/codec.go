package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	jsoniter "github.com/json-iterator/go"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/quickwritereader/growbuf/vector"
)

// ErrUnknownFormat is returned for a Format this package does not implement.
var ErrUnknownFormat = errors.New("codec: unknown format")

// Format selects an encoding.
type Format uint8

const (
	JSON Format = iota + 1
	JSONIter
	MsgPack
	YAML
)

var jsonIter = jsoniter.ConfigCompatibleWithStandardLibrary

// String returns the format name accepted by ParseFormat.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case JSONIter:
		return "jsoniter"
	case MsgPack:
		return "msgpack"
	case YAML:
		return "yaml"
	default:
		return "invalid"
	}
}

// ParseFormat maps a name (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "jsoniter":
		return JSONIter, nil
	case "msgpack":
		return MsgPack, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Marshal encodes v in format f.
func Marshal[T any](f Format, v *vector.Vector[T]) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch f {
	case JSON:
		data, err = json.Marshal(v)
	case JSONIter:
		data, err = jsonIter.Marshal(v)
	case MsgPack:
		data, err = msgpack.Marshal(v)
	case YAML:
		data, err = yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s marshal: %w", f, err)
	}
	return data, nil
}

// Unmarshal decodes data in format f into a new vector sized exactly to the
// decoded elements.
func Unmarshal[T any](f Format, data []byte) (*vector.Vector[T], error) {
	v := vector.New[T]()
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(data, v)
	case JSONIter:
		err = jsonIter.Unmarshal(data, v)
	case MsgPack:
		err = msgpack.Unmarshal(data, v)
	case YAML:
		err = yaml.Unmarshal(data, v)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s unmarshal: %w", f, err)
	}
	return v, nil
}
