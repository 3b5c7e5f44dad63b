// Package codec encodes and decodes vectors.
//
// Marshal and Unmarshal pick a text or msgpack format at run time. The JSON
// formats differ only in engine: JSON uses goccy/go-json, JSONIter uses
// json-iterator in standard-library compatible mode. Serializer is a
// length-prefixed binary format built on mus-go element serializers.
package codec
