package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/mus-format/mus-go"
	"github.com/mus-format/mus-go/varint"

	"github.com/quickwritereader/growbuf/storage"
	"github.com/quickwritereader/growbuf/vector"
)

var (
	// ErrNegativeLength is returned when an encoded vector declares a negative
	// element count.
	ErrNegativeLength = errors.New("codec: negative length")
	// ErrTruncated is returned when the declared element count cannot fit in
	// the remaining input.
	ErrTruncated = errors.New("codec: input shorter than declared length")
)

var _ mus.Serializer[*vector.Vector[int]] = Serializer[int]{}

// Serializer encodes a vector as a varint element count followed by each
// element in order, using elem for the elements. Every element encoding is
// assumed to take at least one byte.
type Serializer[T any] struct {
	elem mus.Serializer[T]
}

// NewSerializer returns a vector serializer built on elem.
func NewSerializer[T any](elem mus.Serializer[T]) Serializer[T] {
	return Serializer[T]{elem: elem}
}

// Marshal writes v into bs, which must hold at least Size(v) bytes.
func (s Serializer[T]) Marshal(v *vector.Vector[T], bs []byte) (n int) {
	n = varint.Int.Marshal(v.Len(), bs)
	for x := range v.Values() {
		n += s.elem.Marshal(x, bs[n:])
	}
	return
}

// Unmarshal reads a vector from bs. The result has capacity equal to its
// length.
func (s Serializer[T]) Unmarshal(bs []byte) (v *vector.Vector[T], n int, err error) {
	length, n, err := s.header(bs)
	if err != nil {
		return
	}
	v = vector.WithCapacity[T](length)
	for range length {
		x, m, err := s.elem.Unmarshal(bs[n:])
		n += m
		if err != nil {
			return nil, n, err
		}
		v.Push(x)
	}
	return v, n, nil
}

// Size returns the number of bytes Marshal writes for v.
func (s Serializer[T]) Size(v *vector.Vector[T]) (size int) {
	size = varint.Int.Size(v.Len())
	for x := range v.Values() {
		size += s.elem.Size(x)
	}
	return
}

// Skip returns the number of bytes an encoded vector occupies in bs.
func (s Serializer[T]) Skip(bs []byte) (n int, err error) {
	length, n, err := s.header(bs)
	if err != nil {
		return
	}
	for range length {
		m, err := s.elem.Skip(bs[n:])
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func (s Serializer[T]) header(bs []byte) (length, n int, err error) {
	length, n, err = varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	if length < 0 {
		return 0, n, fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	if length > len(bs)-n {
		return 0, n, fmt.Errorf("%w: %d elements, %d bytes left", ErrTruncated, length, len(bs)-n)
	}
	return
}

// Encode returns the binary encoding of v.
func (s Serializer[T]) Encode(v *vector.Vector[T]) []byte {
	bs := make([]byte, s.Size(v))
	n := s.Marshal(v, bs)
	return bs[:n]
}

// WriteVector encodes v into a pooled scratch buffer and writes it to w.
func (s Serializer[T]) WriteVector(w io.Writer, v *vector.Vector[T]) (int64, error) {
	buf := storage.AcquireBytes(s.Size(v))
	defer storage.ReleaseBytes(buf)

	n := s.Marshal(v, buf)
	written, err := w.Write(buf[:n])
	if err != nil {
		return int64(written), fmt.Errorf("mus write: %w", err)
	}
	return int64(written), nil
}

// ReadVector reads r to EOF and decodes a single vector from it.
func (s Serializer[T]) ReadVector(r io.Reader) (*vector.Vector[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("mus read: %w", err)
	}
	v, _, err := s.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("mus unmarshal: %w", err)
	}
	return v, nil
}
