package codec

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickwritereader/growbuf/vector"
)

func TestSerializerRoundTrip(t *testing.T) {
	ser := NewSerializer[int](varint.Int)
	v := vector.Of(0, -1, 300, 1<<40)

	bs := ser.Encode(v)
	assert.Len(t, bs, ser.Size(v))

	out, n, err := ser.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, len(bs), n)
	assert.True(t, v.Equal(out))
	assert.Equal(t, 4, out.Cap())
}

func TestSerializerStrings(t *testing.T) {
	ser := NewSerializer[string](ord.String)
	v := vector.Of("hello", "", "world")

	out, _, err := ser.Unmarshal(ser.Encode(v))
	require.NoError(t, err)
	assert.Equal(t, "[hello, , world]", out.String())
}

func TestSerializerEmpty(t *testing.T) {
	ser := NewSerializer[int](varint.Int)
	bs := ser.Encode(vector.New[int]())
	assert.Equal(t, []byte{0}, bs)

	out, n, err := ser.Unmarshal(bs)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.True(t, out.IsEmpty())
	assert.Equal(t, 0, out.Cap())
}

func TestSerializerSkip(t *testing.T) {
	ser := NewSerializer[string](ord.String)
	first := ser.Encode(vector.Of("a", "bc"))
	second := ser.Encode(vector.Of("def"))
	bs := append(append([]byte{}, first...), second...)

	n, err := ser.Skip(bs)
	require.NoError(t, err)
	assert.Equal(t, len(first), n)

	out, _, err := ser.Unmarshal(bs[n:])
	require.NoError(t, err)
	assert.Equal(t, "def", out.At(0))
}

func TestSerializerNegativeLength(t *testing.T) {
	bs := make([]byte, varint.Int.Size(-1))
	varint.Int.Marshal(-1, bs)

	ser := NewSerializer[int](varint.Int)
	_, _, err := ser.Unmarshal(bs)
	assert.True(t, errors.Is(err, ErrNegativeLength))

	_, err = ser.Skip(bs)
	assert.True(t, errors.Is(err, ErrNegativeLength))
}

func TestSerializerTruncated(t *testing.T) {
	ser := NewSerializer[int](varint.Int)
	bs := ser.Encode(vector.Of(1, 2, 3))

	_, _, err := ser.Unmarshal(bs[:2])
	assert.ErrorIs(t, err, ErrTruncated)

	_, _, err = ser.Unmarshal(nil)
	assert.Error(t, err)
}

func TestWriteReadVector(t *testing.T) {
	ser := NewSerializer[string](ord.String)
	v := vector.Repeat("payload", 20)

	var buf bytes.Buffer
	n, err := ser.WriteVector(&buf, v)
	require.NoError(t, err)
	assert.Equal(t, int64(ser.Size(v)), n)

	out, err := ser.ReadVector(&buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(out))
}

func TestReadVectorError(t *testing.T) {
	ser := NewSerializer[int](varint.Int)
	_, err := ser.ReadVector(bytes.NewReader([]byte{0x06, 0x02}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mus unmarshal: ")
}
