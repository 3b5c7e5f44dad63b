package vector

import (
	"fmt"
	"reflect"
	"strings"
)

// Clone returns an independent copy with capacity equal to Len.
// Elements implementing Cloner are copied with their Clone method.
func (v *Vector[T]) Clone() *Vector[T] {
	v.mustLive()
	c := WithCapacity[T](v.length)
	c.opts = v.opts
	for _, x := range v.data[:v.length] {
		c.Push(cloneValue(x))
	}
	return c
}

// Equal reports whether both vectors hold deeply equal elements in the same
// order. Capacity is not compared.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v.length != other.length {
		return false
	}
	for i := range v.length {
		if !reflect.DeepEqual(v.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// String renders the elements as a bracketed list, e.g. [1, 2, 3].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data[:v.length] {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteByte(']')
	return sb.String()
}
