package vector

// Of builds a vector by pushing elems in order onto a new vector.
func Of[T any](elems ...T) *Vector[T] {
	v := New[T]()
	for _, x := range elems {
		v.Push(x)
	}
	return v
}

// Repeat builds a vector of n copies of x with capacity exactly n.
// Copies are made with Clone when x implements Cloner.
func Repeat[T any](x T, n int) *Vector[T] {
	v := WithCapacity[T](n)
	for range n {
		v.Push(cloneValue(x))
	}
	return v
}

// FromSlice copies s into a new vector with capacity exactly len(s).
func FromSlice[T any](s []T, opts ...Option) *Vector[T] {
	v := WithCapacity[T](len(s), opts...)
	v.length = copy(v.data, s)
	return v
}
