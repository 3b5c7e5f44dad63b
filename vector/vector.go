package vector

import (
	"github.com/quickwritereader/growbuf/storage"
)

type state uint8

const (
	live state = iota
	moved
	disposed
)

// Vector is a growable, contiguous buffer of T.
//
// data always spans the whole allocation, so len(data) is the capacity.
// Slots past length hold the zero value and are never exposed.
// The zero value is an empty vector ready for use.
type Vector[T any] struct {
	data   []T
	length int
	state  state
	opts   options
}

// New returns an empty vector. It does not allocate storage.
func New[T any](opts ...Option) *Vector[T] {
	return &Vector[T]{opts: buildOptions(opts)}
}

// WithCapacity returns an empty vector with room for exactly n elements.
func WithCapacity[T any](n int, opts ...Option) *Vector[T] {
	return &Vector[T]{
		data: storage.Allocate[T](n),
		opts: buildOptions(opts),
	}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.length
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	return len(v.data)
}

// IsEmpty reports whether the vector holds no elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.length == 0
}

func (v *Vector[T]) mustLive() {
	switch v.state {
	case moved:
		panic(ErrMoved)
	case disposed:
		panic(ErrDisposed)
	}
}

// Push appends x, growing the vector if it is full.
func (v *Vector[T]) Push(x T) {
	v.mustLive()
	v.growIfFull()
	v.data[v.length] = x
	v.length++
}

// Pop removes the last element and returns it.
// It reports false when the vector is empty. Capacity is never reduced.
func (v *Vector[T]) Pop() (T, bool) {
	v.mustLive()
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	x := v.data[v.length]
	v.data[v.length] = zero
	return x, true
}

// Insert places x at index i and shifts the elements after it one slot right.
// i may equal Len, which appends.
func (v *Vector[T]) Insert(i int, x T) {
	v.mustLive()
	if i < 0 || i > v.length {
		panic(&BoundsError{Op: OpInsert, Index: i, Len: v.length})
	}
	v.growIfFull()
	copy(v.data[i+1:v.length+1], v.data[i:v.length])
	v.data[i] = x
	v.length++
}

// Remove takes the element at index i out of the vector and shifts the
// elements after it one slot left.
func (v *Vector[T]) Remove(i int) T {
	v.mustLive()
	checkIndex(OpRemove, i, v.length)
	x := v.data[i]
	copy(v.data[i:v.length-1], v.data[i+1:v.length])
	v.length--
	var zero T
	v.data[v.length] = zero
	return x
}

// Clear drops every element. Capacity is unchanged.
func (v *Vector[T]) Clear() {
	v.mustLive()
	dropAll(v.data[:v.length])
	v.length = 0
}

// Truncate drops the elements from index n onward.
// It does nothing if n >= Len; a negative n clears the vector.
func (v *Vector[T]) Truncate(n int) {
	v.mustLive()
	if n < 0 {
		n = 0
	}
	if n >= v.length {
		return
	}
	dropAll(v.data[n:v.length])
	v.length = n
}

// ShrinkToFit reallocates the storage to exactly Len slots, releasing it
// entirely when the vector is empty.
func (v *Vector[T]) ShrinkToFit() {
	v.mustLive()
	if len(v.data) == v.length {
		return
	}
	v.resizeTo(v.length)
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) T {
	checkIndex(OpIndex, i, v.length)
	return v.data[i]
}

// Ptr returns a pointer to the element at index i.
// The pointer is valid until the next operation that changes capacity or
// shifts elements.
func (v *Vector[T]) Ptr(i int) *T {
	checkIndex(OpIndex, i, v.length)
	return &v.data[i]
}

// Set replaces the element at index i with x and drops the old element.
func (v *Vector[T]) Set(i int, x T) {
	v.mustLive()
	checkIndex(OpIndex, i, v.length)
	old := v.data[i]
	v.data[i] = x
	drop(old)
}

// Dispose drops every element and releases the storage.
// The vector cannot be mutated afterwards. Calling Dispose again is a no-op.
func (v *Vector[T]) Dispose() {
	if v.state != live {
		return
	}
	dropAll(v.data[:v.length])
	capacity := len(v.data)
	storage.Deallocate(v.data)
	v.data, v.length, v.state = nil, 0, disposed
	if l := v.opts.logger; l != nil {
		l.Debug("vector disposed", "cap", capacity)
	}
}

// replace swaps the contents for a copy of items sized exactly to them.
func (v *Vector[T]) replace(items []T) {
	v.mustLive()
	dropAll(v.data[:v.length])
	storage.Deallocate(v.data)
	v.data = storage.Allocate[T](len(items))
	v.length = copy(v.data, items)
}
