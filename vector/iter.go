package vector

import (
	"iter"

	"github.com/quickwritereader/growbuf/storage"
)

// IntoIter yields the elements of a consumed vector by value, front to back.
//
// An IntoIter owns the storage it was given. Elements it never hands out are
// dropped by Close; storage is released by Close or as soon as Next reports
// exhaustion.
type IntoIter[T any] struct {
	data   []T
	length int
	cursor int
}

// IntoIter moves the vector's storage into an iterator. The vector is left
// inert: further mutation panics with ErrMoved.
func (v *Vector[T]) IntoIter() *IntoIter[T] {
	v.mustLive()
	it := &IntoIter[T]{data: v.data, length: v.length}
	v.data, v.length, v.state = nil, 0, moved
	return it
}

// Next moves the next element out of the iterator.
// Once it reports false it keeps doing so.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.cursor >= it.length {
		it.release()
		return zero, false
	}
	x := it.data[it.cursor]
	it.data[it.cursor] = zero
	it.cursor++
	if it.cursor == it.length {
		it.release()
	}
	return x, true
}

// Remaining returns the number of elements Next will still produce.
func (it *IntoIter[T]) Remaining() int {
	return it.length - it.cursor
}

// Close drops every element not yet produced and releases the storage.
// It is safe to call more than once.
func (it *IntoIter[T]) Close() {
	if it.cursor < it.length {
		dropAll(it.data[it.cursor:it.length])
		it.cursor = it.length
	}
	it.release()
}

func (it *IntoIter[T]) release() {
	if it.data == nil {
		return
	}
	storage.Deallocate(it.data)
	it.data = nil
}

// All adapts the iterator for range-over-func. The iterator is closed when
// the loop finishes or breaks, so a partial loop still drops the rest.
func (it *IntoIter[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		defer it.Close()
		for {
			x, ok := it.Next()
			if !ok || !yield(x) {
				return
			}
		}
	}
}

// Collect moves the remaining elements into a new slice.
func (it *IntoIter[T]) Collect() []T {
	out := make([]T, 0, it.Remaining())
	for {
		x, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, x)
	}
}
