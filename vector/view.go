package vector

import (
	"iter"
	"slices"
)

// View is a read-only window over a vector's live elements.
type View[T any] struct {
	s []T
}

// Len returns the number of elements in the view.
func (w View[T]) Len() int { return len(w.s) }

// At returns the element at index i.
func (w View[T]) At(i int) T {
	checkIndex(OpIndex, i, len(w.s))
	return w.s[i]
}

// All returns an iterator over index/element pairs.
func (w View[T]) All() iter.Seq2[int, T] { return slices.All(w.s) }

// Values returns an iterator over the elements.
func (w View[T]) Values() iter.Seq[T] { return slices.Values(w.s) }

// MutView is a read-write window over a vector's live elements.
// It cannot change the vector's length.
type MutView[T any] struct {
	View[T]
}

// Set overwrites the element at index i. Unlike Vector.Set it does not drop
// the previous element.
func (w MutView[T]) Set(i int, x T) {
	checkIndex(OpIndex, i, len(w.s))
	w.s[i] = x
}

// Ptr returns a pointer to the element at index i.
func (w MutView[T]) Ptr(i int) *T {
	checkIndex(OpIndex, i, len(w.s))
	return &w.s[i]
}

// Swap exchanges the elements at i and j.
func (w MutView[T]) Swap(i, j int) {
	checkIndex(OpIndex, i, len(w.s))
	checkIndex(OpIndex, j, len(w.s))
	w.s[i], w.s[j] = w.s[j], w.s[i]
}

// View returns a read-only view of the live elements.
func (v *Vector[T]) View() View[T] {
	return View[T]{s: v.AsSlice()}
}

// MutView returns a read-write view of the live elements.
func (v *Vector[T]) MutView() MutView[T] {
	v.mustLive()
	return MutView[T]{View[T]{s: v.AsSlice()}}
}

// AsSlice returns the live elements as a slice sharing the vector's storage.
// Its capacity is clipped to its length, so append on it always copies
// instead of writing into the vector's unused slots.
func (v *Vector[T]) AsSlice() []T {
	return v.data[:v.length:v.length]
}

// All returns an iterator over index/element pairs. It borrows the vector.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.AsSlice())
}

// Values returns an iterator over the elements. It borrows the vector.
func (v *Vector[T]) Values() iter.Seq[T] {
	return slices.Values(v.AsSlice())
}
