// Package vector provides Vector, a growable contiguous buffer that owns
// its elements.
//
// # Growth
//
// Capacity follows a fixed doubling schedule: 0, 1, 2, 4, 8, ... A vector
// grows only when it is full and another element has to be written, both for
// Push and for Insert. WithCapacity reserves an exact number of slots and no
// growth happens until they are used up.
//
// # Element lifecycle
//
// Elements moved out of a vector (Pop, Remove, IntoIter.Next) are handed to
// the caller. Elements the vector discards itself (Clear, Truncate, Set,
// Dispose, closing an unfinished IntoIter) are dropped: if the element
// implements Dropper its Drop method runs exactly once, then the slot is
// zeroed.
//
// # Views
//
// View, MutView and AsSlice expose the live elements only. They borrow the
// vector's storage and are invalidated by any operation that changes its
// capacity or length. Nothing checks this at runtime.
//
// # Ownership transfer
//
// IntoIter moves the storage into an iterator. The vector is inert from that
// point on; mutating it panics with ErrMoved. Dispose does the same for the
// destroyed state with ErrDisposed.
//
// Vector is not safe for concurrent use.
package vector
