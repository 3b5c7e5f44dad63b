package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrMoved is raised when a vector is used after IntoIter took its storage.
	ErrMoved = errors.New("vector: use after move into iterator")
	// ErrDisposed is raised when a vector is used after Dispose.
	ErrDisposed = errors.New("vector: use after dispose")
)

// Operations reported by BoundsError.
const (
	OpIndex  = "index"
	OpInsert = "insert"
	OpRemove = "remove"
)

// BoundsError is the panic value for an out-of-range index.
type BoundsError struct {
	Op    string
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	prefix := "index"
	if e.Op != OpIndex {
		prefix = e.Op + " index"
	}
	switch {
	case e.Index < 0:
		return fmt.Sprintf("%s out of bounds: %d < 0", prefix, e.Index)
	case e.Op == OpInsert:
		return fmt.Sprintf("%s out of bounds: %d > %d", prefix, e.Index, e.Len)
	default:
		return fmt.Sprintf("%s out of bounds: %d >= %d", prefix, e.Index, e.Len)
	}
}

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(&BoundsError{Op: op, Index: i, Len: n})
	}
}
