package storage

import (
	"fmt"
	"unsafe"
)

// maxAllocBytes is the largest block this package will request:
// 1<<47 on 64-bit platforms, 1<<30 on 32-bit ones.
const maxAllocBytes = 1 << (30 + 17*(^uint(0)>>63))

// AllocError reports a block request the allocator cannot satisfy.
// It is raised with panic; running out of memory is not recoverable here.
type AllocError struct {
	Slots    int
	ElemSize uintptr
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("storage: cannot allocate %d slots of %d bytes", e.Slots, e.ElemSize)
}

// ElemSize returns the size in bytes of one slot of T.
func ElemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// Allocate returns a zeroed block with len and cap both equal to n.
// A request for zero slots allocates nothing and returns nil.
func Allocate[T any](n int) []T {
	if n == 0 {
		return nil
	}
	size := ElemSize[T]()
	if n < 0 || (size > 0 && uintptr(n) > maxAllocBytes/size) {
		panic(&AllocError{Slots: n, ElemSize: size})
	}
	return poolFor[T]().get(n)
}

// Reallocate moves block into a new block of exactly n slots. The first
// min(len(block), n) slots are carried over; which of them are live is the
// caller's business. The old block must not be used afterwards.
func Reallocate[T any](block []T, n int) []T {
	if n == len(block) {
		return block
	}
	if n == 0 {
		Deallocate(block)
		return nil
	}
	grown := Allocate[T](n)
	copy(grown, block)
	Deallocate(block)
	return grown
}

// Deallocate zeroes block and recycles it when its capacity is a pooled class.
func Deallocate[T any](block []T) {
	if cap(block) == 0 {
		return
	}
	block = block[:cap(block)]
	clear(block)
	poolFor[T]().put(block)
}
