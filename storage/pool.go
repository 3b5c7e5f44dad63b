package storage

import (
	"math/bits"
	"reflect"
	"sync"
)

var BufferSizeClass = [...]int{64, 128, 256, 512, 1024, 2048, 4096, 8192, 16384, 32768}

// MaxPooledSlots is the largest block capacity recycled through a class pool.
const MaxPooledSlots = 1 << 15

// SizeIndex returns the byte class able to hold n bytes, or -1.
func SizeIndex(n int) int {
	if n <= 0 || n > 32768 {
		return -1
	}
	idx := bits.Len(uint(n))
	if idx < 7 {
		return 0
	}
	if n&(n-1) == 0 {
		return idx - 7
	}
	return idx - 6
}

// slotClass maps an exact power-of-two capacity to its block class.
// Blocks are never rounded up: a vector must see exactly the capacity it asked for.
func slotClass(n int) int {
	if n <= 0 || n > MaxPooledSlots || n&(n-1) != 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}

const slotClasses = 16

type blockPool[T any] struct {
	pools [slotClasses]sync.Pool
}

func newBlockPool[T any]() *blockPool[T] {
	var bp blockPool[T]
	for i := range bp.pools {
		size := 1 << i
		bp.pools[i].New = func() any {
			b := make([]T, size)
			return &b
		}
	}
	return &bp
}

func (bp *blockPool[T]) get(n int) []T {
	idx := slotClass(n)
	if idx < 0 {
		return make([]T, n)
	}
	bufPtr := bp.pools[idx].Get().(*[]T)
	return (*bufPtr)[:n:n]
}

func (bp *blockPool[T]) put(block []T) {
	idx := slotClass(cap(block))
	if idx < 0 {
		return
	}
	block = block[:cap(block)]
	bp.pools[idx].Put(&block)
}

// one pool per element type
var blockPools sync.Map

func poolFor[T any]() *blockPool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := blockPools.Load(key); ok {
		return p.(*blockPool[T])
	}
	p, _ := blockPools.LoadOrStore(key, newBlockPool[T]())
	return p.(*blockPool[T])
}

type bytePool struct {
	pools [len(BufferSizeClass)]sync.Pool
}

func newBytePool() *bytePool {
	var bp bytePool
	for i, sz := range BufferSizeClass {
		size := sz
		bp.pools[i].New = func() any {
			b := make([]byte, size)
			return &b
		}
	}
	return &bp
}

var scratch = newBytePool()

// AcquireBytes returns a scratch buffer of length n.
// Callers hand it back with ReleaseBytes once they no longer reference it.
func AcquireBytes(n int) []byte {
	idx := SizeIndex(n)
	if idx < 0 {
		return make([]byte, n)
	}
	bufPtr := scratch.pools[idx].Get().(*[]byte)
	return (*bufPtr)[:n]
}

// ReleaseBytes returns the buffer to its pool if size matches a class.
func ReleaseBytes(buf []byte) {
	c := cap(buf)
	if c&(c-1) != 0 || c < 64 || c > 32768 {
		return // not a valid class
	}
	idx := bits.Len(uint(c)) - 7
	if BufferSizeClass[idx] == c {
		buf = buf[:c]
		scratch.pools[idx].Put(&buf)
	}
}
