package vector

import (
	"github.com/quickwritereader/growbuf/storage"
)

// NextCapacity returns the capacity a full vector grows to.
func NextCapacity(c int) int {
	if c == 0 {
		return 1
	}
	return c * 2
}

func (v *Vector[T]) growIfFull() {
	if v.length == len(v.data) {
		v.resizeTo(NextCapacity(len(v.data)))
	}
}

// Reserve grows the vector, following the doubling schedule, until it can
// take additional more elements without reallocating.
func (v *Vector[T]) Reserve(additional int) {
	v.mustLive()
	need := v.length + additional
	c := len(v.data)
	for c < need {
		c = NextCapacity(c)
	}
	if c != len(v.data) {
		v.resizeTo(c)
	}
}

// resizeTo moves the storage to exactly n slots. It is the single path for
// growing and shrinking; n must be >= length.
func (v *Vector[T]) resizeTo(n int) {
	from := len(v.data)
	v.data = storage.Reallocate(v.data, n)
	if v.opts.onResize != nil {
		v.opts.onResize(from, n)
	}
	if l := v.opts.logger; l != nil {
		l.Debug("vector resized", "from", from, "to", n, "len", v.length)
	}
}
