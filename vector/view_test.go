package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewCoversLiveRangeOnly(t *testing.T) {
	v := WithCapacity[int](8)
	v.Push(1)
	v.Push(2)

	w := v.View()
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, 2, w.At(1))
	assert.PanicsWithError(t, "index out of bounds: 2 >= 2", func() { w.At(2) })

	s := v.AsSlice()
	assert.Equal(t, []int{1, 2}, s)
	assert.Equal(t, 2, cap(s))
}

func TestAsSliceAppendDoesNotTouchTail(t *testing.T) {
	v := WithCapacity[int](8)
	v.Push(1)

	s := append(v.AsSlice(), 99)
	assert.Equal(t, []int{1, 99}, s)
	assert.Equal(t, 1, v.Len())
	assert.Zero(t, v.data[1])
}

func TestEmptyView(t *testing.T) {
	v := New[int]()
	assert.Equal(t, 0, v.View().Len())
	assert.Empty(t, v.AsSlice())
}

func TestMutView(t *testing.T) {
	v := Of(3, 1, 2)
	w := v.MutView()
	w.Swap(0, 1)
	w.Set(2, 30)
	*w.Ptr(1) += 10

	assert.Equal(t, []int{1, 13, 30}, contents(v))
	assert.PanicsWithError(t, "index out of bounds: 3 >= 3", func() { w.Set(3, 0) })
	assert.PanicsWithError(t, "index out of bounds: -1 < 0", func() { w.Swap(-1, 0) })
}

func TestMutViewDoesNotDrop(t *testing.T) {
	tr := newTracker()
	v := resources(tr, 2)
	v.MutView().Set(0, &resource{id: 5, t: tr})
	assert.Zero(t, tr.total())
}

func TestBorrowingIterators(t *testing.T) {
	v := Of("x", "y", "z")

	var idx []int
	var vals []string
	for i, s := range v.All() {
		idx = append(idx, i)
		vals = append(vals, s)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"x", "y", "z"}, vals)

	n := 0
	for range v.View().Values() {
		n++
	}
	assert.Equal(t, 3, n)
	require.Equal(t, 3, v.Len(), "borrowing iteration leaves the vector intact")
}
