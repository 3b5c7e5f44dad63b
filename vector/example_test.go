package vector_test

import (
	"fmt"

	"github.com/quickwritereader/growbuf/vector"
)

func ExampleVector() {
	v := vector.New[int]()
	for i := 1; i <= 5; i++ {
		v.Push(i * 10)
	}
	fmt.Println(v, v.Len(), v.Cap())

	v.Insert(1, 15)
	fmt.Println(v.Remove(3))
	fmt.Println(v)

	v.Clear()
	v.ShrinkToFit()
	fmt.Println(v.Len(), v.Cap())

	// Output:
	// [10, 20, 30, 40, 50] 5 8
	// 30
	// [10, 15, 20, 40, 50]
	// 0 0
}

func ExampleVector_IntoIter() {
	v := vector.Of("a", "b", "c", "d")
	it := v.IntoIter()
	defer it.Close()

	for s := range it.All() {
		fmt.Println(s)
		if s == "b" {
			break
		}
	}
	fmt.Println(it.Remaining())

	// Output:
	// a
	// b
	// 0
}

func ExampleRepeat() {
	fmt.Println(vector.Repeat("go", 3))
	// Output: [go, go, go]
}
