package vector

// Dropper is implemented by elements that hold a resource to release when
// the vector discards them.
type Dropper interface {
	Drop()
}

// Cloner is implemented by elements that need more than a value copy when
// a vector is cloned.
type Cloner[T any] interface {
	Clone() T
}

func drop[T any](x T) {
	if d, ok := any(x).(Dropper); ok {
		d.Drop()
	}
}

// dropAll drops slots in order and zeroes them.
func dropAll[T any](slots []T) {
	for i := range slots {
		drop(slots[i])
	}
	clear(slots)
}

func cloneValue[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}
