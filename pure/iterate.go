package pure

// Each calls cb with every element of elements and its index, in order.
func Each[T any](elements []T, cb func(T, int)) {
	for i, e := range elements {
		cb(e, i)
	}
}

// Map returns a new slice holding cb applied to each element, in order.
func Map[T, R any](elements []T, cb func(T) R) []R {
	mapped := make([]R, len(elements))
	for i, e := range elements {
		mapped[i] = cb(e)
	}
	return mapped
}
