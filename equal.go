package xlist

// Equal reports whether a and b have the same length and equal
// elements at every index, compared from head to tail with ==. Node
// identity is never considered. A nil list is equal to an empty one.
func Equal[T comparable](a, b *LinkedList[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares elements using eq.
func EqualFunc[T, U any](a *LinkedList[T], b *LinkedList[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	x, y := a.front(), b.front()
	for x != nil {
		if !eq(x.val, y.val) {
			return false
		}
		x, y = x.next, y.next
	}
	return true
}
