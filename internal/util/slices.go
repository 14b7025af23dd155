package util

// FindFirst returns the first element of s for which predicate returns true.
// If no element matches, it returns the zero value and false.
func FindFirst[T any](s []T, predicate func(T) bool) (T, bool) {
	for _, v := range s {
		if predicate(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}
