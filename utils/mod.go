package utils

// FindIndex returns the index of the first element matching the predicate, or -1.
func FindIndex[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}
