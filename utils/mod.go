package utils

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// ArgMax returns the index of the first element with the largest key, or -1
// for an empty slice.
func ArgMax[T any, K int | float64](slice []T, key func(T) K) int {
	best := -1
	var most K
	for i, v := range slice {
		if k := key(v); best < 0 || k > most {
			best, most = i, k
		}
	}
	return best
}
