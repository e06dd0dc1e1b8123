package common

// IsEmpty reports whether the slice has no elements.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsSingle reports whether the slice holds exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}
