package errorutils

// Must returns value if err is nil and panics otherwise.
// Only for failures that can't happen outside of a broken environment.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
