// Package stdx carries tiny generic helpers the standard library lacks.
package stdx

// Must0 panics if the provided error is not nil. Intended for call sites
// where an error is a programming mistake rather than a runtime condition.
func Must0(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 returns the value if err is nil, otherwise it panics with the error.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
