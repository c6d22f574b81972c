package pipeline

// MapSlice applies f to every element of source and returns the results.
func MapSlice[T, R any](source []T, f func(T) R) []R {
	return Map(From(source), f).Force()
}

// FlatMapSlice applies f to every element of source and concatenates the results.
func FlatMapSlice[T, R any](source []T, f func(T) []R) []R {
	return FlatMap(FromFlat(source), f).Force()
}
