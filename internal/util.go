package internal

// Unwind follows parent links from leaf until parent returns the zero value
// and returns the chain ordered root first.
func Unwind[T comparable](leaf T, parent func(T) T) []T {
	var zero T
	chain := make([]T, 0, 8)
	for current := leaf; current != zero; current = parent(current) {
		chain = append(chain, current)
	}
	Reverse(chain)
	return chain
}

// Reverse reverses items in place.
func Reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
