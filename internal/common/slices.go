package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// IsMultiple returns true if the slice has more than one element.
func IsMultiple[S ~[]E, E any](s S) bool {
	return len(s) > 1
}

// GroupBy buckets elements by key, keeping first-seen key order and element order.
func GroupBy[S ~[]E, E any, K comparable](s S, key func(E) K) ([]K, map[K][]E) {
	var order []K

	groups := make(map[K][]E)

	for _, e := range s {
		k := key(e)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}

		groups[k] = append(groups[k], e)
	}

	return order, groups
}
