package index

import "maps"

// Index is a string-keyed store of component values.
// The zero value is an empty index ready to use.
type Index[V any] struct {
	entries map[string]V
}

// New returns an empty index.
func New[V any]() *Index[V] {
	return &Index[V]{entries: make(map[string]V)}
}

// Find returns the value stored under key.
func (i *Index[V]) Find(key string) (V, bool) {
	v, ok := i.entries[key]
	return v, ok
}

// FindAll returns every stored value. The order is unspecified and may
// differ between calls.
func (i *Index[V]) FindAll() []V {
	out := make([]V, 0, len(i.entries))
	for v := range maps.Values(i.entries) {
		out = append(out, v)
	}

	return out
}

// Update stores value under key. If key was already present the replaced
// value is returned with true; otherwise the zero value and false.
func (i *Index[V]) Update(key string, value V) (V, bool) {
	if i.entries == nil {
		i.entries = make(map[string]V)
	}

	prev, ok := i.entries[key]
	i.entries[key] = value

	return prev, ok
}

// Remove deletes the entry for key. Removing an absent key is a no-op.
func (i *Index[V]) Remove(key string) {
	delete(i.entries, key)
}

// RemoveAll deletes every entry.
func (i *Index[V]) RemoveAll() {
	clear(i.entries)
}

// Len returns the number of stored entries.
func (i *Index[V]) Len() int {
	return len(i.entries)
}
