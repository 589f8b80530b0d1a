package index

import "sync"

// Guarded is an Index safe for concurrent use.
// The zero value is an empty index ready to use. A Guarded must not be
// copied after first use.
type Guarded[V any] struct {
	mu    sync.RWMutex
	inner Index[V]
}

// NewGuarded returns an empty concurrency-safe index.
func NewGuarded[V any]() *Guarded[V] {
	return &Guarded[V]{}
}

// Find returns the value stored under key.
func (g *Guarded[V]) Find(key string) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Find(key)
}

// FindAll returns a snapshot of every stored value in unspecified order.
func (g *Guarded[V]) FindAll() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.FindAll()
}

// Update stores value under key and returns the replaced value, if any.
func (g *Guarded[V]) Update(key string, value V) (V, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.inner.Update(key, value)
}

// Remove deletes the entry for key, if present.
func (g *Guarded[V]) Remove(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.inner.Remove(key)
}

// RemoveAll deletes every entry.
func (g *Guarded[V]) RemoveAll() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.inner.RemoveAll()
}

// Len returns the number of stored entries.
func (g *Guarded[V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inner.Len()
}
