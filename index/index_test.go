package index_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"component-store/index"
)

type Color struct {
	R, G, B uint8
}

// store is the contract shared by Index and Guarded.
type store[V any] interface {
	Find(key string) (V, bool)
	FindAll() []V
	Update(key string, value V) (V, bool)
	Remove(key string)
	RemoveAll()
	Len() int
}

func implementations() map[string]func() store[Color] {
	return map[string]func() store[Color]{
		"Index":   func() store[Color] { return index.New[Color]() },
		"Guarded": func() store[Color] { return index.NewGuarded[Color]() },
		"zero Index": func() store[Color] {
			var idx index.Index[Color]
			return &idx
		},
		"zero Guarded": func() store[Color] {
			var g index.Guarded[Color]
			return &g
		},
	}
}

func TestIndex_Contract(t *testing.T) {
	t.Parallel()

	red := Color{R: 255}
	blue := Color{B: 255}

	for name, newStore := range implementations() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			t.Run("new is empty", func(t *testing.T) {
				s := newStore()
				assert.Empty(t, s.FindAll())
				assert.Equal(t, 0, s.Len())

				_, ok := s.Find("missing")
				assert.False(t, ok)
			})

			t.Run("update then find", func(t *testing.T) {
				s := newStore()

				prev, replaced := s.Update("sky", red)
				assert.False(t, replaced)
				assert.Equal(t, Color{}, prev)

				got, ok := s.Find("sky")
				require.True(t, ok)
				assert.Equal(t, red, got)
			})

			t.Run("update returns previous value", func(t *testing.T) {
				s := newStore()
				s.Update("sky", red)

				prev, replaced := s.Update("sky", blue)
				assert.True(t, replaced)
				assert.Equal(t, red, prev)

				got, ok := s.Find("sky")
				require.True(t, ok)
				assert.Equal(t, blue, got)
				assert.Equal(t, 1, s.Len())
			})

			t.Run("remove", func(t *testing.T) {
				s := newStore()
				s.Update("sky", red)

				s.Remove("sky")

				_, ok := s.Find("sky")
				assert.False(t, ok)
			})

			t.Run("remove absent key is a no-op", func(t *testing.T) {
				s := newStore()
				s.Update("sky", red)

				assert.NotPanics(t, func() { s.Remove("sea") })
				assert.Equal(t, 1, s.Len())
			})

			t.Run("remove all is idempotent", func(t *testing.T) {
				s := newStore()
				s.Update("sky", red)
				s.Update("sea", blue)

				s.RemoveAll()
				assert.Empty(t, s.FindAll())

				s.RemoveAll()
				assert.Empty(t, s.FindAll())

				// The store stays usable.
				s.Update("sky", red)
				assert.Equal(t, 1, s.Len())
			})

			t.Run("find all returns every value", func(t *testing.T) {
				s := newStore()

				const n = 50
				for i := range n {
					s.Update(fmt.Sprintf("key-%d", i), Color{R: uint8(i)})
				}

				all := s.FindAll()
				require.Len(t, all, n)

				seen := map[uint8]bool{}
				for _, c := range all {
					seen[c.R] = true
				}

				assert.Len(t, seen, n)
			})
		})
	}
}

func TestGuarded_ConcurrentUse(t *testing.T) {
	t.Parallel()

	g := index.NewGuarded[int]()

	const workers = 8
	const perWorker = 200

	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range perWorker {
				key := fmt.Sprintf("%d-%d", w, i)
				g.Update(key, i)
				_, _ = g.Find(key)
				_ = g.FindAll()

				if i%2 == 1 {
					g.Remove(key)
				}
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, workers*perWorker/2, g.Len())
}
