package lru

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSyncedRejectsNonPositiveCapacity(t *testing.T) {
	_, err := NewSynced[string, int](0)
	require.ErrorIs(t, err, ErrInvalidCapacity)
}

func TestSyncedBasicOps(t *testing.T) {
	s, err := NewSynced[string, int](2)
	require.NoError(t, err)

	s.Put("a", 1)
	s.Put("b", 2)
	s.Put("c", 3) // evicts a

	require.False(t, s.Contains("a"))
	v, ok := s.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 2, s.Len())
	require.False(t, s.IsEmpty())
	require.Equal(t, 2, s.Capacity())
	require.True(t, s.Remove("b"))
	require.Equal(t, []string{"c"}, s.Keys())

	s.Purge()
	require.True(t, s.IsEmpty())
}

func TestSyncedConcurrentAccess(t *testing.T) {
	const (
		capacity   = 64
		goroutines = 8
		opsPerG    = 2000
	)

	s, err := NewSynced[int, int](capacity)
	require.NoError(t, err)

	var g errgroup.Group
	for w := 0; w < goroutines; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < opsPerG; i++ {
				k := (w*opsPerG + i) % 200
				switch i % 3 {
				case 0:
					s.Put(k, i)
				case 1:
					s.Get(k)
				case 2:
					s.Peek(k)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	require.LessOrEqual(t, s.Len(), capacity)
	checkInvariants(t, s.cache)
}
