package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeededSourceIsDeterministic(t *testing.T) {
	t.Parallel()

	a := New(42)
	b := New(42)
	for i := 0; i < 20; i++ {
		require.Equal(t, a.IntN(100), b.IntN(100))
		require.Equal(t, a.Float64(), b.Float64())
	}
}

func TestLockedConcurrentUse(t *testing.T) {
	t.Parallel()

	src := New(7)
	results := make(chan int, 800)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				results <- src.IntN(5)
			}
		}()
	}
	wg.Wait()
	close(results)

	for n := range results {
		require.GreaterOrEqual(t, n, 0)
		require.Less(t, n, 5)
	}
}

func TestFixedClampsToRange(t *testing.T) {
	t.Parallel()

	f := Fixed{Int: 10, Float: 0.9}
	require.Equal(t, 2, f.IntN(3))
	require.Equal(t, 0, Fixed{Int: -1}.IntN(3))
	require.Equal(t, 0.9, f.Float64())
}
