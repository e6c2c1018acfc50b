package parallel

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunks_EvenSplit(t *testing.T) {
	chunks := Chunks(10, 2)
	assert.Equal(t, []chunk{{0, 5}, {5, 10}}, chunks)
}

func TestChunks_RemainderGoesToLastChunk(t *testing.T) {
	chunks := Chunks(10, 3)
	total := 0
	for _, c := range chunks {
		total += c.End - c.Start
	}
	assert.Equal(t, 10, total)
	assert.Len(t, chunks, 3)
}

func TestChunks_MoreJobsThanItems(t *testing.T) {
	chunks := Chunks(2, 8)
	total := 0
	for _, c := range chunks {
		total += c.End - c.Start
	}
	assert.Equal(t, 2, total)
}

func TestRun_CoversEveryIndexExactlyOnce(t *testing.T) {
	n := 97
	seen := make([]int, n)
	var mu sync.Mutex

	err := Run(n, 4, func(start, end int) error {
		for i := start; i < end; i++ {
			mu.Lock()
			seen[i]++
			mu.Unlock()
		}
		return nil
	})
	assert.NoError(t, err)
	for i, count := range seen {
		assert.Equal(t, 1, count, "index %d", i)
	}
}

func TestRun_PropagatesFirstError(t *testing.T) {
	err := Run(10, 2, func(start, end int) error {
		return fmt.Errorf("boom")
	})
	assert.Error(t, err)
}

// TestRun_MatchesNJobs1 verifies that results written per chunk do not
// depend on how many workers produced them.
func TestRun_MatchesNJobs1(t *testing.T) {
	n := 50
	source := make([]float64, n)
	for i := range source {
		source[i] = float64(i) * 1.5
	}

	single := make([]float64, n)
	err := Run(n, 1, func(start, end int) error {
		for i := start; i < end; i++ {
			single[i] = source[i] * 2
		}
		return nil
	})
	assert.NoError(t, err)

	parallel8 := make([]float64, n)
	err = Run(n, 8, func(start, end int) error {
		for i := start; i < end; i++ {
			parallel8[i] = source[i] * 2
		}
		return nil
	})
	assert.NoError(t, err)

	assert.Equal(t, single, parallel8)
}
