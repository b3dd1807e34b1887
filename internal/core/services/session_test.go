package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySessionLog_RecentIsReverseChronological(t *testing.T) {
	log := NewMemorySessionLog()
	for i := 1; i <= 5; i++ {
		log.Record(fmt.Sprintf("query %d", i), fmt.Sprintf("answer %d", i), i)
	}

	recent := log.Recent(3)
	require.Len(t, recent, 3)

	assert.Equal(t, "query 5", recent[0].Query)
	assert.Equal(t, "query 4", recent[1].Query)
	assert.Equal(t, "query 3", recent[2].Query)
	assert.Equal(t, 5, recent[0].ChunksUsed)
}

func TestMemorySessionLog_RecentBounds(t *testing.T) {
	log := NewMemorySessionLog()
	log.Record("only", "one", 1)

	assert.Len(t, log.Recent(10), 1)
	assert.Empty(t, log.Recent(0))
	assert.Empty(t, log.Recent(-1))
	assert.Empty(t, NewMemorySessionLog().Recent(3))
}

func TestMemorySessionLog_RecordsHaveUniqueIDs(t *testing.T) {
	log := NewMemorySessionLog()
	log.Record("a", "x", 1)
	log.Record("b", "y", 2)

	recent := log.Recent(2)
	require.Len(t, recent, 2)
	assert.NotEmpty(t, recent[0].ID)
	assert.NotEqual(t, recent[0].ID, recent[1].ID)
	assert.False(t, recent[0].AskedAt.IsZero())
}

func TestMemorySessionLog_ConcurrentAppends(t *testing.T) {
	log := NewMemorySessionLog()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			log.Record(fmt.Sprintf("q%d", n), "a", 1)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, log.Len())
	assert.Len(t, log.Recent(20), 20)
}
