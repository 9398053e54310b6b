package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"intervo/internal/domain"
)

func TestMessageIDAllocator_IDsAreStrictlyIncreasing(t *testing.T) {
	allocator := NewMessageIDAllocator()

	prev := allocator.Next()
	for i := 0; i < 100; i++ {
		next := allocator.Next()
		assert.Greater(t, next, prev)
		prev = next
	}
}

func TestMessageIDAllocator_ConcurrentCallsYieldUniqueIDs(t *testing.T) {
	allocator := NewMessageIDAllocator()

	const goroutines = 8
	const perGoroutine = 200

	var wg sync.WaitGroup
	results := make([][]domain.MessageID, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids := make([]domain.MessageID, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids = append(ids, allocator.Next())
			}
			results[g] = ids
		}(g)
	}
	wg.Wait()

	seen := make(map[domain.MessageID]bool, goroutines*perGoroutine)
	for _, ids := range results {
		for _, id := range ids {
			assert.False(t, seen[id], "id %d handed out twice", id)
			seen[id] = true
		}
	}
	assert.Len(t, seen, goroutines*perGoroutine)
}
