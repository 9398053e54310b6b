package services

import (
	"sync/atomic"

	"intervo/internal/domain"
)

// MessageIDAllocator hands out message ids for UI rendering identity.
// Ids are strictly increasing and unique for the lifetime of the allocator;
// nothing else is guaranteed (they are not persisted and not contiguous
// across restarts).
type MessageIDAllocator struct {
	counter atomic.Int64
}

// NewMessageIDAllocator creates an allocator starting at zero
func NewMessageIDAllocator() *MessageIDAllocator {
	return &MessageIDAllocator{}
}

// Next returns an id distinct from all previously returned ids
func (a *MessageIDAllocator) Next() domain.MessageID {
	return domain.MessageID(a.counter.Add(1))
}
