package snapshot

import (
	"context"
	"sync"

	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

// MemorySlot is an in-process Slot. It backs sessions running without Redis
// and the test suite. State does not survive a restart.
type MemorySlot struct {
	mu   sync.RWMutex
	name string
	data []byte
}

// NewMemorySlot creates an empty in-memory snapshot slot.
func NewMemorySlot(name string) *MemorySlot {
	return &MemorySlot{name: name}
}

// Read returns a copy of the stored bytes.
func (s *MemorySlot) Read(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, apperrors.NotFound("snapshot", s.name)
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

// Write replaces the stored bytes.
func (s *MemorySlot) Write(_ context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

// Clear empties the slot.
func (s *MemorySlot) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	return nil
}
