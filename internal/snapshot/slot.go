package snapshot

// A Slot is one named durable key holding a persisted snapshot. The slot is
// shared last-write-wins across concurrent sessions of the same shopper; no
// cross-session locking is attempted.

import "context"

// Slot reads and writes the raw bytes of a persisted snapshot.
// Read returns an error wrapping errors.ErrNotFound when the slot is empty.
type Slot interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
	Clear(ctx context.Context) error
}
