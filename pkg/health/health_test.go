package health

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_AllUp(t *testing.T) {
	r := NewRegistry(time.Second)
	r.Register("api", func(ctx context.Context) error { return nil })
	r.Register("snapshots", func(ctx context.Context) error { return nil })

	report := r.Run(context.Background())

	assert.Equal(t, StatusUp, report.Status)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, StatusUp, report.Checks["api"].Status)
	assert.Empty(t, report.Checks["api"].Error)
}

func TestRegistry_OneDown(t *testing.T) {
	r := NewRegistry(time.Second)
	r.Register("api", func(ctx context.Context) error { return nil })
	r.Register("snapshots", func(ctx context.Context) error {
		return errors.New("connection refused")
	})

	report := r.Run(context.Background())

	assert.Equal(t, StatusDown, report.Status)
	assert.Equal(t, StatusUp, report.Checks["api"].Status)
	assert.Equal(t, StatusDown, report.Checks["snapshots"].Status)
	assert.Equal(t, "connection refused", report.Checks["snapshots"].Error)
}

func TestRegistry_TimeoutPropagates(t *testing.T) {
	r := NewRegistry(10 * time.Millisecond)
	r.Register("slow", func(ctx context.Context) error {
		select {
		case <-time.After(time.Second):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	report := r.Run(context.Background())

	assert.Equal(t, StatusDown, report.Status)
	assert.Contains(t, report.Checks["slow"].Error, "context deadline exceeded")
}

func TestRegistry_Empty(t *testing.T) {
	r := NewRegistry(time.Second)
	report := r.Run(context.Background())
	assert.Equal(t, StatusUp, report.Status)
	assert.Empty(t, report.Checks)
}
