package snapshot

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

func testGuard() *Guard {
	return NewGuard(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError})))
}

func TestGuard_EmptySlot(t *testing.T) {
	guard := testGuard()
	slot := NewMemorySlot("cart")

	lines := guard.HydrateCart(context.Background(), slot)

	assert.Empty(t, lines)
}

func TestGuard_LegacySnapshotClearedNotRepaired(t *testing.T) {
	guard := testGuard()
	slot := NewMemorySlot("cart")
	ctx := context.Background()

	require.NoError(t, slot.Write(ctx, []byte(`{"items":[{"id":1,"quantity":2}]}`)))

	lines := guard.HydrateCart(ctx, slot)

	assert.Empty(t, lines)

	// The slot itself must be cleared so no later reader sees the legacy shape.
	_, err := slot.Read(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGuard_CurrentVersionWithoutProductCleared(t *testing.T) {
	guard := testGuard()
	slot := NewMemorySlot("cart")
	ctx := context.Background()

	// Legacy shape hiding behind a current version tag.
	require.NoError(t, slot.Write(ctx, []byte(`{"version":2,"items":[{"id":1,"quantity":2}]}`)))

	lines := guard.HydrateCart(ctx, slot)

	assert.Empty(t, lines)
	_, err := slot.Read(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGuard_ValidSnapshotHydratesAndRewrites(t *testing.T) {
	guard := testGuard()
	slot := NewMemorySlot("cart")
	ctx := context.Background()

	// A structurally valid v1 snapshot upgrades in place.
	require.NoError(t, slot.Write(ctx, []byte(`{"version":1,"items":[{"id":1,"product":{"id":10,"price":500},"quantity":2}]}`)))

	lines := guard.HydrateCart(ctx, slot)

	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Quantity)

	// The slot is rewritten at the current version.
	raw, err := slot.Read(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"version":2`)
}

func TestGuard_MalformedSnapshotCleared(t *testing.T) {
	guard := testGuard()
	slot := NewMemorySlot("wishlist")
	ctx := context.Background()

	require.NoError(t, slot.Write(ctx, []byte(`not json at all`)))

	lines := guard.HydrateWishlist(ctx, slot)

	assert.Empty(t, lines)
	_, err := slot.Read(ctx)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGuard_WishlistLegacyCleared(t *testing.T) {
	guard := testGuard()
	slot := NewMemorySlot("wishlist")
	ctx := context.Background()

	require.NoError(t, slot.Write(ctx, []byte(`{"items":[{"id":4}]}`)))

	lines := guard.HydrateWishlist(ctx, slot)

	assert.Empty(t, lines)
}

func TestPersister_WritesOnChange(t *testing.T) {
	slot := NewMemorySlot("cart")
	persist := NewCartPersister(slot, slog.New(slog.NewTextHandler(os.Stdout, nil)))
	ctx := context.Background()

	persist(ctx, []domain.CartLine{
		{ID: 1, Product: &domain.Product{ID: 10, Price: 500}, Quantity: 1},
	})

	raw, err := slot.Read(ctx)
	require.NoError(t, err)

	lines, err := DecodeCart(raw)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(10), lines[0].Product.ID)
}
