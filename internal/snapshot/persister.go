package snapshot

import (
	"context"
	"log/slog"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
)

// Persisters are the stores' on-change hooks: every local state change is
// serialized and written to the slot. The write is best-effort relative to
// the in-memory state — failures are logged, never surfaced to the mutation
// caller, and the next state change retries naturally.

// NewCartPersister returns an on-change hook writing cart snapshots to slot.
func NewCartPersister(slot Slot, logger *slog.Logger) func(context.Context, []domain.CartLine) {
	return func(ctx context.Context, lines []domain.CartLine) {
		data, err := EncodeCart(lines)
		if err != nil {
			logger.ErrorContext(ctx, "failed to encode cart snapshot", slog.String("error", err.Error()))
			return
		}
		if err := slot.Write(ctx, data); err != nil {
			logger.WarnContext(ctx, "failed to persist cart snapshot", slog.String("error", err.Error()))
		}
	}
}

// NewWishlistPersister returns an on-change hook writing wishlist snapshots
// to slot.
func NewWishlistPersister(slot Slot, logger *slog.Logger) func(context.Context, []domain.WishlistLine) {
	return func(ctx context.Context, lines []domain.WishlistLine) {
		data, err := EncodeWishlist(lines)
		if err != nil {
			logger.ErrorContext(ctx, "failed to encode wishlist snapshot", slog.String("error", err.Error()))
			return
		}
		if err := slot.Write(ctx, data); err != nil {
			logger.WarnContext(ctx, "failed to persist wishlist snapshot", slog.String("error", err.Error()))
		}
	}
}
