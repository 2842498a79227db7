package snapshot

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

// Guard hydrates store state from persisted slots. It runs once at startup,
// before any consumer can observe store state, so legacy or corrupt
// snapshots never leak past it: they are cleared, and the session starts
// with an empty store instead.
type Guard struct {
	logger *slog.Logger
}

// NewGuard creates a migration guard.
func NewGuard(logger *slog.Logger) *Guard {
	return &Guard{logger: logger}
}

// HydrateCart reads and migrates the cart slot. Discarded snapshots are
// cleared from the slot; accepted ones are rewritten at the current version
// so the next session skips the migration walk.
func (g *Guard) HydrateCart(ctx context.Context, slot Slot) []domain.CartLine {
	raw, err := g.read(ctx, slot, "cart")
	if raw == nil || err != nil {
		return nil
	}

	lines, err := DecodeCart(raw)
	if err != nil {
		g.discard(ctx, slot, "cart", err)
		return nil
	}

	if data, err := EncodeCart(lines); err == nil {
		if err := slot.Write(ctx, data); err != nil {
			g.logger.WarnContext(ctx, "failed to rewrite cart snapshot",
				slog.String("error", err.Error()),
			)
		}
	}
	return lines
}

// HydrateWishlist reads and migrates the wishlist slot.
func (g *Guard) HydrateWishlist(ctx context.Context, slot Slot) []domain.WishlistLine {
	raw, err := g.read(ctx, slot, "wishlist")
	if raw == nil || err != nil {
		return nil
	}

	lines, err := DecodeWishlist(raw)
	if err != nil {
		g.discard(ctx, slot, "wishlist", err)
		return nil
	}

	if data, err := EncodeWishlist(lines); err == nil {
		if err := slot.Write(ctx, data); err != nil {
			g.logger.WarnContext(ctx, "failed to rewrite wishlist snapshot",
				slog.String("error", err.Error()),
			)
		}
	}
	return lines
}

func (g *Guard) read(ctx context.Context, slot Slot, store string) ([]byte, error) {
	raw, err := slot.Read(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		g.logger.WarnContext(ctx, "failed to read persisted snapshot, starting empty",
			slog.String("store", store),
			slog.String("error", err.Error()),
		)
		return nil, err
	}
	return raw, nil
}

func (g *Guard) discard(ctx context.Context, slot Slot, store string, cause error) {
	g.logger.WarnContext(ctx, "discarding persisted snapshot",
		slog.String("store", store),
		slog.String("reason", cause.Error()),
	)
	if err := slot.Clear(ctx); err != nil {
		g.logger.WarnContext(ctx, "failed to clear discarded snapshot",
			slog.String("store", store),
			slog.String("error", err.Error()),
		)
	}
}
