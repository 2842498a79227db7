package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

// WishlistAPI is the remote collaborator for wishlist state.
type WishlistAPI interface {
	ListWishlist(ctx context.Context) ([]domain.WishlistLine, error)
	AddWishlistItem(ctx context.Context, productID int64) (*domain.WishlistLine, error)
	RemoveWishlistItem(ctx context.Context, lineID int64) error
	RemoveWishlistProduct(ctx context.Context, productID int64) error
}

// WishlistStore mirrors the shopper's server-side wishlist. Membership is
// unique per product: adding a product already present is a no-op both
// locally and against the server, which acknowledges duplicates without
// returning a line.
type WishlistStore struct {
	client WishlistAPI
	logger *slog.Logger

	mu       sync.RWMutex
	items    []domain.WishlistLine
	loading  bool
	synced   bool
	onChange func(context.Context, []domain.WishlistLine)
}

func NewWishlistStore(client WishlistAPI, logger *slog.Logger) *WishlistStore {
	return &WishlistStore{
		client: client,
		logger: logger,
	}
}

// SetOnChange installs the persistence hook fired after every local state
// change. Must be set before the store is shared.
func (s *WishlistStore) SetOnChange(fn func(context.Context, []domain.WishlistLine)) {
	s.onChange = fn
}

// Hydrate seeds the store from a migrated persisted snapshot.
func (s *WishlistStore) Hydrate(lines []domain.WishlistLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = lines
	storeLines.WithLabelValues("wishlist").Set(float64(len(lines)))
}

// Fetch replaces local state with the server's wishlist.
func (s *WishlistStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	lines, err := s.client.ListWishlist(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		observeOp("wishlist", "fetch", err)
		s.logger.WarnContext(ctx, "failed to fetch wishlist",
			slog.String("error", err.Error()),
		)
		return err
	}
	s.items = lines
	s.synced = true
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("wishlist", "fetch", nil)
	s.logger.InfoContext(ctx, "wishlist fetched",
		slog.Int("lines", len(lines)),
	)
	return nil
}

// Add puts a product on the wishlist. Fail-closed. The remote add always
// goes out, even when the product is already present locally: local state is
// provisional, and the server dedupes on its side. Only the local append is
// skipped for a product already held.
func (s *WishlistStore) Add(ctx context.Context, product *domain.Product) error {
	if product == nil {
		return apperrors.InvalidInput("product is required")
	}

	line, err := s.client.AddWishlistItem(ctx, product.ID)
	if err != nil {
		observeOp("wishlist", "add", err)
		s.logger.WarnContext(ctx, "failed to add wishlist item",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.mu.Lock()
	// Uniqueness holds locally: a product already present merges to a no-op.
	if domain.WishlistContains(s.items, product.ID) {
		s.mu.Unlock()
		observeOp("wishlist", "add", nil)
		return nil
	}
	if line != nil {
		s.items = append(s.items, *line)
	} else {
		// Duplicate acknowledged server-side with no line body.
		s.items = append(s.items, domain.WishlistLine{Product: product})
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("wishlist", "add", nil)
	s.logger.InfoContext(ctx, "item added to wishlist",
		slog.Int64("product_id", product.ID),
	)
	return nil
}

// Remove deletes a wishlist line. Fail-open, like cart removal.
func (s *WishlistStore) Remove(ctx context.Context, lineID int64) error {
	err := s.client.RemoveWishlistItem(ctx, lineID)

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == lineID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("wishlist", "remove", err)
	if err != nil {
		s.logger.WarnContext(ctx, "remote wishlist removal failed, removed locally anyway",
			slog.Int64("line_id", lineID),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.logger.InfoContext(ctx, "item removed from wishlist",
		slog.Int64("line_id", lineID),
	)
	return nil
}

// RemoveProduct removes whichever line holds the given product, letting the
// server resolve the line id. Fail-open, like Remove.
func (s *WishlistStore) RemoveProduct(ctx context.Context, productID int64) error {
	err := s.client.RemoveWishlistProduct(ctx, productID)

	s.mu.Lock()
	if i := domain.FindWishlistLine(s.items, productID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("wishlist", "remove_product", err)
	if err != nil {
		s.logger.WarnContext(ctx, "remote wishlist removal failed, removed locally anyway",
			slog.Int64("product_id", productID),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.logger.InfoContext(ctx, "item removed from wishlist",
		slog.Int64("product_id", productID),
	)
	return nil
}

// Contains reports whether a product is on the wishlist.
func (s *WishlistStore) Contains(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.WishlistContains(s.items, productID)
}

// ClearLocal empties local state without any remote call.
func (s *WishlistStore) ClearLocal(ctx context.Context) {
	s.mu.Lock()
	s.items = []domain.WishlistLine{}
	s.synced = false
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	s.logger.InfoContext(ctx, "wishlist cleared locally")
}

// Lines returns a copy of the current wishlist lines.
func (s *WishlistStore) Lines() []domain.WishlistLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Loading reports whether a fetch is in flight.
func (s *WishlistStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Synced reports whether the last fetch succeeded since startup or the last
// local clear.
func (s *WishlistStore) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.synced
}

func (s *WishlistStore) copyLocked() []domain.WishlistLine {
	out := make([]domain.WishlistLine, len(s.items))
	copy(out, s.items)
	return out
}

func (s *WishlistStore) notify(ctx context.Context, snapshot []domain.WishlistLine) {
	storeLines.WithLabelValues("wishlist").Set(float64(len(snapshot)))
	if s.onChange != nil {
		s.onChange(ctx, snapshot)
	}
}
