package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/api"
	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

// CartAPI is the remote collaborator for cart state. api.Client implements it.
type CartAPI interface {
	ListCart(ctx context.Context) ([]domain.CartLine, error)
	AddCartItem(ctx context.Context, req api.AddCartItemRequest) (*domain.CartLine, error)
	UpdateCartItem(ctx context.Context, lineID int64, quantity int) (*domain.CartLine, error)
	RemoveCartItem(ctx context.Context, lineID int64) error
	ClearCart(ctx context.Context) error
}

// CartStore holds the local, optimistic copy of the shopper's cart. Local
// state is provisional relative to the server: Fetch replaces it wholesale.
//
// Mutations call the remote collaborator first, then reconcile. Add and
// UpdateQuantity are fail-closed (a remote failure leaves local state
// untouched); Remove and Clear are fail-open (local state changes regardless,
// since a stale line the shopper believes deleted is the worse failure mode).
//
// The store is safe for concurrent use, but mutations to the same line issued
// concurrently resolve last-response-wins; see DESIGN.md.
type CartStore struct {
	client CartAPI
	logger *slog.Logger

	mu       sync.RWMutex
	items    []domain.CartLine
	loading  bool
	synced   bool
	onChange func(context.Context, []domain.CartLine)
}

// NewCartStore creates a cart store with empty state.
func NewCartStore(client CartAPI, logger *slog.Logger) *CartStore {
	return &CartStore{
		client: client,
		logger: logger,
	}
}

// SetOnChange installs the persistence hook fired after every local state
// change. Must be set before the store is shared.
func (s *CartStore) SetOnChange(fn func(context.Context, []domain.CartLine)) {
	s.onChange = fn
}

// Hydrate seeds the store from a migrated persisted snapshot. It must run
// before any consumer reads store state.
func (s *CartStore) Hydrate(lines []domain.CartLine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = lines
	storeLines.WithLabelValues("cart").Set(float64(len(lines)))
}

// Fetch replaces local state with the server's cart. On failure local items
// are left untouched and the error carries the server's message.
func (s *CartStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	lines, err := s.client.ListCart(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		observeOp("cart", "fetch", err)
		s.logger.WarnContext(ctx, "failed to fetch cart",
			slog.String("error", err.Error()),
		)
		return err
	}
	s.items = lines
	s.synced = true
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("cart", "fetch", nil)
	s.logger.InfoContext(ctx, "cart fetched",
		slog.Int("lines", len(lines)),
	)
	return nil
}

// Add puts quantity units of a product variant in the cart. Fail-closed: a
// remote failure leaves local state unchanged. Adding an already-present
// variant merges into the existing line instead of creating a second row.
// Stock checks are the caller's concern; the store does not enforce them.
func (s *CartStore) Add(ctx context.Context, product *domain.Product, quantity int, size, color string) error {
	if product == nil {
		return apperrors.InvalidInput("product is required")
	}
	if quantity < 1 {
		return apperrors.InvalidInput("quantity must be at least 1")
	}

	line, err := s.client.AddCartItem(ctx, api.AddCartItemRequest{
		ProductID: product.ID,
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	})
	if err != nil {
		observeOp("cart", "add", err)
		s.logger.WarnContext(ctx, "failed to add cart item",
			slog.Int64("product_id", product.ID),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.mu.Lock()
	if i := domain.FindCartLine(s.items, product.ID, size, color); i >= 0 {
		s.items[i].Quantity += quantity
	} else if line != nil {
		s.items = append(s.items, *line)
	} else {
		// Server acknowledged without a line body; synthesize one locally.
		// Its id stays zero until the next fetch reconciles it.
		s.items = append(s.items, domain.CartLine{
			Product:  product,
			Quantity: quantity,
			Size:     size,
			Color:    color,
		})
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("cart", "add", nil)
	s.logger.InfoContext(ctx, "item added to cart",
		slog.Int64("product_id", product.ID),
		slog.Int("quantity", quantity),
		slog.String("size", size),
		slog.String("color", color),
	)
	return nil
}

// Remove deletes a line. Fail-open: the line leaves local state regardless of
// the remote outcome, and any remote error is still returned so the caller
// can surface it.
func (s *CartStore) Remove(ctx context.Context, lineID int64) error {
	err := s.client.RemoveCartItem(ctx, lineID)

	s.mu.Lock()
	if i := domain.FindCartLineByID(s.items, lineID); i >= 0 {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("cart", "remove", err)
	if err != nil {
		s.logger.WarnContext(ctx, "remote cart removal failed, removed locally anyway",
			slog.Int64("line_id", lineID),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.logger.InfoContext(ctx, "item removed from cart",
		slog.Int64("line_id", lineID),
	)
	return nil
}

// UpdateQuantity sets a line's quantity. A quantity of zero or less removes
// the line. Fail-closed on the remote update.
func (s *CartStore) UpdateQuantity(ctx context.Context, lineID int64, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, lineID)
	}

	if _, err := s.client.UpdateCartItem(ctx, lineID, quantity); err != nil {
		observeOp("cart", "update_quantity", err)
		s.logger.WarnContext(ctx, "failed to update cart quantity",
			slog.Int64("line_id", lineID),
			slog.Int("quantity", quantity),
			slog.String("error", err.Error()),
		)
		return err
	}

	s.mu.Lock()
	if i := domain.FindCartLineByID(s.items, lineID); i >= 0 {
		s.items[i].Quantity = quantity
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("cart", "update_quantity", nil)
	s.logger.InfoContext(ctx, "cart quantity updated",
		slog.Int64("line_id", lineID),
		slog.Int("quantity", quantity),
	)
	return nil
}

// Clear empties the cart. Fail-open: local state empties regardless of the
// remote outcome — clears mostly happen around logout, when the server
// session may already be gone.
func (s *CartStore) Clear(ctx context.Context) error {
	err := s.client.ClearCart(ctx)

	s.mu.Lock()
	s.items = []domain.CartLine{}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	observeOp("cart", "clear", err)
	if err != nil {
		s.logger.WarnContext(ctx, "remote cart clear failed, cleared locally anyway",
			slog.String("error", err.Error()),
		)
		return err
	}
	s.logger.InfoContext(ctx, "cart cleared")
	return nil
}

// ClearLocal empties local state without any remote call. Used on logout and
// by the migration guard.
func (s *CartStore) ClearLocal(ctx context.Context) {
	s.mu.Lock()
	s.items = []domain.CartLine{}
	s.synced = false
	snapshot := s.copyLocked()
	s.mu.Unlock()

	s.notify(ctx, snapshot)
	s.logger.InfoContext(ctx, "cart cleared locally")
}

// Lines returns a copy of the current cart lines.
func (s *CartStore) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copyLocked()
}

// Subtotal computes the cart total in minor units, recomputed on every call.
func (s *CartStore) Subtotal() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartSubtotal(s.items)
}

// ItemCount returns the sum of quantities across lines.
func (s *CartStore) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartItemCount(s.items)
}

// Loading reports whether a fetch is in flight.
func (s *CartStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Synced reports whether the last fetch succeeded since startup or the last
// local clear.
func (s *CartStore) Synced() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.synced
}

func (s *CartStore) copyLocked() []domain.CartLine {
	out := make([]domain.CartLine, len(s.items))
	copy(out, s.items)
	return out
}

func (s *CartStore) notify(ctx context.Context, snapshot []domain.CartLine) {
	storeLines.WithLabelValues("cart").Set(float64(len(snapshot)))
	if s.onChange != nil {
		s.onChange(ctx, snapshot)
	}
}
