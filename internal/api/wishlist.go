package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
)

type wishlistListResponse struct {
	Items []domain.WishlistLine `json:"items"`
}

type wishlistItemResponse struct {
	Item *domain.WishlistLine `json:"item"`
}

type addWishlistRequest struct {
	ProductID int64 `json:"product_id"`
}

// ListWishlist fetches the authenticated user's wishlist lines.
func (c *Client) ListWishlist(ctx context.Context) ([]domain.WishlistLine, error) {
	resp, err := c.do(ctx, http.MethodGet, "/wishlist", nil)
	if err != nil {
		return nil, err
	}

	var out wishlistListResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []domain.WishlistLine{}
	}
	return out.Items, nil
}

// AddWishlistItem adds a product to the server-side wishlist. When the
// product is already present the server acknowledges without a line; the
// returned line is nil in that case.
func (c *Client) AddWishlistItem(ctx context.Context, productID int64) (*domain.WishlistLine, error) {
	resp, err := c.do(ctx, http.MethodPost, "/wishlist", addWishlistRequest{ProductID: productID})
	if err != nil {
		return nil, err
	}

	var out wishlistItemResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// RemoveWishlistItem deletes a wishlist line on the server.
func (c *Client) RemoveWishlistItem(ctx context.Context, lineID int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/%d", lineID), nil)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, nil)
}

// RemoveWishlistProduct deletes whichever wishlist line holds the given
// product. The server resolves the line, so callers do not need the line id.
func (c *Client) RemoveWishlistProduct(ctx context.Context, productID int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/wishlist/product/%d", productID), nil)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, nil)
}
