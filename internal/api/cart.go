package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	"github.com/SkDevilS/E-Commerce-Web-Application/pkg/validator"
)

// AddCartItemRequest holds the parameters for adding a product to the cart.
type AddCartItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  int    `json:"quantity" validate:"required,gte=1"`
	Size      string `json:"size,omitempty"`
	Color     string `json:"color,omitempty"`
}

type cartListResponse struct {
	Items []domain.CartLine `json:"items"`
}

type cartItemResponse struct {
	Item *domain.CartLine `json:"item"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ListCart fetches the authenticated user's cart lines, each with its
// resolved product snapshot.
func (c *Client) ListCart(ctx context.Context) ([]domain.CartLine, error) {
	resp, err := c.do(ctx, http.MethodGet, "/cart", nil)
	if err != nil {
		return nil, err
	}

	var out cartListResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	if out.Items == nil {
		out.Items = []domain.CartLine{}
	}
	return out.Items, nil
}

// AddCartItem adds a product+variant combination to the server-side cart and
// returns the created or updated line.
func (c *Client) AddCartItem(ctx context.Context, req AddCartItemRequest) (*domain.CartLine, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/cart", req)
	if err != nil {
		return nil, err
	}

	var out cartItemResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// UpdateCartItem sets the quantity of an existing cart line and returns the
// updated line when the server includes it in the response.
func (c *Client) UpdateCartItem(ctx context.Context, lineID int64, quantity int) (*domain.CartLine, error) {
	resp, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", lineID), updateQuantityRequest{Quantity: quantity})
	if err != nil {
		return nil, err
	}

	var out cartItemResponse
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

// RemoveCartItem deletes a cart line on the server.
func (c *Client) RemoveCartItem(ctx context.Context, lineID int64) error {
	resp, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", lineID), nil)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, nil)
}

// ClearCart deletes every cart line for the authenticated user.
func (c *Client) ClearCart(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodDelete, "/cart/clear", nil)
	if err != nil {
		return err
	}
	return c.decodeJSON(resp, nil)
}
