package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
)

// CatalogFilter narrows a product listing. Category is a section slug;
// Search matches against product titles. Zero values apply no filter.
type CatalogFilter struct {
	Category string
	Search   string
}

// ListProducts fetches active catalog products, optionally filtered. The
// catalog endpoints are public; no token is required.
func (c *Client) ListProducts(ctx context.Context, filter CatalogFilter) ([]domain.Product, error) {
	path := "/products"
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	resp, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	// The catalog returns a bare JSON array, not an envelope.
	var out []domain.Product
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Product{}
	}
	return out, nil
}

// GetProduct fetches a single active product by id.
func (c *Client) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil)
	if err != nil {
		return nil, err
	}

	var out domain.Product
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProductBySlug fetches a single active product by its URL slug.
func (c *Client) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	resp, err := c.do(ctx, http.MethodGet, "/products/slug/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}

	var out domain.Product
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSections fetches active storefront sections in display order.
func (c *Client) ListSections(ctx context.Context) ([]domain.Section, error) {
	resp, err := c.do(ctx, http.MethodGet, "/products/sections", nil)
	if err != nil {
		return nil, err
	}

	var out []domain.Section
	if err := c.decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Section{}
	}
	return out, nil
}
