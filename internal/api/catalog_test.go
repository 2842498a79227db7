package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
	apperrors "github.com/SkDevilS/E-Commerce-Web-Application/pkg/errors"
)

func sampleProduct() domain.Product {
	return domain.Product{
		ID:       10,
		SKU:      "KRT-010",
		Title:    "Block Print Kurta",
		Slug:     "block-print-kurta",
		Price:    1299,
		Stock:    4,
		IsActive: true,
	}
}

func TestListProducts_Filters(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/api/products", func(w http.ResponseWriter, req *http.Request) {
			assert.Equal(t, "women", req.URL.Query().Get("category"))
			assert.Equal(t, "kurta", req.URL.Query().Get("search"))
			writeJSON(w, http.StatusOK, []domain.Product{sampleProduct()})
		})
	})

	products, err := client.ListProducts(context.Background(), CatalogFilter{
		Category: "women",
		Search:   "kurta",
	})

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "block-print-kurta", products[0].Slug)
}

func TestListProducts_EmptyCatalog(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/api/products", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, []domain.Product{})
		})
	})

	products, err := client.ListProducts(context.Background(), CatalogFilter{})

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestGetProduct_Success(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/api/products/10", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, sampleProduct())
		})
	})

	product, err := client.GetProduct(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "Block Print Kurta", product.Title)
	assert.Equal(t, int64(1299), product.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/api/products/99", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "Product not found"})
		})
	})

	_, err := client.GetProduct(context.Background(), 99)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Product not found", apperrors.Message(err))
}

func TestGetProductBySlug_Success(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/api/products/slug/block-print-kurta", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, sampleProduct())
		})
	})

	product, err := client.GetProductBySlug(context.Background(), "block-print-kurta")

	require.NoError(t, err)
	assert.Equal(t, int64(10), product.ID)
}

func TestListSections_Success(t *testing.T) {
	client := newTestClient(t, func(r chi.Router) {
		r.Get("/api/products/sections", func(w http.ResponseWriter, req *http.Request) {
			writeJSON(w, http.StatusOK, []domain.Section{
				{ID: 1, Name: "Women", Slug: "women", DisplayOrder: 1, IsActive: true, ProductCount: 12},
				{ID: 2, Name: "Kids", Slug: "kids", DisplayOrder: 2, IsActive: true, ProductCount: 4},
			})
		})
	})

	sections, err := client.ListSections(context.Background())

	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "women", sections[0].Slug)
	assert.Equal(t, 12, sections[0].ProductCount)
}
