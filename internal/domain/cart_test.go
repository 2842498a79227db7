package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Product.UnitPrice Tests
// ============================================================================

func TestUnitPrice_OnSale(t *testing.T) {
	p := &Product{Price: 500, OriginalPrice: 900, IsOnSale: true}
	assert.Equal(t, int64(500), p.UnitPrice())
}

func TestUnitPrice_NotOnSale_OriginalPresent(t *testing.T) {
	p := &Product{Price: 500, OriginalPrice: 450, IsOnSale: false}
	assert.Equal(t, int64(450), p.UnitPrice())
}

func TestUnitPrice_NotOnSale_NoOriginal(t *testing.T) {
	p := &Product{Price: 500, IsOnSale: false}
	assert.Equal(t, int64(500), p.UnitPrice())
}

// ============================================================================
// CartSubtotal Tests
// ============================================================================

func TestCartSubtotal_PricePrecedence(t *testing.T) {
	// Sale flag off with original price present: original price wins.
	lines := []CartLine{
		{Product: &Product{Price: 500, OriginalPrice: 450, IsOnSale: false}, Quantity: 3},
	}
	assert.Equal(t, int64(1350), CartSubtotal(lines))
}

func TestCartSubtotal_MultipleLines(t *testing.T) {
	lines := []CartLine{
		{Product: &Product{Price: 1000, IsOnSale: true}, Quantity: 2},
		{Product: &Product{Price: 500, IsOnSale: true}, Quantity: 3},
	}
	// 2000 + 1500 = 3500
	assert.Equal(t, int64(3500), CartSubtotal(lines))
}

func TestCartSubtotal_Empty(t *testing.T) {
	assert.Equal(t, int64(0), CartSubtotal(nil))
	assert.Equal(t, int64(0), CartSubtotal([]CartLine{}))
}

func TestCartSubtotal_NilProductSkipped(t *testing.T) {
	lines := []CartLine{
		{ID: 1, Quantity: 2},
		{Product: &Product{Price: 100, IsOnSale: true}, Quantity: 1},
	}
	assert.Equal(t, int64(100), CartSubtotal(lines))
}

// ============================================================================
// CartItemCount Tests
// ============================================================================

func TestCartItemCount(t *testing.T) {
	lines := []CartLine{
		{Quantity: 2},
		{Quantity: 3},
		{Quantity: 1},
	}
	assert.Equal(t, 6, CartItemCount(lines))
}

func TestCartItemCount_Empty(t *testing.T) {
	assert.Equal(t, 0, CartItemCount(nil))
}

// ============================================================================
// FindCartLine Tests
// ============================================================================

func TestFindCartLine_MatchesVariant(t *testing.T) {
	lines := []CartLine{
		{ID: 1, Product: &Product{ID: 10}, Size: "M", Color: "blue"},
		{ID: 2, Product: &Product{ID: 10}, Size: "L", Color: "blue"},
	}

	assert.Equal(t, 0, FindCartLine(lines, 10, "M", "blue"))
	assert.Equal(t, 1, FindCartLine(lines, 10, "L", "blue"))
	assert.Equal(t, -1, FindCartLine(lines, 10, "L", "red"))
	assert.Equal(t, -1, FindCartLine(lines, 99, "M", "blue"))
}

func TestFindCartLineByID(t *testing.T) {
	lines := []CartLine{{ID: 5}, {ID: 7}}

	assert.Equal(t, 1, FindCartLineByID(lines, 7))
	assert.Equal(t, -1, FindCartLineByID(lines, 8))
}
