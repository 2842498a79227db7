package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindWishlistLine(t *testing.T) {
	lines := []WishlistLine{
		{ID: 1, Product: &Product{ID: 10}},
		{ID: 2, Product: &Product{ID: 20}},
	}

	assert.Equal(t, 0, FindWishlistLine(lines, 10))
	assert.Equal(t, 1, FindWishlistLine(lines, 20))
	assert.Equal(t, -1, FindWishlistLine(lines, 30))
}

func TestFindWishlistLine_NilProduct(t *testing.T) {
	lines := []WishlistLine{{ID: 1}}
	assert.Equal(t, -1, FindWishlistLine(lines, 0))
}

func TestWishlistContains(t *testing.T) {
	lines := []WishlistLine{{ID: 1, Product: &Product{ID: 10}}}

	assert.True(t, WishlistContains(lines, 10))
	assert.False(t, WishlistContains(lines, 11))
	assert.False(t, WishlistContains(nil, 10))
}
