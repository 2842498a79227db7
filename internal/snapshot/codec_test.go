package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
)

func TestEncodeCart_WritesCurrentVersion(t *testing.T) {
	data, err := EncodeCart([]domain.CartLine{
		{ID: 1, Product: &domain.Product{ID: 10, Price: 500}, Quantity: 2},
	})
	require.NoError(t, err)

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &env))
	assert.JSONEq(t, "2", string(env["version"]))
}

func TestDecodeCart_RoundTrip(t *testing.T) {
	in := []domain.CartLine{
		{ID: 1, Product: &domain.Product{ID: 10, SKU: "KRT-010", Price: 1299}, Quantity: 2, Size: "M"},
	}
	data, err := EncodeCart(in)
	require.NoError(t, err)

	out, err := DecodeCart(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeCart_LegacyShapeDiscarded(t *testing.T) {
	// The pre-snapshot persisted shape: lines with ids but no product.
	raw := []byte(`{"items":[{"id":1,"quantity":2}]}`)

	_, err := DecodeCart(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeCart_CurrentVersionWithoutProductDiscarded(t *testing.T) {
	// A version tag buys no trust: a snapshot claiming the current version
	// still has to carry a product on every line.
	raw := []byte(`{"version":2,"items":[{"id":1,"quantity":2}]}`)

	_, err := DecodeCart(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeWishlist_CurrentVersionWithoutProductDiscarded(t *testing.T) {
	raw := []byte(`{"version":2,"items":[{"id":1}]}`)

	_, err := DecodeWishlist(raw)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeCart_MixedLegacyDiscardsEverything(t *testing.T) {
	// One good line does not save a snapshot containing a legacy line:
	// discard is all-or-nothing, never a partial repair.
	raw := []byte(`{"version":1,"items":[
		{"id":1,"product":{"id":10,"price":500},"quantity":1},
		{"id":2,"quantity":3}
	]}`)

	_, err := DecodeCart(raw)

	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeCart_V1Upgrades(t *testing.T) {
	raw := []byte(`{"version":1,"items":[{"id":1,"product":{"id":10,"price":500},"quantity":1}]}`)

	lines, err := DecodeCart(raw)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(10), lines[0].Product.ID)
}

func TestDecodeCart_FutureVersionDiscarded(t *testing.T) {
	raw := []byte(`{"version":9,"items":[]}`)

	_, err := DecodeCart(raw)

	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeCart_MalformedDiscarded(t *testing.T) {
	_, err := DecodeCart([]byte(`{"items": not-json`))

	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeCart_EmptySnapshot(t *testing.T) {
	data, err := EncodeCart(nil)
	require.NoError(t, err)

	lines, err := DecodeCart(data)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)
}

func TestDecodeWishlist_LegacyShapeDiscarded(t *testing.T) {
	raw := []byte(`{"items":[{"id":4}]}`)

	_, err := DecodeWishlist(raw)

	assert.ErrorIs(t, err, ErrSnapshotDiscarded)
}

func TestDecodeWishlist_RoundTrip(t *testing.T) {
	in := []domain.WishlistLine{{ID: 3, Product: &domain.Product{ID: 21, Title: "Silk Dupatta"}}}
	data, err := EncodeWishlist(in)
	require.NoError(t, err)

	out, err := DecodeWishlist(data)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
