package snapshot

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SkDevilS/E-Commerce-Web-Application/internal/domain"
)

// CurrentVersion is the schema version this codec writes. History:
//
//	0 — no version field: raw line lists from before snapshots were versioned
//	1 — versioned envelope, lines may predate embedded product snapshots
//	2 — every line carries its product snapshot
const CurrentVersion = 2

// ErrSnapshotDiscarded is returned when a persisted snapshot cannot be
// trusted: malformed payload, unknown version, or the legacy shape whose
// lines lack product snapshots. The whole snapshot is dropped; a line with a
// wrong or missing product reference could sell the shopper the wrong item
// at the wrong price, so a clean cart loss is the safer failure.
var ErrSnapshotDiscarded = errors.New("persisted snapshot discarded")

// envelope is the on-disk shape of a snapshot: a version tag plus the lines.
type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

// migration upgrades items from one schema version to the next.
type migration[T any] func(items []T) ([]T, error)

func encode[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(envelope[T]{Version: CurrentVersion, Items: items})
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return data, nil
}

// decode unmarshals a snapshot, walks the migration table from the persisted
// version up to CurrentVersion, then verifies the migrated result. Any gap in
// the table, unknown future version, failing migration, or failing
// verification discards the snapshot. Verification runs regardless of the
// persisted version: a snapshot claiming the current version earns no trust
// its shape cannot back.
func decode[T any](raw []byte, migrations map[int]migration[T], verify func([]T) error) ([]T, error) {
	var env envelope[T]
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed payload: %v", ErrSnapshotDiscarded, err)
	}
	if env.Version > CurrentVersion {
		return nil, fmt.Errorf("%w: unknown version %d", ErrSnapshotDiscarded, env.Version)
	}

	items := env.Items
	for v := env.Version; v < CurrentVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return nil, fmt.Errorf("%w: no migration from version %d", ErrSnapshotDiscarded, v)
		}
		var err error
		if items, err = step(items); err != nil {
			return nil, err
		}
	}
	if err := verify(items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Versions 0 and 1 predate guaranteed product snapshots but carry the same
// fields, so their migration steps are identity; the product check after the
// walk decides trust for every version.
func identity[T any](items []T) ([]T, error) {
	return items, nil
}

var cartMigrations = map[int]migration[domain.CartLine]{
	0: identity[domain.CartLine],
	1: identity[domain.CartLine],
}

var wishlistMigrations = map[int]migration[domain.WishlistLine]{
	0: identity[domain.WishlistLine],
	1: identity[domain.WishlistLine],
}

// A line without its product snapshot is the legacy shape: it cannot price or
// merge, so the snapshot is discarded whole rather than partially repaired.
func requireCartProducts(items []domain.CartLine) error {
	for i := range items {
		if items[i].Product == nil {
			return fmt.Errorf("%w: line %d has no product snapshot", ErrSnapshotDiscarded, items[i].ID)
		}
	}
	return nil
}

func requireWishlistProducts(items []domain.WishlistLine) error {
	for i := range items {
		if items[i].Product == nil {
			return fmt.Errorf("%w: line %d has no product snapshot", ErrSnapshotDiscarded, items[i].ID)
		}
	}
	return nil
}

// EncodeCart serializes cart lines at the current schema version.
func EncodeCart(lines []domain.CartLine) ([]byte, error) {
	return encode(lines)
}

// DecodeCart deserializes a persisted cart snapshot, migrating old versions
// forward. Untrusted snapshots fail with ErrSnapshotDiscarded.
func DecodeCart(raw []byte) ([]domain.CartLine, error) {
	return decode(raw, cartMigrations, requireCartProducts)
}

// EncodeWishlist serializes wishlist lines at the current schema version.
func EncodeWishlist(lines []domain.WishlistLine) ([]byte, error) {
	return encode(lines)
}

// DecodeWishlist deserializes a persisted wishlist snapshot, migrating old
// versions forward. Untrusted snapshots fail with ErrSnapshotDiscarded.
func DecodeWishlist(raw []byte) ([]domain.WishlistLine, error) {
	return decode(raw, wishlistMigrations, requireWishlistProducts)
}
