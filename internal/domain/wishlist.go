package domain

// WishlistLine is one row of wishlist state. Identity is the product id
// alone; a product appears at most once. As with CartLine, a nil product
// marks the legacy persisted shape.
type WishlistLine struct {
	ID      int64    `json:"id"`
	Product *Product `json:"product"`
}

// FindWishlistLine returns the index of the line holding the given product,
// or -1.
func FindWishlistLine(lines []WishlistLine, productID int64) int {
	for i := range lines {
		if lines[i].Product != nil && lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// WishlistContains reports whether the given product is present.
func WishlistContains(lines []WishlistLine, productID int64) bool {
	return FindWishlistLine(lines, productID) >= 0
}
