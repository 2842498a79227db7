package domain

// CartLine is one row of cart state: a product snapshot plus quantity and the
// chosen variant. Two lines never share the same (product, size, color) tuple;
// adding the same combination again merges into the existing line.
//
// Product is a pointer on purpose: a nil product marks the legacy persisted
// shape that predates product snapshots and must be discarded on load.
type CartLine struct {
	ID       int64    `json:"id"`
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
	Size     string   `json:"size,omitempty"`
	Color    string   `json:"color,omitempty"`
}

// MatchesVariant reports whether the line holds the given product and variant
// selection, i.e. whether an add for that combination should merge into it.
func (l *CartLine) MatchesVariant(productID int64, size, color string) bool {
	return l.Product != nil && l.Product.ID == productID && l.Size == size && l.Color == color
}

// FindCartLine returns the index of the line matching the given product and
// variant selection, or -1.
func FindCartLine(lines []CartLine, productID int64, size, color string) int {
	for i := range lines {
		if lines[i].MatchesVariant(productID, size, color) {
			return i
		}
	}
	return -1
}

// FindCartLineByID returns the index of the line with the given id, or -1.
func FindCartLineByID(lines []CartLine, id int64) int {
	for i := range lines {
		if lines[i].ID == id {
			return i
		}
	}
	return -1
}

// CartSubtotal computes the total price of the given lines in minor units.
// It is recomputed on every call; cart sizes are small and a stale cached
// total is a worse bug than the recomputation cost.
func CartSubtotal(lines []CartLine) int64 {
	var total int64
	for i := range lines {
		if lines[i].Product == nil {
			continue
		}
		total += lines[i].Product.UnitPrice() * int64(lines[i].Quantity)
	}
	return total
}

// CartItemCount returns the sum of quantities across lines. A quantity-3 line
// counts as 3, not 1.
func CartItemCount(lines []CartLine) int {
	var count int
	for i := range lines {
		count += lines[i].Quantity
	}
	return count
}
