package domain

// Product is a snapshot of catalog data taken when a line was added. The
// catalog owns this data; cart and wishlist code treats it as read-only.
// Prices are in minor currency units.
type Product struct {
	ID            int64    `json:"id"`
	SKU           string   `json:"sku"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price"`
	IsOnSale      bool     `json:"is_on_sale"`
	Stock         int      `json:"stock"`
	Images        []string `json:"images,omitempty"`
	Sizes         []string `json:"sizes,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	IsActive      bool     `json:"is_active"`
}

// UnitPrice returns the price a single unit sells for. The sale price is only
// authoritative while the sale flag is active; otherwise the original price
// applies, falling back to the current price when no original price is set.
func (p *Product) UnitPrice() int64 {
	if p.IsOnSale {
		return p.Price
	}
	if p.OriginalPrice > 0 {
		return p.OriginalPrice
	}
	return p.Price
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
