package domain

// Section is a storefront category. Products hang off a section; the catalog
// exposes sections for browsing and category filtering by slug.
type Section struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
	ProductCount int    `json:"product_count"`
}
