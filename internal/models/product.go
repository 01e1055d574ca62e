package models

// Sentinel values used by the storefront filter controls. A query carrying
// one of these is treated the same as a query without the constraint.
const (
	AllCategories = "All Categories"
	AllBrands     = "All Brands"
)

// Product represents a single catalog entry. The collection is loaded once
// at startup and never mutated afterwards.
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          float64           `json:"price"`
	OriginalPrice  *float64          `json:"originalPrice,omitempty"`
	Category       string            `json:"category"`
	Brand          string            `json:"brand"`
	Images         []string          `json:"images"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"reviewCount"`
	InStock        bool              `json:"inStock"`
	Features       []string          `json:"features"`
	Specifications map[string]string `json:"specifications"`
	Tags           []string          `json:"tags"`
}
