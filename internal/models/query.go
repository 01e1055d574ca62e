package models

// SortOption enumerates the supported sort keys for product listings.
type SortOption string

const (
	SortName      SortOption = "name"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortRating    SortOption = "rating"
	SortNewest    SortOption = "newest"
)

// ParseSortOption maps a raw sort parameter to a SortOption. Unknown or
// empty values yield "" which means no sorting is applied.
func ParseSortOption(raw string) SortOption {
	switch SortOption(raw) {
	case SortName, SortPriceLow, SortPriceHigh, SortRating, SortNewest:
		return SortOption(raw)
	}
	return ""
}

// Query is the specification for a single listing request. Every field is
// optional; the zero value matches the whole catalog. It is constructed
// fresh per request at the HTTP boundary and consumed once by the query
// engine.
type Query struct {
	Category  string     // exact match; empty or AllCategories = no constraint
	Brand     string     // exact match; empty or AllBrands = no constraint
	MinPrice  *float64   // inclusive lower bound
	MaxPrice  *float64   // inclusive upper bound
	InStock   bool       // true restricts to in-stock products
	MinRating *float64   // inclusive lower bound
	Search    string     // case-insensitive substring over name/description/tags
	Sort      SortOption // "" = keep post-filter insertion order
}
