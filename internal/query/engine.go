// Package query implements the product listing engine: a pure projection of
// the catalog through a filter/sort/search specification.
package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/luxestore/luxe_api/internal/models"
)

// Execute filters and orders products according to q and returns the result
// with its count. The input slice is never mutated and the call is stateless,
// so concurrent invocations need no coordination. A specification that
// matches nothing yields an empty list and count 0.
func Execute(products []models.Product, q models.Query) ([]models.Product, int) {
	searchLower := strings.ToLower(q.Search)

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matches(p, q, searchLower) {
			result = append(result, p)
		}
	}

	sortProducts(result, q.Sort)
	return result, len(result)
}

// matches reports whether p satisfies every active constraint in q.
// All numeric bounds are inclusive.
func matches(p models.Product, q models.Query, searchLower string) bool {
	if q.Category != "" && q.Category != models.AllCategories && p.Category != q.Category {
		return false
	}
	if q.Brand != "" && q.Brand != models.AllBrands && p.Brand != q.Brand {
		return false
	}
	if q.MinPrice != nil && p.Price < *q.MinPrice {
		return false
	}
	if q.MaxPrice != nil && p.Price > *q.MaxPrice {
		return false
	}
	if q.InStock && !p.InStock {
		return false
	}
	if q.MinRating != nil && p.Rating < *q.MinRating {
		return false
	}
	if searchLower != "" && !matchesSearch(p, searchLower) {
		return false
	}
	return true
}

// matchesSearch does a case-folded substring match against the product name,
// description, and tags.
func matchesSearch(p models.Product, searchLower string) bool {
	if strings.Contains(strings.ToLower(p.Name), searchLower) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), searchLower) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), searchLower) {
			return true
		}
	}
	return false
}

// sortProducts orders ps in place by the given key. Sorts are stable so that
// ties keep their filtered order and output stays deterministic. An empty or
// unknown key leaves the post-filter insertion order untouched.
func sortProducts(ps []models.Product, key models.SortOption) {
	switch key {
	case models.SortName:
		// Collators are not safe for concurrent use, so each call builds
		// its own.
		c := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool {
			return c.CompareString(ps[i].Name, ps[j].Name) < 0
		})
	case models.SortPriceLow:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price < ps[j].Price
		})
	case models.SortPriceHigh:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Price > ps[j].Price
		})
	case models.SortRating:
		sort.SliceStable(ps, func(i, j int) bool {
			return ps[i].Rating > ps[j].Rating
		})
	case models.SortNewest:
		// The entity carries no creation timestamp; reversing the current
		// order stands in for recency until one exists.
		for i, j := 0, len(ps)-1; i < j; i, j = i+1, j-1 {
			ps[i], ps[j] = ps[j], ps[i]
		}
	}
}
