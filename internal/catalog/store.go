package catalog

import (
	"fmt"

	"github.com/luxestore/luxe_api/internal/models"
	"github.com/luxestore/luxe_api/internal/utils"
)

// Store holds the authoritative product collection in memory. It is built
// once at startup and read-only afterwards, so concurrent readers need no
// coordination.
type Store struct {
	products   []models.Product
	byID       map[string]int
	categories []string
	brands     []string
}

// New validates the given products and builds a Store over them. Products
// keep their given order; it is the order GetAll returns.
func New(products []models.Product) (*Store, error) {
	if len(products) == 0 {
		return nil, utils.ErrEmptyCatalog
	}

	s := &Store{
		products:   make([]models.Product, len(products)),
		byID:       make(map[string]int, len(products)),
		categories: []string{models.AllCategories},
		brands:     []string{models.AllBrands},
	}
	copy(s.products, products)

	seenCategory := make(map[string]bool)
	seenBrand := make(map[string]bool)
	for i, p := range s.products {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("product %d (%q): %w", i, p.ID, err)
		}
		if _, ok := s.byID[p.ID]; ok {
			return nil, fmt.Errorf("product %d: id %q: %w", i, p.ID, utils.ErrDuplicateProductID)
		}
		s.byID[p.ID] = i

		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			s.categories = append(s.categories, p.Category)
		}
		if !seenBrand[p.Brand] {
			seenBrand[p.Brand] = true
			s.brands = append(s.brands, p.Brand)
		}
	}
	return s, nil
}

// validate enforces the structural rules a product must satisfy to enter
// the catalog, including originalPrice >= price so the storefront's
// percent-off badge can never go negative.
func validate(p models.Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("missing id: %w", utils.ErrInvalidProduct)
	case p.Name == "":
		return fmt.Errorf("missing name: %w", utils.ErrInvalidProduct)
	case p.Price < 0:
		return fmt.Errorf("negative price %v: %w", p.Price, utils.ErrInvalidProduct)
	case p.OriginalPrice != nil && *p.OriginalPrice < p.Price:
		return fmt.Errorf("original price %v below price %v: %w", *p.OriginalPrice, p.Price, utils.ErrInvalidProduct)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("rating %v out of range: %w", p.Rating, utils.ErrInvalidProduct)
	case p.ReviewCount < 0:
		return fmt.Errorf("negative review count %d: %w", p.ReviewCount, utils.ErrInvalidProduct)
	case len(p.Images) == 0:
		return fmt.Errorf("no images: %w", utils.ErrInvalidProduct)
	}
	return nil
}

// GetAll returns every product in insertion order. The slice is a copy, so
// callers may reorder it freely without touching the backing collection.
func (s *Store) GetAll() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// GetByID returns the product with the given id, or ErrProductNotFound.
// An unknown id is an expected outcome, not a failure.
func (s *Store) GetByID(id string) (models.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return models.Product{}, utils.ErrProductNotFound
	}
	return s.products[i], nil
}

// Categories returns the distinct product categories in first-seen order,
// preceded by the "All Categories" sentinel for filter controls.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// Brands returns the distinct product brands in first-seen order, preceded
// by the "All Brands" sentinel.
func (s *Store) Brands() []string {
	out := make([]string, len(s.brands))
	copy(out, s.brands)
	return out
}

// Len returns the number of products in the catalog.
func (s *Store) Len() int {
	return len(s.products)
}
