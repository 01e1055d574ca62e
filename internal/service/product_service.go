package service

import (
	"github.com/luxestore/luxe_api/internal/catalog"
	"github.com/luxestore/luxe_api/internal/models"
	"github.com/luxestore/luxe_api/internal/query"
)

// RelatedLimit caps how many related products the detail view receives.
const RelatedLimit = 4

// ProductService provides product-related business logic over the catalog
// store and the query engine.
type ProductService struct {
	store *catalog.Store
}

// NewProductService constructs a ProductService.
func NewProductService(store *catalog.Store) *ProductService {
	return &ProductService{store: store}
}

// List runs a listing query against the catalog and returns the matching
// products with their count.
func (s *ProductService) List(q models.Query) ([]models.Product, int) {
	return query.Execute(s.store.GetAll(), q)
}

// Get returns a product by id, or utils.ErrProductNotFound.
func (s *ProductService) Get(id string) (models.Product, error) {
	return s.store.GetByID(id)
}

// Related returns up to limit products from the same category as the given
// product, excluding the product itself, in catalog order.
func (s *ProductService) Related(id string, limit int) ([]models.Product, error) {
	p, err := s.store.GetByID(id)
	if err != nil {
		return nil, err
	}

	same, _ := query.Execute(s.store.GetAll(), models.Query{Category: p.Category})
	related := make([]models.Product, 0, limit)
	for _, candidate := range same {
		if candidate.ID == p.ID {
			continue
		}
		related = append(related, candidate)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

// Categories returns the filter-control category list, sentinel first.
func (s *ProductService) Categories() []string {
	return s.store.Categories()
}

// Brands returns the filter-control brand list, sentinel first.
func (s *ProductService) Brands() []string {
	return s.store.Brands()
}

// CatalogSize returns the number of products loaded, for health reporting.
func (s *ProductService) CatalogSize() int {
	return s.store.Len()
}
