package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxestore/luxe_api/internal/catalog"
	"github.com/luxestore/luxe_api/internal/models"
	"github.com/luxestore/luxe_api/internal/service"
	"github.com/luxestore/luxe_api/internal/utils"
)

func newService(t *testing.T) *service.ProductService {
	t.Helper()
	store, err := catalog.New([]models.Product{
		{ID: "1", Name: "Pendant Lamp", Price: 100, Category: "Lighting", Brand: "Atelier Lumen", Rating: 4.5, Images: []string{"/1.jpg"}},
		{ID: "2", Name: "Lounge Chair", Price: 50, Category: "Furniture", Brand: "Nordic Form", Rating: 3.0, Images: []string{"/2.jpg"}},
		{ID: "3", Name: "Floor Lamp", Price: 200, Category: "Lighting", Brand: "Atelier Lumen", Rating: 5.0, Images: []string{"/3.jpg"}},
		{ID: "4", Name: "Table Lamp", Price: 90, Category: "Lighting", Brand: "Terra Ceramics", Rating: 4.1, Images: []string{"/4.jpg"}},
		{ID: "5", Name: "Wall Lamp", Price: 70, Category: "Lighting", Brand: "Atelier Lumen", Rating: 4.0, Images: []string{"/5.jpg"}},
		{ID: "6", Name: "Desk Lamp", Price: 60, Category: "Lighting", Brand: "Atelier Lumen", Rating: 3.9, Images: []string{"/6.jpg"}},
	})
	require.NoError(t, err)
	return service.NewProductService(store)
}

func TestList(t *testing.T) {
	svc := newService(t)

	products, total := svc.List(models.Query{Category: "Furniture"})
	require.Equal(t, 1, total)
	assert.Equal(t, "2", products[0].ID)
}

func TestRelated(t *testing.T) {
	svc := newService(t)

	t.Run("ExcludesSelfAndCapsAtLimit", func(t *testing.T) {
		related, err := svc.Related("1", service.RelatedLimit)
		require.NoError(t, err)
		require.Len(t, related, service.RelatedLimit)
		for _, p := range related {
			assert.Equal(t, "Lighting", p.Category)
			assert.NotEqual(t, "1", p.ID)
		}
		// catalog order, self skipped
		assert.Equal(t, "3", related[0].ID)
	})

	t.Run("FewerThanLimit", func(t *testing.T) {
		related, err := svc.Related("2", service.RelatedLimit)
		require.NoError(t, err)
		assert.Empty(t, related)
	})

	t.Run("UnknownID", func(t *testing.T) {
		_, err := svc.Related("nope", service.RelatedLimit)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrProductNotFound)
	})
}

func TestGet(t *testing.T) {
	svc := newService(t)

	p, err := svc.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Table Lamp", p.Name)

	_, err = svc.Get("999")
	assert.ErrorIs(t, err, utils.ErrProductNotFound)
}

func TestFacets(t *testing.T) {
	svc := newService(t)

	assert.Equal(t, []string{models.AllCategories, "Lighting", "Furniture"}, svc.Categories())
	assert.Equal(t, []string{models.AllBrands, "Atelier Lumen", "Nordic Form", "Terra Ceramics"}, svc.Brands())
	assert.Equal(t, 6, svc.CatalogSize())
}
