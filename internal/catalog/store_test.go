package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxestore/luxe_api/internal/catalog"
	"github.com/luxestore/luxe_api/internal/models"
	"github.com/luxestore/luxe_api/internal/utils"
)

func f64(v float64) *float64 { return &v }

func validProducts() []models.Product {
	return []models.Product{
		{
			ID: "1", Name: "Aurora Pendant Lamp", Price: 189,
			Category: "Lighting", Brand: "Atelier Lumen",
			Rating: 4.7, Images: []string{"/1.jpg"},
		},
		{
			ID: "2", Name: "Fjord Lounge Chair", Price: 649,
			Category: "Furniture", Brand: "Nordic Form",
			Rating: 4.9, Images: []string{"/2.jpg"},
		},
		{
			ID: "3", Name: "Meridian Floor Lamp", Price: 329,
			Category: "Lighting", Brand: "Atelier Lumen",
			Rating: 4.2, Images: []string{"/3.jpg"},
		},
	}
}

func TestNew(t *testing.T) {

	t.Run("ValidCatalog", func(t *testing.T) {
		store, err := catalog.New(validProducts())
		require.NoError(t, err)
		assert.Equal(t, 3, store.Len())
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		_, err := catalog.New(nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrEmptyCatalog)
	})

	t.Run("DuplicateID", func(t *testing.T) {
		products := validProducts()
		products[2].ID = products[0].ID
		_, err := catalog.New(products)
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrDuplicateProductID)
	})

	t.Run("MissingID", func(t *testing.T) {
		products := validProducts()
		products[1].ID = ""
		_, err := catalog.New(products)
		assert.ErrorIs(t, err, utils.ErrInvalidProduct)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		products := validProducts()
		products[0].Price = -1
		_, err := catalog.New(products)
		assert.ErrorIs(t, err, utils.ErrInvalidProduct)
	})

	t.Run("OriginalPriceBelowPrice", func(t *testing.T) {
		products := validProducts()
		products[0].OriginalPrice = f64(products[0].Price - 10)
		_, err := catalog.New(products)
		assert.ErrorIs(t, err, utils.ErrInvalidProduct)
	})

	t.Run("OriginalPriceEqualToPriceAllowed", func(t *testing.T) {
		products := validProducts()
		products[0].OriginalPrice = f64(products[0].Price)
		_, err := catalog.New(products)
		assert.NoError(t, err)
	})

	t.Run("RatingOutOfRange", func(t *testing.T) {
		products := validProducts()
		products[0].Rating = 5.1
		_, err := catalog.New(products)
		assert.ErrorIs(t, err, utils.ErrInvalidProduct)
	})

	t.Run("NoImages", func(t *testing.T) {
		products := validProducts()
		products[0].Images = nil
		_, err := catalog.New(products)
		assert.ErrorIs(t, err, utils.ErrInvalidProduct)
	})
}

func TestStoreAccessors(t *testing.T) {
	store, err := catalog.New(validProducts())
	require.NoError(t, err)

	t.Run("GetAllKeepsInsertionOrder", func(t *testing.T) {
		all := store.GetAll()
		require.Len(t, all, 3)
		assert.Equal(t, "1", all[0].ID)
		assert.Equal(t, "2", all[1].ID)
		assert.Equal(t, "3", all[2].ID)
	})

	t.Run("GetAllReturnsDefensiveCopy", func(t *testing.T) {
		first := store.GetAll()
		first[0].Name = "mutated"
		first[0], first[2] = first[2], first[0]

		again := store.GetAll()
		assert.Equal(t, "Aurora Pendant Lamp", again[0].Name)
		assert.Equal(t, "1", again[0].ID)
	})

	t.Run("GetByIDFound", func(t *testing.T) {
		p, err := store.GetByID("2")
		require.NoError(t, err)
		assert.Equal(t, "Fjord Lounge Chair", p.Name)
	})

	t.Run("GetByIDNotFound", func(t *testing.T) {
		_, err := store.GetByID("nope")
		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrProductNotFound)
	})

	t.Run("CategoriesSentinelFirstThenFirstSeenOrder", func(t *testing.T) {
		assert.Equal(t, []string{models.AllCategories, "Lighting", "Furniture"}, store.Categories())
	})

	t.Run("BrandsSentinelFirstDistinct", func(t *testing.T) {
		assert.Equal(t, []string{models.AllBrands, "Atelier Lumen", "Nordic Form"}, store.Brands())
	})

	t.Run("FacetListsAreCopies", func(t *testing.T) {
		cats := store.Categories()
		cats[0] = "mutated"
		assert.Equal(t, models.AllCategories, store.Categories()[0])
	})
}

func TestLoadEmbedded(t *testing.T) {
	products, err := catalog.LoadEmbedded()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	// The embedded seed must itself pass catalog validation.
	store, err := catalog.New(products)
	require.NoError(t, err)

	p, err := store.GetByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Aurora Pendant Lamp", p.Name)
	assert.NotEmpty(t, p.Images)
	assert.NotEmpty(t, p.Specifications)
}

func TestLoadFile(t *testing.T) {

	t.Run("MissingFile", func(t *testing.T) {
		_, err := catalog.LoadFile("testdata/does-not-exist.json")
		assert.Error(t, err)
	})
}
