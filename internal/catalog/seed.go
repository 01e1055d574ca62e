package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/luxestore/luxe_api/internal/models"
)

//go:embed data/products.json
var seedData []byte

// LoadEmbedded decodes the catalog seed compiled into the binary.
func LoadEmbedded() ([]models.Product, error) {
	return decode(seedData)
}

// LoadFile decodes a catalog from a JSON file, used when CATALOG_PATH
// overrides the embedded seed.
func LoadFile(path string) ([]models.Product, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return decode(raw)
}

func decode(raw []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}
