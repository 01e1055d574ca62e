// Command catalogcheck validates a catalog seed file against the same rules
// the API enforces at startup, so a bad seed is caught before deploy.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"github.com/luxestore/luxe_api/internal/catalog"
	"github.com/luxestore/luxe_api/internal/models"
)

const fileFlag = "file"

func main() {
	path := getFlagsValue()
	log.Logger = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

	products, err := load(path)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("catalog load failed")
		os.Exit(1)
	}

	store, err := catalog.New(products)
	if err != nil {
		log.Error().Err(err).Str("file", path).Msg("catalog invalid")
		os.Exit(1)
	}

	log.Info().
		Int("products", store.Len()).
		Strs("categories", store.Categories()[1:]).
		Strs("brands", store.Brands()[1:]).
		Msg("catalog valid")
}

func getFlagsValue() string {
	path := pflag.StringP(fileFlag, "f", "", "catalog JSON file to validate (default: embedded seed)")
	pflag.Parse()
	return *path
}

func load(path string) ([]models.Product, error) {
	if path == "" {
		return catalog.LoadEmbedded()
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("--%s flag: %w", fileFlag, err)
	}
	return catalog.LoadFile(path)
}
