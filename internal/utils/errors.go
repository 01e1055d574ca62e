package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrEmptyCatalog       = errors.New("EMPTY_CATALOG")
	ErrDuplicateProductID = errors.New("DUPLICATE_PRODUCT_ID")
	ErrInvalidProduct     = errors.New("INVALID_PRODUCT")
)
