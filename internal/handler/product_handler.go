package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/luxestore/luxe_api/internal/models"
	"github.com/luxestore/luxe_api/internal/service"
	"github.com/luxestore/luxe_api/internal/utils"
)

// ProductHandler handles product-related HTTP endpoints.
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler constructs a ProductHandler.
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GetProducts returns the product list with optional filters, search, and sort.
func (h *ProductHandler) GetProducts(c *gin.Context) {
	q := models.Query{
		Category:  c.Query("category"),
		Brand:     c.Query("brand"),
		MinPrice:  parseFloatParam(c.Query("minPrice")),
		MaxPrice:  parseFloatParam(c.Query("maxPrice")),
		InStock:   c.Query("inStock") == "true",
		MinRating: parseFloatParam(c.Query("minRating")),
		Search:    c.Query("search"),
		Sort:      models.ParseSortOption(c.Query("sort")),
	}

	products, total := h.productService.List(q)

	utils.Success(c, 200, "Products retrieved successfully", gin.H{
		"products": products,
		"total":    total,
	})
}

// GetProduct returns a single product by id, 404 when it does not exist.
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, err := h.productService.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get product")
		return
	}

	utils.Success(c, 200, "Product retrieved successfully", product)
}

// GetRelatedProducts returns products from the same category as the given
// product, for the detail page's "you may also like" strip.
func (h *ProductHandler) GetRelatedProducts(c *gin.Context) {
	related, err := h.productService.Related(c.Param("id"), service.RelatedLimit)
	if err != nil {
		if errors.Is(err, utils.ErrProductNotFound) {
			utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to get related products")
		return
	}

	utils.Success(c, 200, "Related products retrieved successfully", gin.H{
		"products": related,
		"total":    len(related),
	})
}

// GetCategories returns the category list for filter controls.
func (h *ProductHandler) GetCategories(c *gin.Context) {
	utils.Success(c, 200, "Categories retrieved successfully", gin.H{
		"categories": h.productService.Categories(),
	})
}

// GetBrands returns the brand list for filter controls.
func (h *ProductHandler) GetBrands(c *gin.Context) {
	utils.Success(c, 200, "Brands retrieved successfully", gin.H{
		"brands": h.productService.Brands(),
	})
}

// parseFloatParam parses an optional numeric query parameter. Empty or
// unparseable values degrade to absent rather than failing the query.
func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
