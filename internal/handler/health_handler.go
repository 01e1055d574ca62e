package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/luxestore/luxe_api/internal/service"
	"github.com/luxestore/luxe_api/internal/utils"
)

var startTime = time.Now()

// HealthHandler provides the health endpoint.
type HealthHandler struct {
	productService *service.ProductService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(productService *service.ProductService) *HealthHandler {
	return &HealthHandler{productService: productService}
}

// GetHealth responds with service status and catalog size.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	utils.Success(c, 200, "Service is healthy", gin.H{
		"status":  "healthy",
		"version": "1.0.0",
		"uptime":  int(time.Since(startTime).Seconds()),
		"catalog": gin.H{
			"products": h.productService.CatalogSize(),
		},
	})
}
