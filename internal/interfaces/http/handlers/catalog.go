// internal/interfaces/http/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// CatalogHandler proxies read-only product listings from the upstream
// catalog so the storefront browses and the cart adds through the same
// product data.
type CatalogHandler struct {
	catalog catalog.Provider
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(provider catalog.Provider) *CatalogHandler {
	return &CatalogHandler{
		catalog: provider,
	}
}

// GetProducts handles GET /products
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	query := catalog.Query{
		CategoryID: c.Query("category_id"),
		ColorID:    c.Query("color_id"),
	}

	if value, ok := c.GetQuery("is_featured"); ok {
		featured, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "is_featured must be true or false",
			})
			return
		}
		query.IsFeatured = &featured
	}

	if value, ok := c.GetQuery("has_offer"); ok {
		offer, err := strconv.ParseBool(value)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "has_offer must be true or false",
			})
			return
		}
		query.HasOffer = &offer
	}

	products, err := h.catalog.Products(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to load products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Products retrieved successfully",
		"data":    products,
	})
}
