// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	storage cart.Storage
	catalog catalog.Provider
	config  *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(storage cart.Storage, provider catalog.Provider, cfg *config.Config) *CartHandler {
	return &CartHandler{
		storage: storage,
		catalog: provider,
		config:  cfg,
	}
}

// AddItemRequest represents an add to cart request
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateItemRequest represents a quantity update request
type UpdateItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// cartView is the cart representation the storefront renders
type cartView struct {
	Items  []cart.LineItem `json:"items"`
	Totals cart.Totals     `json:"totals"`
}

// GetCart handles GET /cart. Loading the cart runs the integrity scan: a
// snapshot containing any line without a product reference is cleared
// wholesale, never partially repaired.
func (h *CartHandler) GetCart(c *gin.Context) {
	store, ok := h.openStore(c)
	if !ok {
		return
	}

	if store.Corrupted() {
		if err := store.RemoveAll(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to reset corrupted cart",
			})
			return
		}
	}

	view, err := buildCartView(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to price cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    view,
	})
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	product, err := h.catalog.Product(c.Request.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to look up product",
		})
		return
	}

	store, ok := h.openStore(c)
	if !ok {
		return
	}

	if err := store.AddItem(c.Request.Context(), *product, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	view, err := buildCartView(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to price cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    view,
	})
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID := c.Param("id")

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	store, ok := h.openStore(c)
	if !ok {
		return
	}

	if err := store.UpdateQuantity(c.Request.Context(), productID, req.Quantity); err != nil {
		respondCartError(c, err)
		return
	}

	view, err := buildCartView(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to price cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    view,
	})
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID := c.Param("id")

	store, ok := h.openStore(c)
	if !ok {
		return
	}

	if err := store.RemoveItem(c.Request.Context(), productID); err != nil {
		respondCartError(c, err)
		return
	}

	view, err := buildCartView(store)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to price cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    view,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	store, ok := h.openStore(c)
	if !ok {
		return
	}

	if err := store.RemoveAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	store, ok := h.openStore(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": store.ItemCount(),
		},
	})
}

// openStore rehydrates the session's cart, responding on failure
func (h *CartHandler) openStore(c *gin.Context) (*cart.Store, bool) {
	store, err := cart.Open(c.Request.Context(), h.storage, middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load cart",
		})
		return nil, false
	}

	return store, true
}

func buildCartView(store *cart.Store) (*cartView, error) {
	items := store.Items()

	totals, err := cart.CalculateTotals(items)
	if err != nil {
		return nil, err
	}

	return &cartView{
		Items:  items,
		Totals: totals,
	}, nil
}

// respondCartError maps cart mutation outcomes to HTTP responses
func respondCartError(c *gin.Context, err error) {
	var stockErr *cart.StockExceededError

	switch {
	case errors.Is(err, cart.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
	case errors.Is(err, cart.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": err.Error(),
		})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":     stockErr.Error(),
			"available": stockErr.Available,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart",
		})
	}
}
