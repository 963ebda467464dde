// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
)

// CheckoutHandler handles checkout endpoints
type CheckoutHandler struct {
	assembler *checkout.Assembler
	storage   cart.Storage
	config    *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(assembler *checkout.Assembler, storage cart.Storage, cfg *config.Config) *CheckoutHandler {
	return &CheckoutHandler{
		assembler: assembler,
		storage:   storage,
		config:    cfg,
	}
}

// SubmitRequest represents a checkout submission. ClientInfo is a pointer
// without a required tag so a missing form reaches the assembler's own
// guard and comes back as a field-level validation error.
type SubmitRequest struct {
	ShippingMethod string               `json:"shipping_method" binding:"required"`
	PaymentMethod  string               `json:"payment_method" binding:"required"`
	ClientInfo     *checkout.ClientInfo `json:"client_info"`
}

// Submit handles POST /checkout
func (h *CheckoutHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	method, err := checkout.ParseMethod(req.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	fee, err := checkout.ResolveShippingFee(h.config, req.ShippingMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	store, err := cart.Open(c.Request.Context(), h.storage, middleware.GetSessionID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to load cart",
		})
		return
	}

	attempt := h.assembler.NewAttempt(store.Items(), checkout.Selections{
		ShippingMethod: req.ShippingMethod,
		ShippingFee:    fee,
		PaymentMethod:  method,
		ClientInfo:     req.ClientInfo,
	})

	result, err := attempt.Run(c.Request.Context())
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	if result.Method.UsesCardRail() {
		c.JSON(http.StatusOK, gin.H{
			"message": "Checkout session created successfully",
			"data": gin.H{
				"url": result.RedirectURL,
			},
		})
		return
	}

	// An order on the transfer rail is placed but not yet paid; the cart
	// stays intact until the shopper explicitly confirms the payment was
	// sent (payment-confirmed below).
	c.JSON(http.StatusOK, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order_id": result.OrderID,
		},
	})
}

// PaymentConfirmed handles POST /checkout/payment-confirmed, the transfer
// rail's explicit "payment proof sent" action. Only this confirmation
// clears the cart; placing the order never does.
func (h *CheckoutHandler) PaymentConfirmed(c *gin.Context) {
	if err := h.clearCart(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment confirmed successfully",
	})
}

// PaymentReturn handles POST /checkout/payment-return, the card rail's
// return-from-gateway confirmation. The cart survives the redirect to the
// payment page and is cleared here once the shopper comes back paid.
func (h *CheckoutHandler) PaymentReturn(c *gin.Context) {
	if err := h.clearCart(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Payment return processed successfully",
	})
}

// GetShippingOptions handles GET /checkout/shipping-options
func (h *CheckoutHandler) GetShippingOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Shipping options retrieved successfully",
		"data":    checkout.ShippingOptions(h.config),
	})
}

func (h *CheckoutHandler) clearCart(c *gin.Context) error {
	store, err := cart.Open(c.Request.Context(), h.storage, middleware.GetSessionID(c))
	if err != nil {
		return err
	}

	return store.RemoveAll(c.Request.Context())
}

// respondCheckoutError maps submission failures to HTTP responses. Gateway
// failures carry a retryable flag so the storefront knows whether a retry
// makes sense.
func respondCheckoutError(c *gin.Context, err error) {
	var (
		validationErr *checkout.ValidationError
		serverErr     *checkout.ServerError
		contractErr   *checkout.ContractError
		transportErr  *checkout.TransportError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": validationErr.Message,
			"field": validationErr.Field,
		})
	case errors.As(err, &serverErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":           "Payment gateway rejected the order",
			"upstream_status": serverErr.StatusCode,
			"retryable":       checkout.Retryable(err),
		})
	case errors.As(err, &contractErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Payment gateway returned an unexpected response",
			"retryable": checkout.Retryable(err),
		})
	case errors.As(err, &transportErr):
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "Payment gateway is unreachable",
			"retryable": checkout.Retryable(err),
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Checkout failed",
		})
	}
}
