// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires the cart and checkout endpoints. Every route here is
// session scoped; the session middleware on the parent group guarantees a
// session id is present before any handler runs.
func SetupRoutes(rg *gin.RouterGroup, redisClient *redis.Client, cfg *config.Config, logger *logrus.Logger) {
	storage := cart.NewRedisStorage(redisClient, cfg.Cart.TTL)
	provider := catalog.NewClient(cfg)
	assembler := checkout.NewAssembler(cfg, logger)

	cartHandler := handlers.NewCartHandler(storage, provider, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(assembler, storage, cfg)
	catalogHandler := handlers.NewCatalogHandler(provider)

	rg.GET("/products", catalogHandler.GetProducts)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddItem)
		cartGroup.PUT("/items/:id", cartHandler.UpdateItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	checkoutGroup := rg.Group("/checkout")
	{
		checkoutGroup.POST("", checkoutHandler.Submit)
		checkoutGroup.POST("/payment-confirmed", checkoutHandler.PaymentConfirmed)
		checkoutGroup.POST("/payment-return", checkoutHandler.PaymentReturn)
		checkoutGroup.GET("/shipping-options", checkoutHandler.GetShippingOptions)
	}
}
