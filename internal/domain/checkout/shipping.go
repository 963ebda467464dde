// internal/domain/checkout/shipping.go
package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/config"
)

// ShippingOption is one of the storefront's fixed shipping choices
type ShippingOption struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee"`
}

// ShippingOptions returns the storefront's shipping choices: free in-store
// pickup and flat-fee local delivery.
func ShippingOptions(cfg *config.Config) []ShippingOption {
	return []ShippingOption{
		{
			ID:          "pickup",
			Title:       "Retiro en local",
			Description: "Sin costo adicional",
			Fee:         0,
		},
		{
			ID:          "delivery",
			Title:       "Envío a domicilio",
			Description: "Entrega a domicilio",
			Fee:         cfg.Shipping.DeliveryFee,
		},
	}
}

// ResolveShippingFee maps a shipping method id to its fee
func ResolveShippingFee(cfg *config.Config, methodID string) (decimal.Decimal, error) {
	for _, option := range ShippingOptions(cfg) {
		if option.ID == methodID {
			return decimal.NewFromFloat(option.Fee), nil
		}
	}

	return decimal.Zero, fmt.Errorf("unknown shipping method %q", methodID)
}
