// internal/domain/cart/entity.go
package cart

import (
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// LineItem is one cart line: a product plus the quantity being bought.
// At most one line exists per product id; repeated adds merge.
type LineItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Snapshot is the full persisted cart state, serialized as-is into the
// storage slot. Item order is insertion order and survives round-trips.
type Snapshot struct {
	Items []LineItem `json:"items"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int    `json:"item_count"`     // Number of distinct lines
	TotalQuantity int    `json:"total_quantity"` // Sum of all quantities
	Subtotal      string `json:"subtotal"`       // Decimal string, before shipping
}

// Corrupted reports whether the line is missing its product reference.
// A snapshot containing any corrupted line is never trusted and must be
// cleared wholesale by the caller.
func (li LineItem) Corrupted() bool {
	return li.Product.ID == ""
}
