// internal/domain/cart/errors.go
package cart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity rejects quantities that are zero or negative
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")

	// ErrItemNotFound signals that no cart line matches the product id
	ErrItemNotFound = errors.New("item not found in cart")
)

// StockExceededError rejects a mutation that would push a line's quantity
// past the product's known stock. Available carries the maximum quantity
// the caller may still request.
type StockExceededError struct {
	ProductID string
	Available int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("only %d units available for product %s", e.Available, e.ProductID)
}
