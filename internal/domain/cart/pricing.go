// internal/domain/cart/pricing.go
package cart

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// EffectivePrice returns the unit price a line item is charged at: the offer
// price when the product has an active offer and one is set, the regular
// price otherwise.
func EffectivePrice(p catalog.Product) (decimal.Decimal, error) {
	raw := p.Price
	if p.HasOffer && p.OfferPrice != nil && *p.OfferPrice != "" {
		raw = *p.OfferPrice
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q for product %s: %w", raw, p.ID, err)
	}

	return price, nil
}

// LineSubtotal returns the effective unit price times the line quantity
func LineSubtotal(item LineItem) (decimal.Decimal, error) {
	price, err := EffectivePrice(item.Product)
	if err != nil {
		return decimal.Zero, err
	}

	return price.Mul(decimal.NewFromInt(int64(item.Quantity))), nil
}

// Total sums LineSubtotal over all items. Reordering items never changes
// the result.
func Total(items []LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		subtotal, err := LineSubtotal(item)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(subtotal)
	}

	return total, nil
}

// CalculateTotals builds the totals summary the storefront renders
func CalculateTotals(items []LineItem) (Totals, error) {
	totals := Totals{ItemCount: len(items)}

	for _, item := range items {
		totals.TotalQuantity += item.Quantity
	}

	subtotal, err := Total(items)
	if err != nil {
		return Totals{}, err
	}
	totals.Subtotal = subtotal.String()

	return totals, nil
}
