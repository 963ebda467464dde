// internal/domain/cart/pricing_test.go
package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestEffectivePriceRegular(t *testing.T) {
	price, err := EffectivePrice(testProduct("p1", "100", nil))
	require.NoError(t, err)
	assert.Equal(t, "100", price.String())
}

func TestEffectivePriceActiveOffer(t *testing.T) {
	product := testProduct("p1", "100", nil)
	product.HasOffer = true
	product.OfferPrice = strPtr("80")

	price, err := EffectivePrice(product)
	require.NoError(t, err)
	assert.Equal(t, "80", price.String())
}

func TestEffectivePriceOfferFlagWithoutPrice(t *testing.T) {
	// An offer flag with no offer price falls back to the regular price
	product := testProduct("p1", "100", nil)
	product.HasOffer = true

	price, err := EffectivePrice(product)
	require.NoError(t, err)
	assert.Equal(t, "100", price.String())

	product.OfferPrice = strPtr("")
	price, err = EffectivePrice(product)
	require.NoError(t, err)
	assert.Equal(t, "100", price.String())
}

func TestEffectivePriceIgnoresInactiveOffer(t *testing.T) {
	product := testProduct("p1", "100", nil)
	product.OfferPrice = strPtr("80")

	price, err := EffectivePrice(product)
	require.NoError(t, err)
	assert.Equal(t, "100", price.String(), "offer price must not apply without the offer flag")
}

func TestEffectivePriceInvalid(t *testing.T) {
	_, err := EffectivePrice(testProduct("p1", "not-a-number", nil))
	assert.Error(t, err)
}

func TestLineSubtotalKeepsDecimalPrecision(t *testing.T) {
	item := LineItem{Product: testProduct("p1", "19.99", nil), Quantity: 3}

	subtotal, err := LineSubtotal(item)
	require.NoError(t, err)
	assert.Equal(t, "59.97", subtotal.String())
}

func TestTotalIsOrderIndependent(t *testing.T) {
	a := LineItem{Product: testProduct("p1", "10.10", nil), Quantity: 3}
	b := LineItem{Product: testProduct("p2", "0.01", nil), Quantity: 7}
	c := LineItem{Product: testProduct("p3", "99.99", nil), Quantity: 1}

	forward, err := Total([]LineItem{a, b, c})
	require.NoError(t, err)

	reversed, err := Total([]LineItem{c, b, a})
	require.NoError(t, err)

	assert.True(t, forward.Equal(reversed))
	assert.Equal(t, "130.36", forward.String())
}

func TestCalculateTotals(t *testing.T) {
	items := []LineItem{
		{Product: testProduct("p1", "100", nil), Quantity: 2},
		{Product: testProduct("p2", "50", nil), Quantity: 1},
	}

	totals, err := CalculateTotals(items)
	require.NoError(t, err)

	assert.Equal(t, 2, totals.ItemCount)
	assert.Equal(t, 3, totals.TotalQuantity)
	assert.Equal(t, "250", totals.Subtotal)
}

func TestCalculateTotalsEmptyCart(t *testing.T) {
	totals, err := CalculateTotals(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, totals.ItemCount)
	assert.Equal(t, 0, totals.TotalQuantity)
	assert.Equal(t, "0", totals.Subtotal)
}
