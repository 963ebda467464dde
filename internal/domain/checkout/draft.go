// internal/domain/checkout/draft.go
package checkout

import (
	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// ClientInfo is the customer contact and shipping data gathered by the
// storefront form. JSON tags match the upstream order API's field names.
type ClientInfo struct {
	FirstName  string `json:"nombre" binding:"required,min=2"`
	LastName   string `json:"apellido" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"telefono" binding:"required,min=10"`
	Address    string `json:"direccion" binding:"required,min=10"`
	City       string `json:"ciudad" binding:"required,min=2"`
	PostalCode string `json:"codigoPostal" binding:"required,min=4"`
}

// Selections are the shipping and payment choices the UI hands the
// assembler alongside the cart snapshot.
type Selections struct {
	ShippingMethod string
	ShippingFee    decimal.Decimal
	PaymentMethod  Method
	ClientInfo     *ClientInfo
}

// OrderDraft is the ephemeral order assembled for one submission. It is
// built fresh from the live cart on every attempt and never cached, so a
// retry after a cart edit reflects the new cart state.
type OrderDraft struct {
	Method         Method
	Lines          []DraftLine
	ShippingMethod string
	ShippingFee    decimal.Decimal
	CartTotal      decimal.Decimal
	TotalAmount    decimal.Decimal
	ClientInfo     ClientInfo
}

// DraftLine is one order line with its effective (offer-aware) unit price
type DraftLine struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// buildDraft derives the monetary totals and order lines from a cart
// snapshot plus the caller's selections. The snapshot is taken once here;
// the draft never re-reads the cart mid-flight.
func buildDraft(items []cart.LineItem, sel Selections) (*OrderDraft, error) {
	lines := make([]DraftLine, 0, len(items))
	cartTotal := decimal.Zero

	for _, item := range items {
		price, err := cart.EffectivePrice(item.Product)
		if err != nil {
			return nil, &ValidationError{Field: "cart", Message: err.Error()}
		}

		lines = append(lines, DraftLine{
			ProductID: item.Product.ID,
			Name:      item.Product.Name,
			Quantity:  item.Quantity,
			UnitPrice: price,
		})
		cartTotal = cartTotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &OrderDraft{
		Method:         sel.PaymentMethod,
		Lines:          lines,
		ShippingMethod: sel.ShippingMethod,
		ShippingFee:    sel.ShippingFee,
		CartTotal:      cartTotal,
		TotalAmount:    cartTotal.Add(sel.ShippingFee),
		ClientInfo:     *sel.ClientInfo,
	}, nil
}

// Wire payloads. Shapes and field names are the upstream gateway's
// contract; the two rails expect different structures.

type cardPayload struct {
	CartItems     []cardPayloadItem `json:"cartItems"`
	OrderFormData cardFormData      `json:"orderFormData"`
}

type cardPayloadItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cardFormData struct {
	ShippingCost  float64    `json:"shippingCost"`
	PaymentMethod string     `json:"paymentMethod"`
	ClientInfo    ClientInfo `json:"clientInfo"`
}

type transferPayload struct {
	CartItems      []transferPayloadItem `json:"cartItems"`
	CartItemsCount int                   `json:"cartItemsCount"`
	OrderFormData  transferFormData      `json:"orderFormData"`
	ShippingFee    float64               `json:"shippingFee"`
	TotalAmount    float64               `json:"totalAmount"`
}

type transferPayloadItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type transferFormData struct {
	ShippingMethod string     `json:"shippingMethod"`
	PaymentMethod  string     `json:"paymentMethod"`
	ShippingFee    float64    `json:"shippingFee"`
	TotalAmount    float64    `json:"totalAmount"`
	ClientInfo     ClientInfo `json:"clientInfo"`
}

// cardPayload builds the generic checkout endpoint's request body
func (d *OrderDraft) cardPayload() cardPayload {
	items := make([]cardPayloadItem, 0, len(d.Lines))
	for _, line := range d.Lines {
		items = append(items, cardPayloadItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}

	return cardPayload{
		CartItems: items,
		OrderFormData: cardFormData{
			ShippingCost:  d.ShippingFee.InexactFloat64(),
			PaymentMethod: d.Method.String(),
			ClientInfo:    d.ClientInfo,
		},
	}
}

// transferPayload builds the transfer endpoint's request body
func (d *OrderDraft) transferPayload() transferPayload {
	items := make([]transferPayloadItem, 0, len(d.Lines))
	for _, line := range d.Lines {
		items = append(items, transferPayloadItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice.InexactFloat64(),
		})
	}

	return transferPayload{
		CartItems:      items,
		CartItemsCount: len(d.Lines),
		OrderFormData: transferFormData{
			ShippingMethod: d.ShippingMethod,
			PaymentMethod:  d.Method.String(),
			ShippingFee:    d.ShippingFee.InexactFloat64(),
			TotalAmount:    d.TotalAmount.InexactFloat64(),
			ClientInfo:     d.ClientInfo,
		},
		ShippingFee: d.ShippingFee.InexactFloat64(),
		TotalAmount: d.TotalAmount.InexactFloat64(),
	}
}
