// internal/domain/checkout/method.go
package checkout

import "fmt"

// Method is the payment rail for a checkout attempt. The two rails carry
// different backend contracts: card payments go to the generic checkout
// endpoint and come back with a redirect URL, while transfer-like payments
// (bank transfer, wallet) go to the dedicated transfer endpoint and come
// back with an order id the shopper pays against manually.
type Method string

const (
	MethodCard     Method = "card"
	MethodTransfer Method = "transfer"
)

// ParseMethod validates a payment method string from the client
func ParseMethod(value string) (Method, error) {
	switch Method(value) {
	case MethodCard, MethodTransfer:
		return Method(value), nil
	default:
		return "", fmt.Errorf("unsupported payment method %q", value)
	}
}

// UsesCardRail reports whether the method submits to the generic checkout
// endpoint. Every non-card method rides the transfer rail.
func (m Method) UsesCardRail() bool {
	return m == MethodCard
}

func (m Method) String() string {
	return string(m)
}
