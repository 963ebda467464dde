// internal/domain/checkout/errors.go
package checkout

import "fmt"

// The checkout failure taxonomy. Every failure a caller can see is one of
// these types; errors.As at the HTTP boundary maps them to responses.
//
//   - ValidationError: local guard failed, no network call was made
//   - TransportError: no usable response (connection failure or timeout)
//   - ServerError: the gateway answered with a non-2xx status
//   - ContractError: a 2xx response missing the field the rail requires
//
// Validation and not-found conditions are recoverable by the user; the
// other three are retryable without touching the cart.

// ValidationError reports a local guard failure, identifying the offending
// field or item so the UI can point at it.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TransportError wraps a network failure or timeout during submission. No
// response was received, so the order may or may not exist upstream.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("no response from payment gateway: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError reports a non-2xx gateway response
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("payment gateway rejected the request with status %d", e.StatusCode)
}

// ContractError reports a 2xx response that omitted the field the chosen
// payment rail requires. Never treated as success: it indicates a backend
// version mismatch rather than a network condition, and is logged as such.
type ContractError struct {
	StatusCode   int
	MissingField string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("payment gateway response (status %d) missing required field %q", e.StatusCode, e.MissingField)
}

// Retryable reports whether a failed attempt may simply be retried. All
// submission failures are retryable; validation failures need user input
// first.
func Retryable(err error) bool {
	switch err.(type) {
	case *TransportError, *ServerError, *ContractError:
		return true
	default:
		return false
	}
}
