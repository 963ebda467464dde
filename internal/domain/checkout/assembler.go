// internal/domain/checkout/assembler.go
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// State tracks where a checkout attempt is in its lifecycle
type State string

const (
	StateIdle             State = "idle"
	StateValidating       State = "validating"
	StateSubmitting       State = "submitting"
	StateAwaitingResponse State = "awaiting_response"
	StateSucceeded        State = "succeeded"
	StateFailed           State = "failed"
)

// Result is the outcome of a successful checkout attempt. RedirectURL is
// set on the card rail, OrderID on the transfer rail.
type Result struct {
	Method      Method `json:"method"`
	RedirectURL string `json:"redirect_url,omitempty"`
	OrderID     string `json:"order_id,omitempty"`
}

// Assembler turns a cart snapshot plus the shopper's selections into one
// gateway submission. It never mutates the cart: clearing after a confirmed
// order is the caller's explicit step.
type Assembler struct {
	gatewayURL string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewAssembler creates a new checkout assembler
func NewAssembler(cfg *config.Config, logger *logrus.Logger) *Assembler {
	return &Assembler{
		gatewayURL: cfg.Checkout.GatewayBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Checkout.SubmitTimeout,
		},
		logger: logger,
	}
}

// Attempt is a single checkout attempt. The cart is snapshotted when the
// attempt is created and never re-read: edits made while a submission is in
// flight only affect the next attempt.
type Attempt struct {
	assembler *Assembler
	items     []cart.LineItem
	sel       Selections
	state     State
}

// NewAttempt snapshots the cart and selections for one submission
func (a *Assembler) NewAttempt(items []cart.LineItem, sel Selections) *Attempt {
	snapshot := make([]cart.LineItem, len(items))
	copy(snapshot, items)

	return &Attempt{
		assembler: a,
		items:     snapshot,
		sel:       sel,
		state:     StateIdle,
	}
}

// State returns the attempt's current lifecycle state
func (at *Attempt) State() State {
	return at.state
}

// Run drives the attempt to a terminal state: validate, assemble the order
// draft, submit it to the rail's endpoint and interpret the response. A
// guard failure returns the attempt to idle without any network call; a
// submission failure leaves the cart untouched and the attempt retryable
// via a fresh Attempt.
func (at *Attempt) Run(ctx context.Context) (*Result, error) {
	at.state = StateValidating
	if err := at.validate(); err != nil {
		at.state = StateIdle
		return nil, err
	}

	at.state = StateSubmitting
	draft, err := buildDraft(at.items, at.sel)
	if err != nil {
		at.state = StateIdle
		return nil, err
	}

	at.state = StateAwaitingResponse
	result, err := at.assembler.submit(ctx, draft)
	if err != nil {
		at.state = StateFailed
		return nil, err
	}

	at.state = StateSucceeded
	return result, nil
}

// validate runs the local guards: customer info present, cart non-empty,
// no line missing its product reference.
func (at *Attempt) validate() error {
	if at.sel.ClientInfo == nil {
		return &ValidationError{Field: "client_info", Message: "customer information is required"}
	}

	if len(at.items) == 0 {
		return &ValidationError{Field: "cart", Message: "cart is empty"}
	}

	for _, item := range at.items {
		if item.Corrupted() {
			return &ValidationError{Field: "cart", Message: "cart contains an invalid item"}
		}
	}

	return nil
}

// submit sends the draft to the rail's endpoint and interprets the outcome
func (a *Assembler) submit(ctx context.Context, draft *OrderDraft) (*Result, error) {
	var endpoint string
	var payload any

	if draft.Method.UsesCardRail() {
		endpoint = a.gatewayURL + "/checkout"
		payload = draft.cardPayload()
	} else {
		endpoint = a.gatewayURL + "/transfer"
		payload = draft.transferPayload()
	}

	a.logger.WithFields(logrus.Fields{
		"payment_method": draft.Method.String(),
		"total_amount":   draft.TotalAmount.String(),
		"line_count":     len(draft.Lines),
	}).Info("Submitting order to payment gateway")

	status, body, err := a.post(ctx, endpoint, payload)
	if err != nil {
		a.logger.WithError(err).Warn("Payment gateway unreachable")
		return nil, &TransportError{Err: err}
	}

	if status < 200 || status > 299 {
		a.logger.WithFields(logrus.Fields{
			"status": status,
		}).Warn("Payment gateway rejected order submission")
		return nil, &ServerError{StatusCode: status, Body: excerpt(body)}
	}

	return a.interpret(draft.Method, status, body)
}

// interpret applies the rail's success contract to a 2xx response
func (a *Assembler) interpret(method Method, status int, body []byte) (*Result, error) {
	if method.UsesCardRail() {
		var resp struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(body, &resp); err != nil || resp.URL == "" {
			a.logContractViolation(method, status, "url")
			return nil, &ContractError{StatusCode: status, MissingField: "url"}
		}

		return &Result{Method: method, RedirectURL: resp.URL}, nil
	}

	var resp struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil || resp.OrderID == "" {
		a.logContractViolation(method, status, "orderId")
		return nil, &ContractError{StatusCode: status, MissingField: "orderId"}
	}

	return &Result{Method: method, OrderID: resp.OrderID}, nil
}

// logContractViolation logs a malformed 2xx response distinctly from
// transport failures: it means a gateway version mismatch, not a bad
// network.
func (a *Assembler) logContractViolation(method Method, status int, field string) {
	a.logger.WithFields(logrus.Fields{
		"contract_violation": true,
		"payment_method":     method.String(),
		"status":             status,
		"missing_field":      field,
	}).Error("Payment gateway response violated the rail contract")
}

// post sends a JSON body and returns the status and raw response
func (a *Assembler) post(ctx context.Context, endpoint string, payload any) (int, []byte, error) {
	reqBody, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to marshal order payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	return resp.StatusCode, body, nil
}

// excerpt bounds a response body for error reporting
func excerpt(body []byte) string {
	const max = 512
	if len(body) > max {
		return string(body[:max])
	}
	return string(body)
}
