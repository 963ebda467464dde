// internal/domain/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/your-org/storefront-backend/internal/config"
)

// ErrProductNotFound is returned when the catalog has no product for the id
var ErrProductNotFound = fmt.Errorf("product not found")

// Provider is a read-only lookup into the product catalog. The cart and
// checkout flows only ever read pricing and stock fields from it.
type Provider interface {
	Product(ctx context.Context, id string) (*Product, error)
	Products(ctx context.Context, query Query) ([]Product, error)
}

// Query filters a product listing request
type Query struct {
	CategoryID string
	ColorID    string
	IsFeatured *bool
	HasOffer   *bool
}

// Client is the HTTP implementation of Provider, a plain request/response
// wrapper over the upstream store API with no caching or retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new catalog client
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.Catalog.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Catalog.RequestTimeout,
		},
	}
}

// Product retrieves a single product by id
func (c *Client) Product(ctx context.Context, id string) (*Product, error) {
	if id == "" {
		return nil, ErrProductNotFound
	}

	body, status, err := c.get(ctx, "/products/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	if status == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d for product %s", status, id)
	}

	var product Product
	if err := json.Unmarshal(body, &product); err != nil {
		return nil, fmt.Errorf("failed to parse product response: %w", err)
	}
	if product.ID == "" {
		return nil, ErrProductNotFound
	}

	return &product, nil
}

// Products retrieves a filtered product listing
func (c *Client) Products(ctx context.Context, query Query) ([]Product, error) {
	params := url.Values{}
	if query.CategoryID != "" {
		params.Set("categoryId", query.CategoryID)
	}
	if query.ColorID != "" {
		params.Set("colorId", query.ColorID)
	}
	if query.IsFeatured != nil {
		params.Set("isFeatured", strconv.FormatBool(*query.IsFeatured))
	}
	if query.HasOffer != nil {
		params.Set("hasOffer", strconv.FormatBool(*query.HasOffer))
	}

	body, status, err := c.get(ctx, "/products", params)
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d for product listing", status)
	}

	var products []Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, fmt.Errorf("failed to parse product listing: %w", err)
	}

	return products, nil
}

// get performs a GET request against the catalog API
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, int, error) {
	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("catalog request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read catalog response: %w", err)
	}

	return body, resp.StatusCode, nil
}

var _ Provider = (*Client)(nil)
