// internal/domain/catalog/client_test.go
package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
)

func testClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.Catalog.BaseURL = baseURL
	cfg.Catalog.RequestTimeout = 5 * time.Second
	return NewClient(cfg)
}

func TestProduct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "p1",
			"name": "Yerba Mate 1kg",
			"price": "100",
			"offerPrice": "80",
			"hasOffer": true,
			"stock": 5
		}`))
	}))
	defer srv.Close()

	product, err := testClient(srv.URL).Product(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "p1", product.ID)
	assert.Equal(t, "Yerba Mate 1kg", product.Name)
	assert.Equal(t, "100", product.Price)
	assert.True(t, product.HasOffer)
	require.NotNil(t, product.OfferPrice)
	assert.Equal(t, "80", *product.OfferPrice)
	require.NotNil(t, product.Stock)
	assert.Equal(t, 5, *product.Stock)
}

func TestProductNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Product(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductEmptyID(t *testing.T) {
	_, err := testClient("http://unused").Product(context.Background(), "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductEmptyResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Product(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Product(context.Background(), "p1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrProductNotFound)
}

func TestProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "cat-1", r.URL.Query().Get("categoryId"))
		assert.Equal(t, "true", r.URL.Query().Get("isFeatured"))
		w.Write([]byte(`[{"id":"p1","name":"A","price":"10"},{"id":"p2","name":"B","price":"20"}]`))
	}))
	defer srv.Close()

	featured := true
	products, err := testClient(srv.URL).Products(context.Background(), Query{
		CategoryID: "cat-1",
		IsFeatured: &featured,
	})
	require.NoError(t, err)

	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "20", products[1].Price)
}

func TestProductsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := testClient(srv.URL).Products(context.Background(), Query{})
	assert.Error(t, err)
}
