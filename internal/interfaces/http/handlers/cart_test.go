// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
)

// memStorage is an in-memory cart.Storage for handler tests
type memStorage struct {
	data map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{data: map[string][]byte{}}
}

func (m *memStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return data, nil
}

func (m *memStorage) Save(ctx context.Context, key string, data []byte) error {
	m.data[key] = data
	return nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

// stubCatalog serves a fixed product set without an upstream API
type stubCatalog struct {
	products map[string]catalog.Product
}

func (s *stubCatalog) Product(ctx context.Context, id string) (*catalog.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &product, nil
}

func (s *stubCatalog) Products(ctx context.Context, query catalog.Query) ([]catalog.Product, error) {
	out := make([]catalog.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	return out, nil
}

const testSessionID = "test-session"

func fixedSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session_id", testSessionID)
		c.Next()
	}
}

func intPtr(n int) *int {
	return &n
}

func cartTestRouter(storage cart.Storage, products map[string]catalog.Product) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewCartHandler(storage, &stubCatalog{products: products}, &config.Config{})

	router := gin.New()
	router.Use(fixedSession())
	router.GET("/cart", handler.GetCart)
	router.GET("/cart/count", handler.GetCartCount)
	router.POST("/cart/items", handler.AddItem)
	router.PUT("/cart/items/:id", handler.UpdateItem)
	router.DELETE("/cart/items/:id", handler.RemoveItem)
	router.DELETE("/cart", handler.ClearCart)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

func defaultProducts() map[string]catalog.Product {
	return map[string]catalog.Product{
		"p1": {ID: "p1", Name: "Yerba Mate 1kg", Price: "100", Stock: intPtr(5)},
		"p2": {ID: "p2", Name: "Bombilla", Price: "19.99"},
	}
}

func TestGetCartEmpty(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	rec := doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Empty(t, data["items"])
}

func TestAddItemAndGetCart(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	rec := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	items := data["items"].([]any)
	require.Len(t, items, 1)

	totals := data["totals"].(map[string]any)
	assert.Equal(t, float64(2), totals["total_quantity"])
	assert.Equal(t, "200", totals["subtotal"])
}

func TestAddItemUnknownProduct(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	rec := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "ghost", "quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddItemMalformedBody(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	rec := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "quantity": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemStockConflict(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	rec := doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "quantity": 9})
	require.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(5), body["available"])
}

func TestUpdateItemQuantity(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "quantity": 2})

	rec := doJSON(t, router, http.MethodPut, "/cart/items/p1", gin.H{"quantity": 4})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/cart/count", nil)
	data := decodeData(t, rec)
	assert.Equal(t, float64(4), data["count"])
}

func TestUpdateItemNotInCart(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	rec := doJSON(t, router, http.MethodPut, "/cart/items/p1", gin.H{"quantity": 1})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRemoveItemEndpoint(t *testing.T) {
	router := cartTestRouter(newMemStorage(), defaultProducts())

	doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "quantity": 2})

	rec := doJSON(t, router, http.MethodDelete, "/cart/items/p1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Empty(t, data["items"])

	// Removing it again is still a success
	rec = doJSON(t, router, http.MethodDelete, "/cart/items/p1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClearCartEndpoint(t *testing.T) {
	storage := newMemStorage()
	router := cartTestRouter(storage, defaultProducts())

	doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p1", "quantity": 2})
	doJSON(t, router, http.MethodPost, "/cart/items", gin.H{"product_id": "p2", "quantity": 1})

	rec := doJSON(t, router, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/cart", nil)
	data := decodeData(t, rec)
	assert.Empty(t, data["items"])
}

func TestGetCartClearsCorruptedSnapshot(t *testing.T) {
	storage := newMemStorage()
	storage.data[cart.SessionKey(testSessionID)] = []byte(`{"items":[{"product":null,"quantity":3}]}`)

	router := cartTestRouter(storage, defaultProducts())

	rec := doJSON(t, router, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData(t, rec)
	assert.Empty(t, data["items"], "a corrupted cart is cleared wholesale, never partially repaired")
}
