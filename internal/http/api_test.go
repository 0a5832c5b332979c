package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopfront/internal/catalog"
	"shopfront/internal/notify"
	"shopfront/internal/service"
	"shopfront/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	adapter := store.NewAdapter(store.NewMemory(), logger)
	cat := catalog.New()

	cartService := service.NewCartService(adapter, cat, notify.Nop{}, notify.Nop{}, service.DefaultCheckoutConfig(), logger)
	sessionService := service.NewSessionService(adapter, logger)

	router := gin.New()
	handler := NewHandler(cat, cartService, sessionService, NewTokenIssuer("test-secret", time.Minute))
	handler.RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products := decodeBody[[]ProductResponse](t, w)
	assert.Len(t, products, 12)

	w = doJSON(t, router, http.MethodGet, "/api/products?category=sports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products = decodeBody[[]ProductResponse](t, w)
	require.NotEmpty(t, products)
	for _, p := range products {
		assert.Equal(t, "sports", p.Category)
	}

	w = doJSON(t, router, http.MethodGet, "/api/products?q=macbook", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products = decodeBody[[]ProductResponse](t, w)
	require.Len(t, products, 1)
	assert.Equal(t, "MacBook Air M2", products[0].Name)

	w = doJSON(t, router, http.MethodGet, "/api/products?featured=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	products = decodeBody[[]ProductResponse](t, w)
	for _, p := range products {
		assert.True(t, p.Featured)
	}
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/products/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	product := decodeBody[ProductResponse](t, w)
	assert.Equal(t, "Nike Air Max 270", product.Name)

	w = doJSON(t, router, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", addCartItemRequest{ProductID: 1})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/cart/items", addCartItemRequest{ProductID: 1})
	require.Equal(t, http.StatusCreated, w.Code)
	line := decodeBody[CartLineResponse](t, w)
	assert.Equal(t, 2, line.Quantity)

	qty := 5
	w = doJSON(t, router, http.MethodPatch, "/api/cart/items/1", setQuantityRequest{Quantity: &qty})
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeBody[CartResponse](t, w)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.InDelta(t, 999.99*5, cart.Total, 1e-9)

	w = doJSON(t, router, http.MethodGet, "/api/cart/badge", nil)
	require.Equal(t, http.StatusOK, w.Code)
	badge := decodeBody[notify.Badge](t, w)
	assert.Equal(t, 5, badge.Count)

	w = doJSON(t, router, http.MethodDelete, "/api/cart/items/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart = decodeBody[CartResponse](t, w)
	assert.Empty(t, cart.Lines)
	assert.Zero(t, cart.Total)
}

func TestAddUnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/items", addCartItemRequest{ProductID: 999})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutAndPlaceOrder(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/cart/checkout", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/cart/items", addCartItemRequest{ProductID: 6})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/cart/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)
	summary := decodeBody[OrderSummaryResponse](t, w)
	assert.Equal(t, 45.00, summary.Subtotal)
	assert.Equal(t, 10.00, summary.Shipping)

	w = doJSON(t, router, http.MethodPost, "/api/orders", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decodeBody[OrderResponse](t, w)
	assert.NotEmpty(t, order.ID)

	w = doJSON(t, router, http.MethodGet, "/api/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cart := decodeBody[CartResponse](t, w)
	assert.Empty(t, cart.Lines)
}

func TestAuthFlow(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/auth/register", registerRequest{
		Email: "alice@example.com", Password: "secret123", Name: "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	auth := decodeBody[authResponse](t, w)
	assert.NotEmpty(t, auth.Token)
	assert.Equal(t, "alice@example.com", auth.User.Email)

	w = doJSON(t, router, http.MethodPost, "/api/auth/register", registerRequest{
		Email: "alice@example.com", Password: "other", Name: "Alice Again",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/login", loginRequest{
		Email: "alice@example.com", Password: "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decodeBody[map[string]UserResponse](t, w)
	assert.Equal(t, "Alice", me["user"].Name)

	w = doJSON(t, router, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user":null}`, w.Body.String())
}

func TestOrdersRequireToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil, "Authorization", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/auth/register", registerRequest{
		Email: "alice@example.com", Password: "secret123", Name: "Alice",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	auth := decodeBody[authResponse](t, w)

	w = doJSON(t, router, http.MethodPost, "/api/cart/items", addCartItemRequest{ProductID: 9})
	require.Equal(t, http.StatusCreated, w.Code)
	w = doJSON(t, router, http.MethodPost, "/api/orders", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil, "Authorization", "Bearer "+auth.Token)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decodeBody[[]OrderResponse](t, w)
	assert.Len(t, orders, 1)
}
