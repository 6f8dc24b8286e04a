package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warungku/warung/app/models"
	"github.com/warungku/warung/internal/server"
	"github.com/warungku/warung/pkg/database"
)

func setupAPI(t *testing.T) http.Handler {
	t.Helper()
	require.NoError(t, database.ConnectDSN("sqlite", ":memory:"))
	require.NoError(t, database.DB.AutoMigrate(
		&models.User{}, &models.Store{}, &models.Product{},
		&models.Order{}, &models.OrderItem{},
	))
	return server.NewRouter().Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func dataOf(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	return envelope.Data
}

// registerSeller walks the seller onboarding flow over HTTP and returns the
// access token and store slug.
func registerSeller(t *testing.T, h http.Handler) (token, slug string) {
	t.Helper()

	rec := doJSON(t, h, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"name": "Bu Tini", "email": "tini@warung.test", "password": "rahasia-banget",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "tini@warung.test", "password": "rahasia-banget",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	token = dataOf(t, rec)["access_token"].(string)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/seller/store", token, map[string]string{
		"name": "Warung Bu Tini", "location": "Jl. Melati No. 3",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	slug = dataOf(t, rec)["slug"].(string)

	return token, slug
}

func TestPlaceOrderEndToEnd(t *testing.T) {
	h := setupAPI(t)
	token, slug := registerSeller(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/seller/products", token, map[string]interface{}{
		"name": "Nasi Goreng", "price": 15000, "stock_quantity": 5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	productID := uint(dataOf(t, rec)["ID"].(float64))

	// Anonymous customer browses the storefront.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/stores/"+slug, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// ...and places an order.
	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/stores/%s/orders", slug), "", map[string]interface{}{
		"customer_name":  "Andi",
		"customer_phone": "+62811111111",
		"pickup_time":    time.Now().Add(time.Hour).Format(time.RFC3339),
		"lines":          []map[string]interface{}{{"product_id": productID, "quantity": 2}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	data := dataOf(t, rec)
	assert.EqualValues(t, 30000, data["total_amount_gross"])
	code := data["order_code"].(string)
	assert.NotEmpty(t, code)

	// Customer tracks by code, no auth.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/orders/"+code, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// Seller sees it in their list.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/seller/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPlaceOrderValidation(t *testing.T) {
	h := setupAPI(t)
	_, slug := registerSeller(t, h)

	rec := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/stores/%s/orders", slug), "", map[string]interface{}{
		"customer_phone": "+62811111111",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestPlaceOrderInsufficientStockConflict(t *testing.T) {
	h := setupAPI(t)
	token, slug := registerSeller(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/seller/products", token, map[string]interface{}{
		"name": "Es Teh", "price": 5000, "stock_quantity": 1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	productID := uint(dataOf(t, rec)["ID"].(float64))

	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/stores/%s/orders", slug), "", map[string]interface{}{
		"customer_name":  "Andi",
		"customer_phone": "+62811111111",
		"pickup_time":    time.Now().Add(time.Hour).Format(time.RFC3339),
		"lines":          []map[string]interface{}{{"product_id": productID, "quantity": 2}},
	})
	assert.Equal(t, http.StatusConflict, rec.Code, rec.Body.String())
}

func TestSellerRoutesRequireAuth(t *testing.T) {
	h := setupAPI(t)

	for _, path := range []string{
		"/api/v1/seller/store",
		"/api/v1/seller/products",
		"/api/v1/seller/orders",
		"/api/v1/seller/dashboard",
	} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestUnknownStoreIs404(t *testing.T) {
	h := setupAPI(t)
	rec := doJSON(t, h, http.MethodGet, "/api/v1/stores/tidak-ada", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDashboardStats(t *testing.T) {
	h := setupAPI(t)
	token, slug := registerSeller(t, h)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/seller/products", token, map[string]interface{}{
		"name": "Nasi Goreng", "price": 10000, "stock_quantity": 3,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	productID := uint(dataOf(t, rec)["ID"].(float64))

	rec = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/v1/stores/%s/orders", slug), "", map[string]interface{}{
		"customer_name":  "Andi",
		"customer_phone": "+62811111111",
		"pickup_time":    time.Now().Add(time.Hour).Format(time.RFC3339),
		"lines":          []map[string]interface{}{{"product_id": productID, "quantity": 1}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := uint(dataOf(t, rec)["ID"].(float64))

	// Revenue only counts completed pickups.
	rec = doJSON(t, h, http.MethodGet, "/api/v1/seller/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	stats := dataOf(t, rec)
	assert.EqualValues(t, 1, stats["total_orders"])
	assert.EqualValues(t, 0, stats["revenue_gross"])

	for _, status := range []string{"PREPARING", "READY_FOR_PICKUP", "COMPLETED"} {
		rec = doJSON(t, h, http.MethodPatch,
			fmt.Sprintf("/api/v1/seller/orders/%d/status", orderID), token,
			map[string]string{"status": status})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = doJSON(t, h, http.MethodGet, "/api/v1/seller/dashboard", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats = dataOf(t, rec)
	assert.EqualValues(t, 10000, stats["revenue_gross"])
}
