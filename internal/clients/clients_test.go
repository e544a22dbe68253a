package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backoffice/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestAPI(t *testing.T, handler http.HandlerFunc) *APIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewAPIClient(srv.URL+"/", 5*time.Second, testLogger())
}

func TestProductClient_ListShapes(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantLen   int
		wantPages int
	}{
		{"envelope", `{"products":[{"_id":"p1","name":"Hoodie","price":30}],"totalPages":3}`, 1, 3},
		{"envelope without pages", `{"products":[{"_id":"p1"},{"_id":"p2"}]}`, 2, 1},
		{"bare array", `[{"_id":"p1"}]`, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPage, gotLimit string
			api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/products", r.URL.Path)
				gotPage = r.URL.Query().Get("page")
				gotLimit = r.URL.Query().Get("limit")
				w.Write([]byte(tt.body))
			})

			page, err := NewProductClient(api, testLogger()).ListProducts(context.Background(), 2, 10)
			require.NoError(t, err)

			assert.Equal(t, "2", gotPage)
			assert.Equal(t, "10", gotLimit)
			assert.Len(t, page.Products, tt.wantLen)
			assert.Equal(t, tt.wantPages, page.TotalPages)
		})
	}
}

func TestProductClient_CreateSendsNumbers(t *testing.T) {
	var payload map[string]any
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"_id":"p9","name":"Hoodie"}`))
	})

	created, err := NewProductClient(api, testLogger()).CreateProduct(context.Background(), &domain.Product{
		Name:          "Hoodie",
		Price:         decimal.RequireFromString("30.5"),
		DiscountPrice: domain.NewAmount(decimal.RequireFromString("25")),
		IsPromo:       true,
		Quantity:      2,
		Category:      domain.CategoryRefs{"c1"},
	})
	require.NoError(t, err)

	assert.Equal(t, "p9", created.ID)
	assert.Equal(t, 30.5, payload["price"])
	assert.Equal(t, 25.0, payload["discountPrice"])
	assert.Equal(t, []any{"c1"}, payload["category"])
	assert.NotContains(t, payload, "_id")
}

func TestAPIClient_ErrorStatus(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Category not found"}`))
	})

	_, err := NewCategoryClient(api, testLogger()).GetCategory(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Category not found", apiErr.Message)
}

func TestAPIClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	api := NewAPIClient(srv.URL, time.Second, testLogger())

	_, err := NewUserClient(api, testLogger()).ListUsers(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestAPIClient_EmptyBodyOnDelete(t *testing.T) {
	var method, path string
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := NewCategoryClient(api, testLogger()).DeleteCategory(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, method)
	assert.Equal(t, "/api/category/c1", path)
}

func TestOrderClient_Lookup(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/orders/o1":
			w.Write([]byte(`{"_id":"o1","items":[],"totalAmount":12}`))
		case "/api/orders/u1":
			w.Write([]byte(` [{"_id":"o2"},{"_id":"o3"}]`))
		default:
			http.NotFound(w, r)
		}
	})
	client := NewOrderClient(api, testLogger())

	single, err := client.LookupOrders(context.Background(), "o1")
	require.NoError(t, err)
	require.NotNil(t, single.Order)
	assert.Equal(t, "o1", single.Order.ID)
	assert.Nil(t, single.Orders)

	byUser, err := client.LookupOrders(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, byUser.Order)
	assert.Len(t, byUser.Orders, 2)
}

func TestUserClient_UpdateUsesPut(t *testing.T) {
	var method string
	var payload map[string]any
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"_id":"u1"}`))
	})

	_, err := NewUserClient(api, testLogger()).UpdateUser(context.Background(), "u1", &domain.User{
		FirstName: "Ana",
		Credits:   domain.NewAmount(decimal.NewFromInt(4)),
	})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "Ana", payload["firstName"])
	assert.Equal(t, 4.0, payload["credits"])
	assert.NotContains(t, payload, "password")
}
