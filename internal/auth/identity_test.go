package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LiftsIdentityHeaders(t *testing.T) {
	var got Identity
	var found bool

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPatch, "/orders/1", nil)
	req.Header.Set("X-Customer-Id", "42")
	req.Header.Set("X-Is-Manager", "true")

	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, found)
	assert.Equal(t, 42, got.CustomerID)
	assert.True(t, got.IsManager)
	assert.False(t, got.IsAdmin)
}

func TestMiddleware_ZeroIdentityWithoutHeaders(t *testing.T) {
	var got Identity
	var found bool

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = FromContext(r.Context())
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/orders/1", nil))

	assert.True(t, found)
	assert.Equal(t, Identity{}, got)
}
