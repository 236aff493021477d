package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"coffee-storefront/internal/domain"
	"coffee-storefront/internal/service/cart"
	"coffee-storefront/internal/service/visitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWholesaleCreated(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/wholesale", map[string]string{
		"businessName": "Corner Cafe",
		"contactName":  "Sam Lee",
		"email":        "sam@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"wholesale"`)
}

func TestContactInvalidJSON(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/contact", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactValidationError(t *testing.T) {
	env := newTestEnv(t)
	deps := Deps{
		Catalog:   env.catalog,
		Content:   env.content,
		Carts:     cart.NewRegistry(env.store, env.remote, zap.NewNop()),
		Inquiries: stubInquiries{err: fmt.Errorf("%w: email is invalid", domain.ErrInvalidInput)},
		Visitors:  visitor.New(0),
	}
	router, err := buildRouter(nil, deps, Options{})
	require.NoError(t, err)
	env.router = router

	w := env.do(t, http.MethodPost, "/api/contact", map[string]string{"email": "nope"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "email is invalid")
}
