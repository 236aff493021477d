package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"coffee-storefront/internal/repository/session"
	"coffee-storefront/internal/shopify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartBody struct {
	Lines []struct {
		VariantID string `json:"variantId"`
		Quantity  int    `json:"quantity"`
	} `json:"lines"`
	CheckoutID     *string `json:"checkoutId"`
	CheckoutURL    *string `json:"checkoutUrl"`
	TotalItemCount int     `json:"totalItemCount"`
}

type cartErrorBody struct {
	Error      string              `json:"error"`
	UserErrors []shopify.UserError `json:"userErrors"`
	Cart       *cartBody           `json:"cart"`
}

func addBody(variant string, qty int) map[string]interface{} {
	return map[string]interface{}{
		"variantId": variant,
		"productId": "p-1",
		"title":     "Ethiopia Guji",
		"price":     "22.00",
		"quantity":  qty,
	}
}

func TestCartAddItemCreatesCheckout(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 2))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body cartBody
	decode(t, w, &body)
	require.Len(t, body.Lines, 1)
	assert.Equal(t, 2, body.TotalItemCount)
	require.NotNil(t, body.CheckoutID)
	assert.Equal(t, "gid://shopify/Checkout/1", *body.CheckoutID)
	require.NotNil(t, body.CheckoutURL)

	sid := w.Result().Cookies()[0].Value
	entries, err := env.store.Load(t.Context(), sid)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/Checkout/1", entries[session.KeyCheckoutID])
	assert.Contains(t, entries[session.KeyCartItems], "v-1")
}

func TestCartAddItemRemoteFailureKeepsLine(t *testing.T) {
	env := newTestEnv(t)
	env.remote.err = fmt.Errorf("%w: status 503", shopify.ErrTransport)

	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body cartErrorBody
	decode(t, w, &body)
	require.NotNil(t, body.Cart)
	require.Len(t, body.Cart.Lines, 1)
	assert.Equal(t, "v-1", body.Cart.Lines[0].VariantID)
	assert.Nil(t, body.Cart.CheckoutID)
}

func TestCartAddItemUserErrors(t *testing.T) {
	env := newTestEnv(t)
	env.remote.err = shopify.UserErrors{{Field: []string{"lineItems", "0", "variantId"}, Message: "is invalid"}}

	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	require.Equal(t, http.StatusBadGateway, w.Code)

	var body cartErrorBody
	decode(t, w, &body)
	require.Len(t, body.UserErrors, 1)
	assert.Equal(t, "is invalid", body.UserErrors[0].Message)
}

func TestCartAddItemValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("", 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", -2))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartSetQuantityAndRemove(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	require.Equal(t, http.StatusOK, w.Code)
	cookie := w.Result().Cookies()[0]

	w = env.do(t, http.MethodPut, "/api/cart/items/v-1", map[string]int{"quantity": 5}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var body cartBody
	decode(t, w, &body)
	assert.Equal(t, 5, body.TotalItemCount)

	w = env.do(t, http.MethodPut, "/api/cart/items/v-1", map[string]string{}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodDelete, "/api/cart/items/v-1", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	body = cartBody{}
	decode(t, w, &body)
	assert.Empty(t, body.Lines)
	assert.Equal(t, 0, body.TotalItemCount)
}

func TestCartClear(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	cookie := w.Result().Cookies()[0]

	w = env.do(t, http.MethodDelete, "/api/cart", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var body cartBody
	decode(t, w, &body)
	assert.Empty(t, body.Lines)
	assert.Nil(t, body.CheckoutID)

	entries, err := env.store.Load(t.Context(), cookie.Value)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCartCheckoutUnavailable(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCartCheckoutRedirect(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	cookie := w.Result().Cookies()[0]

	w = env.do(t, http.MethodPost, "/api/cart/checkout", nil, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://shop.example.com/checkouts/1", w.Header().Get("Location"))

	w = env.do(t, http.MethodPost, "/api/cart/checkout?format=json", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"checkoutUrl":"https://shop.example.com/checkouts/1"}`, w.Body.String())
}

func TestCartCheckoutSyncFailure(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	cookie := w.Result().Cookies()[0]
	w = env.do(t, http.MethodPut, "/api/cart/items/v-1", map[string]int{"quantity": 3}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	env.remote.err = fmt.Errorf("%w: connection reset", shopify.ErrTransport)
	w = env.do(t, http.MethodPost, "/api/cart/checkout", nil, cookie)
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Empty(t, w.Header().Get("Location"))

	env.remote.err = nil
	w = env.do(t, http.MethodPost, "/api/cart/checkout", nil, cookie)
	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestCartApplyDiscount(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/cart/discount", map[string]string{"code": "WELCOME10"})
	assert.Equal(t, http.StatusConflict, w.Code, "no checkout yet")

	w = env.do(t, http.MethodPost, "/api/cart/items", addBody("v-1", 1))
	cookie := w.Result().Cookies()[0]

	w = env.do(t, http.MethodPost, "/api/cart/discount", map[string]string{"code": " "}, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/cart/discount", map[string]string{"code": "WELCOME10"}, cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	env.remote.discount = shopify.UserErrors{{Field: []string{"discountCode"}, Message: "Unable to find a valid discount"}}
	w = env.do(t, http.MethodPost, "/api/cart/discount", map[string]string{"code": "BOGUS"}, cookie)
	require.Equal(t, http.StatusBadGateway, w.Code)
	var body cartErrorBody
	decode(t, w, &body)
	require.NotNil(t, body.Cart)
	assert.Len(t, body.Cart.Lines, 1)
	require.Len(t, body.UserErrors, 1)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
	assert.Equal(t, http.StatusBadGateway, statusFor(fmt.Errorf("wrap: %w", shopify.ErrMalformedResponse)))
}
