package httpserver

import (
	"net/http"

	"coffee-storefront/internal/service/cart"
	"github.com/gin-gonic/gin"
)

type cartHandlers struct {
	carts cartRegistry
}

func (h cartHandlers) coordinator(c *gin.Context) *cart.Coordinator {
	return h.carts.Get(c.Request.Context(), sessionID(c))
}

func (h cartHandlers) get(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator(c).Snapshot())
}

// addItem responds with the cart even when the remote sync fails, so the
// client can keep showing the locally added line.
func (h cartHandlers) addItem(c *gin.Context) {
	var in cart.AddItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	state, err := h.coordinator(c).AddItem(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, &state)
		return
	}
	c.JSON(http.StatusOK, state)
}

type setQuantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h cartHandlers) setQuantity(c *gin.Context) {
	var req setQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		badRequest(c, "quantity is required")
		return
	}
	state := h.coordinator(c).SetQuantity(c.Request.Context(), c.Param("variantId"), *req.Quantity)
	c.JSON(http.StatusOK, state)
}

func (h cartHandlers) removeItem(c *gin.Context) {
	state := h.coordinator(c).RemoveItem(c.Request.Context(), c.Param("variantId"))
	c.JSON(http.StatusOK, state)
}

func (h cartHandlers) clear(c *gin.Context) {
	c.JSON(http.StatusOK, h.coordinator(c).Clear(c.Request.Context()))
}

type discountRequest struct {
	Code string `json:"code"`
}

func (h cartHandlers) applyDiscount(c *gin.Context) {
	var req discountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	state, err := h.coordinator(c).ApplyDiscountCode(c.Request.Context(), req.Code)
	if err != nil {
		writeError(c, err, &state)
		return
	}
	c.JSON(http.StatusOK, state)
}

// checkout syncs pending cart edits, then redirects to the hosted checkout
// page. With format=json the URL is returned in the body instead.
func (h cartHandlers) checkout(c *gin.Context) {
	url, err := h.coordinator(c).BeginCheckout(c.Request.Context())
	if err != nil {
		state := h.coordinator(c).Snapshot()
		writeError(c, err, &state)
		return
	}
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{"checkoutUrl": url})
		return
	}
	c.Redirect(http.StatusSeeOther, url)
}
