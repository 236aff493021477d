package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type catalogHandlers struct {
	svc catalogService
}

// intQuery parses an optional positive integer query parameter. Zero means
// "use the default".
func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		badRequest(c, name+" must be a non-negative integer")
		return 0, false
	}
	return n, true
}

func (h catalogHandlers) listProducts(c *gin.Context) {
	first, ok := intQuery(c, "first")
	if !ok {
		return
	}
	products, err := h.svc.Products(c.Request.Context(), first)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h catalogHandlers) getProduct(c *gin.Context) {
	product, err := h.svc.Product(c.Request.Context(), c.Param("handle"))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	if product == nil {
		notFound(c, "product")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h catalogHandlers) listCollections(c *gin.Context) {
	first, ok := intQuery(c, "first")
	if !ok {
		return
	}
	collections, err := h.svc.Collections(c.Request.Context(), first)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": collections})
}

func (h catalogHandlers) getCollection(c *gin.Context) {
	first, ok := intQuery(c, "first")
	if !ok {
		return
	}
	collection, err := h.svc.Collection(c.Request.Context(), c.Param("handle"), first)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	if collection == nil {
		notFound(c, "collection")
		return
	}
	c.JSON(http.StatusOK, collection)
}

func (h catalogHandlers) featured(c *gin.Context) {
	products, err := h.svc.Featured(c.Request.Context())
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h catalogHandlers) overview(c *gin.Context) {
	first, ok := intQuery(c, "first")
	if !ok {
		return
	}
	out, err := h.svc.Overview(c.Request.Context(), first)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h catalogHandlers) subscriptionPlans(c *gin.Context) {
	groups, err := h.svc.SubscriptionPlans(c.Request.Context())
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sellingPlanGroups": groups})
}
