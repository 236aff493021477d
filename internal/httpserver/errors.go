package httpserver

import (
	"errors"
	"net/http"

	"coffee-storefront/internal/contentful"
	"coffee-storefront/internal/domain"
	"coffee-storefront/internal/shopify"
	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error      string              `json:"error"`
	UserErrors []shopify.UserError `json:"userErrors,omitempty"`
	Cart       *domain.CartState   `json:"cart,omitempty"`
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCheckoutUnavailable):
		return http.StatusConflict
	case errors.Is(err, contentful.ErrPreviewDisabled):
		return http.StatusForbidden
	case errors.Is(err, shopify.ErrTransport),
		errors.Is(err, shopify.ErrMalformedResponse),
		errors.Is(err, shopify.ErrRemoteValidation),
		errors.Is(err, contentful.ErrTransport),
		errors.Is(err, contentful.ErrMalformedResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err to a status and JSON body. state, when given, is
// returned so the client keeps rendering the cart next to the error.
func writeError(c *gin.Context, err error, state *domain.CartState) {
	_ = c.Error(err)
	status := statusFor(err)
	resp := errorResponse{Error: err.Error(), Cart: state}
	if status == http.StatusInternalServerError {
		resp.Error = "internal error"
	}
	var userErrs shopify.UserErrors
	if errors.As(err, &userErrs) {
		resp.UserErrors = userErrs
	}
	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func notFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: what + " not found"})
}
