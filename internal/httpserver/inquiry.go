package httpserver

import (
	"net/http"

	"coffee-storefront/internal/service/inquiry"
	"github.com/gin-gonic/gin"
)

type inquiryHandlers struct {
	svc inquiryService
}

func (h inquiryHandlers) wholesale(c *gin.Context) {
	var in inquiry.WholesaleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	saved, err := h.svc.SubmitWholesale(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h inquiryHandlers) contact(c *gin.Context) {
	var in inquiry.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid json body")
		return
	}
	saved, err := h.svc.SubmitContact(c.Request.Context(), in)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, saved)
}
