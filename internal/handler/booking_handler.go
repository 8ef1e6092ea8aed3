package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/anees-health/service-booking/internal/application"
	"github.com/anees-health/service-booking/internal/domain/booking"
	"github.com/anees-health/service-booking/internal/response"
)

// BookingHandler handles HTTP requests for booking quotes and submissions.
type BookingHandler struct {
	service *application.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(service *application.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// RegisterRoutes registers booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/api/v1/bookings")
	{
		bookings.POST("/quote", h.Quote)
		bookings.POST("", h.Submit)
	}
}

// Quote handles POST /api/v1/bookings/quote: validate the selection and
// return the price without minting an order.
func (h *BookingHandler) Quote(c *gin.Context) {
	var sel booking.BookingSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	quote, fieldErrs := h.service.QuoteBooking(sel)
	if len(fieldErrs) > 0 {
		response.ValidationFailed(c, fieldErrs)
		return
	}

	response.Success(c, quote)
}

// Submit handles POST /api/v1/bookings: validate, price, mint an order ID
// and hand back the payment redirect.
func (h *BookingHandler) Submit(c *gin.Context) {
	var sel booking.BookingSelection
	if err := c.ShouldBindJSON(&sel); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, fieldErrs, err := h.service.SubmitBooking(c.Request.Context(), sel)
	if len(fieldErrs) > 0 {
		response.ValidationFailed(c, fieldErrs)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}
