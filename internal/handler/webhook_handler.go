package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anees-health/service-booking/internal/application"
	"github.com/anees-health/service-booking/internal/response"
)

// WebhookHandler handles inbound payment-gateway notifications.
type WebhookHandler struct {
	service *application.BookingService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(service *application.BookingService) *WebhookHandler {
	return &WebhookHandler{service: service}
}

// RegisterRoutes registers the webhook route on the given router group.
func (h *WebhookHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/api/v1/payments/kashier/webhook", h.KashierWebhook)
}

// KashierWebhook handles POST /api/v1/payments/kashier/webhook. Kashier
// sends the payment outcome as query parameters with an HMAC signature;
// the signature is verified before any parameter is trusted.
func (h *WebhookHandler) KashierWebhook(c *gin.Context) {
	query := c.Request.URL.Query()

	params := make(map[string]string, len(query))
	for key, values := range query {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	signature := params["signature"]
	delete(params, "signature")

	if err := h.service.ProcessPaymentWebhook(c.Request.Context(), params, signature); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": "processed"})
}
