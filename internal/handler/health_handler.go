package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	service string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

// RegisterRoutes registers the probe routes.
func (h *HealthHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/ready", h.Ready)
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": h.service})
}

// Ready handles GET /ready. The coverage dataset and pricing table are
// loaded before the server starts, so reaching this handler means ready.
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready", "service": h.service})
}
