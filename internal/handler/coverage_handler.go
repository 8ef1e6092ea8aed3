package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anees-health/service-booking/internal/application"
	"github.com/anees-health/service-booking/internal/domain/coverage"
	"github.com/anees-health/service-booking/internal/response"
)

// CoverageHandler handles HTTP requests for coverage queries.
type CoverageHandler struct {
	service *application.CoverageService
}

// NewCoverageHandler creates a new CoverageHandler.
func NewCoverageHandler(service *application.CoverageService) *CoverageHandler {
	return &CoverageHandler{service: service}
}

// RegisterRoutes registers coverage routes on the given router group.
func (h *CoverageHandler) RegisterRoutes(r *gin.RouterGroup) {
	cov := r.Group("/api/v1/coverage")
	{
		cov.GET("/zones", h.ListZones)
		cov.POST("/check", h.Check)
	}
}

// checkRequest accepts either a coordinate pair (as floating-point strings,
// matching the form layer) or a free-text zone name.
type checkRequest struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Zone      string `json:"zone"`
}

// Check handles POST /api/v1/coverage/check.
func (h *CoverageHandler) Check(c *gin.Context) {
	var req checkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var (
		result coverage.CoverageResult
		err    error
	)

	switch {
	case strings.TrimSpace(req.Zone) != "":
		result, err = h.service.CheckZone(req.Zone)

	case req.Latitude != "" || req.Longitude != "":
		lat, latErr := strconv.ParseFloat(strings.TrimSpace(req.Latitude), 64)
		lng, lngErr := strconv.ParseFloat(strings.TrimSpace(req.Longitude), 64)
		if latErr != nil || lngErr != nil || math.IsNaN(lat) || math.IsNaN(lng) {
			response.BadRequest(c, "latitude and longitude must be valid numbers")
			return
		}
		result, err = h.service.CheckPoint(lat, lng)

	default:
		response.BadRequest(c, "either coordinates or a zone name is required")
		return
	}

	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"covered": result.Covered,
		"area":    result.Area,
		"message": result.Message,
	})
}

// ListZones handles GET /api/v1/coverage/zones.
func (h *CoverageHandler) ListZones(c *gin.Context) {
	response.Success(c, gin.H{"zones": h.service.ListZones()})
}
