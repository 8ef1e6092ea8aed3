package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/anees-health/service-booking/internal/domain"
)

// Envelope is the standard JSON response shape.
type Envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Error: message})
}

// Unauthorized writes a 401 response with the given message.
func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, Envelope{Success: false, Error: message})
}

// ValidationFailed writes a 422 response carrying per-field errors.
func ValidationFailed(c *gin.Context, fieldErrors interface{}) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success": false,
		"error":   "validation failed",
		"fields":  fieldErrors,
	})
}

// Error maps a domain error to its HTTP status, defaulting to 500.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if kind, ok := domain.KindOf(err); ok {
		switch kind {
		case domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindNotFound:
			status = http.StatusNotFound
		case domain.KindUnauthorized:
			status = http.StatusUnauthorized
		case domain.KindForbidden:
			status = http.StatusForbidden
		case domain.KindConflict:
			status = http.StatusConflict
		}
	}
	c.JSON(status, Envelope{Success: false, Error: err.Error()})
}
