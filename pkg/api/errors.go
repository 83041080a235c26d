package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kirizan/kitt-sub000/pkg/dispatch"
	"github.com/Kirizan/kitt-sub000/pkg/services"
)

// mapServiceError translates service-layer errors to HTTP responses and
// aborts the request.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	switch {
	case errors.As(err, &validErr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	case errors.Is(err, services.ErrConflict):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "conflicting state transition"})
	case errors.Is(err, services.ErrAgentBusy):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "agent busy"})
	case errors.Is(err, services.ErrUnauthorized):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
	case errors.Is(err, dispatch.ErrFull):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "command queue full"})
	default:
		slog.Error("unexpected service error", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
