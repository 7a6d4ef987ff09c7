package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/copymill/copymill/pkg/services"
)

// mapServiceError writes the JSON error response for a service-layer error.
// Transition errors surface their message verbatim so clients see the exact
// "Cannot cancel ..." / "Can only retry ..." strings.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	var transErr *services.TransitionError
	if errors.As(err, &transErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": transErr.Message})
		return
	}

	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}

	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
