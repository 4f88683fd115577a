package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/debate"
	"github.com/debatelab/agora/pkg/services"
)

// serviceErrorStatus maps service-layer errors to an HTTP status and message.
func serviceErrorStatus(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	var cfgErr *config.ValidationError
	if errors.As(err, &cfgErr) {
		return http.StatusBadRequest, cfgErr.Error()
	}
	if debate.IsInvalidIntervention(err) {
		return http.StatusBadRequest, err.Error()
	}
	if errors.Is(err, services.ErrNotFound) || errors.Is(err, debate.ErrNotFound) {
		return http.StatusNotFound, "resource not found"
	}
	if errors.Is(err, services.ErrNotRunning) {
		return http.StatusConflict, "debate is not running on this replica"
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, "resource already exists"
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		return http.StatusConflict, "debate was modified concurrently"
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

// respondServiceError writes the mapped error response and aborts the chain.
func respondServiceError(c *gin.Context, err error) {
	status, msg := serviceErrorStatus(err)
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
