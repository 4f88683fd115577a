package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/services"
)

func TestServiceErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error",
			err:        services.NewValidationError("proposition", "required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "config validation error",
			err:        config.NewValidationError("brevity", "must be in 1..5"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrapped validation error",
			err:        fmt.Errorf("creating debate: %w", services.NewValidationError("mode", "invalid")),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found",
			err:        services.ErrNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "not running",
			err:        services.ErrNotRunning,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "concurrent modification",
			err:        services.ErrConcurrentModification,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error",
			err:        errors.New("disk on fire"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := serviceErrorStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}

	t.Run("internal errors are not leaked", func(t *testing.T) {
		_, msg := serviceErrorStatus(errors.New("pq: relation debates does not exist"))
		assert.Equal(t, "internal server error", msg)
	})
}
