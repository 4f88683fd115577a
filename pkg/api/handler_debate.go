package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

// createDebateHandler handles POST /api/v1/debates.
// Creates a debate in "pending" status; a queue worker picks it up.
func (s *Server) createDebateHandler(c *gin.Context) {
	var req models.CreateDebateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	d, err := s.service.CreateDebate(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, d)
}

// getDebateHandler handles GET /api/v1/debates/:id.
func (s *Server) getDebateHandler(c *gin.Context) {
	d, err := s.service.GetDebate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// listDebatesHandler handles GET /api/v1/debates.
func (s *Server) listDebatesHandler(c *gin.Context) {
	var filters models.DebateFilters

	// Parse filters.
	if v := c.Query("status"); v != "" {
		status := models.DebateStatus(v)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + v})
			return
		}
		filters.Status = status
	}
	if v := c.Query("mode"); v != "" {
		mode := config.Mode(v)
		if !mode.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid mode: " + v})
			return
		}
		filters.Mode = mode
	}

	// Parse date range.
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_after: must be RFC3339"})
			return
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("created_before"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid created_before: must be RFC3339"})
			return
		}
		filters.CreatedBefore = &t
	}

	// Parse pagination.
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	result, err := s.service.ListDebates(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// searchDebatesHandler handles GET /api/v1/debates/search.
func (s *Server) searchDebatesHandler(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "search query must be at least 3 characters"})
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	debates, err := s.service.SearchDebates(c.Request.Context(), q, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"debates": debates})
}

// getTranscriptHandler handles GET /api/v1/debates/:id/transcript.
func (s *Server) getTranscriptHandler(c *gin.Context) {
	transcript, err := s.service.GetTranscript(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, transcript)
}
