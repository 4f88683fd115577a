package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debatelab/agora/pkg/models"
	"github.com/debatelab/agora/pkg/services"
)

// createInterventionHandler handles POST /api/v1/debates/:id/interventions.
// The intervention is routed to the orchestrator running the debate on this
// replica, which persists it and applies control types immediately.
func (s *Server) createInterventionHandler(c *gin.Context) {
	debateID := c.Param("id")

	var req models.EnqueueInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Type.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intervention type: " + string(req.Type)})
		return
	}
	if req.Type.RequiresContent() && req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required for type " + string(req.Type)})
		return
	}

	// Client-key dedup: a retried submission returns the original record.
	if req.ClientKey != "" {
		existing, err := s.service.FindInterventionByClientKey(c.Request.Context(), debateID, req.ClientKey)
		if err == nil {
			c.JSON(http.StatusOK, existing)
			return
		}
		if !errors.Is(err, services.ErrNotFound) {
			respondServiceError(c, err)
			return
		}
	}

	h, ok := s.control(c, debateID)
	if !ok {
		return
	}

	stored, err := h.Intervene(c.Request.Context(), models.Intervention{
		DebateID:   debateID,
		Type:       req.Type,
		Content:    req.Content,
		DirectedTo: req.DirectedTo,
		ClientKey:  req.ClientKey,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, stored)
}

// listInterventionsHandler handles GET /api/v1/debates/:id/interventions.
func (s *Server) listInterventionsHandler(c *gin.Context) {
	debateID := c.Param("id")

	// 404 for unknown debates rather than an empty list.
	if _, err := s.service.GetDebate(c.Request.Context(), debateID); err != nil {
		respondServiceError(c, err)
		return
	}

	interventions, err := s.service.ListInterventions(c.Request.Context(), debateID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"interventions": interventions})
}

// getInterventionHandler handles GET /api/v1/debates/:id/interventions/:intervention_id.
func (s *Server) getInterventionHandler(c *gin.Context) {
	iv, err := s.service.GetIntervention(c.Request.Context(), c.Param("intervention_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if iv.DebateID != c.Param("id") {
		respondServiceError(c, services.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, iv)
}
