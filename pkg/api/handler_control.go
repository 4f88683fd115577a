package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/debatelab/agora/pkg/models"
	"github.com/debatelab/agora/pkg/queue"
	"github.com/debatelab/agora/pkg/services"
)

// control resolves the orchestrator control surface for a debate running on
// this replica. On failure it writes the error response and returns false:
// 404 when the debate does not exist, 409 when it exists but is not running
// here.
func (s *Server) control(c *gin.Context, debateID string) (queue.ControlHandle, bool) {
	if s.workerPool != nil {
		if h, ok := s.workerPool.Control(debateID); ok {
			return h, true
		}
	}
	if _, err := s.service.GetDebate(c.Request.Context(), debateID); err != nil {
		respondServiceError(c, err)
		return nil, false
	}
	respondServiceError(c, services.ErrNotRunning)
	return nil, false
}

// pauseDebateHandler handles POST /api/v1/debates/:id/pause.
func (s *Server) pauseDebateHandler(c *gin.Context) {
	debateID := c.Param("id")
	h, ok := s.control(c, debateID)
	if !ok {
		return
	}
	h.Pause()
	c.JSON(http.StatusOK, &ControlResponse{DebateID: debateID, Action: "pause"})
}

// resumeDebateHandler handles POST /api/v1/debates/:id/resume.
func (s *Server) resumeDebateHandler(c *gin.Context) {
	debateID := c.Param("id")
	h, ok := s.control(c, debateID)
	if !ok {
		return
	}
	h.Resume()
	c.JSON(http.StatusOK, &ControlResponse{DebateID: debateID, Action: "resume"})
}

// stopDebateHandler handles POST /api/v1/debates/:id/stop.
// A pending debate is stopped directly in the store; a running one through
// its orchestrator.
func (s *Server) stopDebateHandler(c *gin.Context) {
	debateID := c.Param("id")

	var req StopDebateRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	reason := req.Reason
	if reason == "" {
		reason = "stopped by user"
	}

	if s.workerPool != nil {
		if h, ok := s.workerPool.Control(debateID); ok {
			h.Stop(reason)
			c.JSON(http.StatusOK, &ControlResponse{
				DebateID: debateID,
				Action:   "stop",
				Message:  "Stop requested",
			})
			return
		}
	}

	// Not running on this replica: a pending debate can still be stopped
	// before any worker claims it.
	d, err := s.service.GetDebate(c.Request.Context(), debateID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if d.Status != models.StatusPending {
		respondServiceError(c, services.ErrNotRunning)
		return
	}
	if err := s.service.UpdateDebateStatus(c.Request.Context(), debateID, models.StatusStopped); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &ControlResponse{
		DebateID: debateID,
		Action:   "stop",
		Message:  "Debate removed from queue",
	})
}

// continueDebateHandler handles POST /api/v1/debates/:id/continue.
// Advances one turn in step flow.
func (s *Server) continueDebateHandler(c *gin.Context) {
	debateID := c.Param("id")
	h, ok := s.control(c, debateID)
	if !ok {
		return
	}
	h.Continue()
	c.JSON(http.StatusOK, &ControlResponse{DebateID: debateID, Action: "continue"})
}

// reassignModelHandler handles POST /api/v1/debates/:id/reassign.
func (s *Server) reassignModelHandler(c *gin.Context) {
	debateID := c.Param("id")

	var req models.ReassignModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role is required"})
		return
	}
	if req.Model == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "model is required"})
		return
	}

	h, ok := s.control(c, debateID)
	if !ok {
		return
	}
	h.ReassignModel(req.Role, req.Model)
	c.JSON(http.StatusOK, &ControlResponse{
		DebateID: debateID,
		Action:   "reassign",
		Message:  "Model reassignment takes effect at the next turn",
	})
}
