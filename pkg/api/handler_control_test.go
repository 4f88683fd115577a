package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
	"github.com/debatelab/agora/pkg/queue"
)

// recordingControl captures control calls routed through the pool registry.
type recordingControl struct {
	paused    bool
	resumed   bool
	stopped   bool
	reason    string
	continued int
	role      models.Speaker
	model     string
}

func (r *recordingControl) Pause() { r.paused = true }

func (r *recordingControl) Resume() { r.resumed = true }

func (r *recordingControl) Stop(reason string) { r.stopped = true; r.reason = reason }

func (r *recordingControl) Continue() { r.continued++ }

func (r *recordingControl) ReassignModel(role models.Speaker, model string) {
	r.role = role
	r.model = model
}
func (r *recordingControl) Interventions() []*models.Intervention { return nil }
func (r *recordingControl) Intervene(_ context.Context, iv models.Intervention) (*models.Intervention, error) {
	iv.ID = "iv-1"
	iv.Status = models.InterventionQueued
	return &iv, nil
}

// newTestPool builds a worker pool registry with one debate's control attached.
func newTestPool(debateID string, ctrl queue.ControlHandle) *queue.WorkerPool {
	pool := queue.NewWorkerPool("pod-test", nil, &config.QueueConfig{
		GracefulShutdownTimeout: time.Second,
	}, nil)
	pool.AttachControl(debateID, ctrl)
	return pool
}

func controlRequest(s *Server, handler gin.HandlerFunc, debateID, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/debates/"+debateID+"/x", strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: debateID}}
	handler(c)
	return w
}

func TestPauseResumeContinue_RoutedToOrchestrator(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	w := controlRequest(s, s.pauseDebateHandler, "debate-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ctrl.paused)

	w = controlRequest(s, s.resumeDebateHandler, "debate-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ctrl.resumed)

	w = controlRequest(s, s.continueDebateHandler, "debate-1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, ctrl.continued)
}

func TestStopDebateHandler_RunningOnThisReplica(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	w := controlRequest(s, s.stopDebateHandler, "debate-1", `{"reason":"lost interest"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, ctrl.stopped)
	assert.Equal(t, "lost interest", ctrl.reason)
}

func TestStopDebateHandler_DefaultReason(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	w := controlRequest(s, s.stopDebateHandler, "debate-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "stopped by user", ctrl.reason)
}

func TestReassignModelHandler_Validation(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{name: "missing role", body: `{"model":"gpt-4o"}`, errMsg: "role is required"},
		{name: "missing model", body: `{"role":"pro"}`, errMsg: "model is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := controlRequest(s, s.reassignModelHandler, "debate-1", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.errMsg)
		})
	}
}

func TestReassignModelHandler_Routed(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	w := controlRequest(s, s.reassignModelHandler, "debate-1", `{"role":"con","model":"claude-sonnet"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.SpeakerCon, ctrl.role)
	assert.Equal(t, "claude-sonnet", ctrl.model)
}
