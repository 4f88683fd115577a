package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/models"
)

func TestCreateInterventionHandler_Validation(t *testing.T) {
	s := &Server{}

	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{
			name:   "unknown type",
			body:   `{"type":"heckle","content":"boo"}`,
			errMsg: "invalid intervention type",
		},
		{
			name:   "question without content",
			body:   `{"type":"question"}`,
			errMsg: "content is required",
		},
		{
			name:   "evidence without content",
			body:   `{"type":"evidence_injection"}`,
			errMsg: "content is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := controlRequest(s, s.createInterventionHandler, "debate-1", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), tt.errMsg)
		})
	}
}

func TestCreateInterventionHandler_RoutedToOrchestrator(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	body := `{"type":"question","content":"What about small nations?","directed_to":"pro"}`
	w := controlRequest(s, s.createInterventionHandler, "debate-1", body)
	require.Equal(t, http.StatusAccepted, w.Code)

	var iv models.Intervention
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &iv))
	assert.Equal(t, "debate-1", iv.DebateID)
	assert.Equal(t, models.InterventionQuestion, iv.Type)
	assert.Equal(t, models.SpeakerPro, iv.DirectedTo)
	assert.Equal(t, models.InterventionQueued, iv.Status)
}

func TestCreateInterventionHandler_ControlTypesNeedNoContent(t *testing.T) {
	ctrl := &recordingControl{}
	s := &Server{workerPool: newTestPool("debate-1", ctrl)}

	w := controlRequest(s, s.createInterventionHandler, "debate-1", `{"type":"pause_request"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
