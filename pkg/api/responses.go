package api

// ControlResponse acknowledges a lifecycle command against a running debate.
type ControlResponse struct {
	DebateID string `json:"debate_id"`
	Action   string `json:"action"`
	Message  string `json:"message,omitempty"`
}

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
