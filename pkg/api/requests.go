package api

// StopDebateRequest optionally carries a human-readable stop reason.
type StopDebateRequest struct {
	Reason string `json:"reason,omitempty"`
}
