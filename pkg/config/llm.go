package config

import "time"

// LLMConfig contains settings for the LLM gateway.
type LLMConfig struct {
	// APIKeyEnv names the environment variable holding the provider API key.
	APIKeyEnv string `yaml:"api_key_env"`
	// BaseURL overrides the default OpenAI-compatible endpoint. Empty means
	// the provider default.
	BaseURL string `yaml:"base_url"`
	// DefaultModel is used when a role has no explicit model assignment.
	DefaultModel string `yaml:"default_model"`
	// TriggerModel is the cheap model used for interruption trigger scoring
	// and moderate/strict arbiter evaluation.
	TriggerModel string `yaml:"trigger_model"`
	// RequestTimeout bounds a single LLM call.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// RequestsPerSecond is the provider-wide token bucket refill rate.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// Burst is the provider-wide token bucket capacity.
	Burst int `yaml:"burst"`
}

// DefaultLLMConfig returns the built-in LLM gateway defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		APIKeyEnv:         "OPENAI_API_KEY",
		DefaultModel:      "gpt-4o",
		TriggerModel:      "gpt-4o-mini",
		RequestTimeout:    60 * time.Second,
		RequestsPerSecond: 5,
		Burst:             10,
	}
}
