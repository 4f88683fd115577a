package config

// Config is the umbrella configuration object returned by Initialize and
// passed to the server, queue, and orchestrator.
type Config struct {
	configDir string

	// Defaults is the baseline DebateConfig that create requests merge over.
	Defaults *DebateConfig

	// Queue holds worker pool and claim settings.
	Queue *QueueConfig

	// LLM holds gateway settings (provider endpoint, models, rate limits).
	LLM *LLMConfig

	// Personas is the merged built-in + user persona registry.
	Personas *PersonaRegistry

	// AllowedWSOrigins are additional origin patterns accepted on the
	// WebSocket endpoint beyond the Host-matching default.
	AllowedWSOrigins []string
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	Personas int
}

// Stats returns configuration statistics for logging.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.Personas != nil {
		s.Personas = len(c.Personas.IDs())
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetPersona retrieves a persona by ID, wrapping PersonaRegistry.Get.
func (c *Config) GetPersona(id string) (PersonaConfig, bool) {
	return c.Personas.Get(id)
}
