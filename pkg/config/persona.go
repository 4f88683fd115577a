package config

// PersonaConfig describes a debater identity from the persona registry.
// Core values and the immutable fragment are always injected as the first
// system message by the prompt builder; they are never truncated out.
type PersonaConfig struct {
	// Name is the display name used in prompts ("Dr. Elena Vasquez").
	Name string `yaml:"name"`
	// CoreValues are short identity anchors ("empirical rigor", "humility").
	CoreValues []string `yaml:"core_values"`
	// Immutable is the persona prompt fragment that must survive every
	// history truncation.
	Immutable string `yaml:"immutable"`
	// Style is an optional voice/register hint appended to the system prompt.
	Style string `yaml:"style"`
}

// PersonaRegistry holds all configured personas keyed by persona ID.
type PersonaRegistry struct {
	personas map[string]PersonaConfig
}

// NewPersonaRegistry creates a registry from the loaded persona map.
func NewPersonaRegistry(personas map[string]PersonaConfig) *PersonaRegistry {
	if personas == nil {
		personas = make(map[string]PersonaConfig)
	}
	return &PersonaRegistry{personas: personas}
}

// Get returns the persona for an ID. The second return is false when the
// ID is unknown.
func (r *PersonaRegistry) Get(id string) (PersonaConfig, bool) {
	p, ok := r.personas[id]
	return p, ok
}

// IDs returns all registered persona IDs.
func (r *PersonaRegistry) IDs() []string {
	ids := make([]string, 0, len(r.personas))
	for id := range r.personas {
		ids = append(ids, id)
	}
	return ids
}
