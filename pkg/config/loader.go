package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// AgoraYAMLConfig represents the complete agora.yaml file structure.
type AgoraYAMLConfig struct {
	System   *SystemYAMLConfig        `yaml:"system"`
	Defaults *DebateConfig            `yaml:"defaults"`
	Queue    *QueueConfig             `yaml:"queue"`
	LLM      *LLMConfig               `yaml:"llm"`
	Personas map[string]PersonaConfig `yaml:"personas"`
}

// SystemYAMLConfig groups system-wide infrastructure settings.
type SystemYAMLConfig struct {
	AllowedWSOrigins []string `yaml:"allowed_ws_origins"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load agora.yaml from configDir
//  2. Expand environment variables
//  3. Merge built-in defaults + user-defined overrides
//  4. Build the persona registry
//  5. Validate the merged configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Defaults.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"personas", stats.Personas,
		"default_mode", cfg.Defaults.Mode,
		"workers", cfg.Queue.WorkerCount)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	agoraConfig, err := loader.loadAgoraYAML()
	if err != nil {
		return nil, err
	}

	// Defaults: merge user YAML on top of built-in defaults so unset
	// fields keep their baseline values.
	defaults := DefaultDebateConfig()
	if agoraConfig.Defaults != nil {
		if err := mergo.Merge(defaults, agoraConfig.Defaults, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge debate defaults: %w", err)
		}
	}
	defaults.Lively.ApplyPacing()

	queueConfig := DefaultQueueConfig()
	if agoraConfig.Queue != nil {
		if err := mergo.Merge(queueConfig, agoraConfig.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	llmConfig := DefaultLLMConfig()
	if agoraConfig.LLM != nil {
		if err := mergo.Merge(llmConfig, agoraConfig.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	personas := mergePersonas(builtinPersonas, agoraConfig.Personas)

	var wsOrigins []string
	if agoraConfig.System != nil {
		wsOrigins = agoraConfig.System.AllowedWSOrigins
	}

	return &Config{
		configDir:        configDir,
		Defaults:         defaults,
		Queue:            queueConfig,
		LLM:              llmConfig,
		Personas:         NewPersonaRegistry(personas),
		AllowedWSOrigins: wsOrigins,
	}, nil
}

// mergePersonas overlays user personas on the built-in set. A user persona
// with the same ID replaces the built-in one entirely.
func mergePersonas(builtin, user map[string]PersonaConfig) map[string]PersonaConfig {
	merged := make(map[string]PersonaConfig, len(builtin)+len(user))
	for id, p := range builtin {
		merged[id] = p
	}
	for id, p := range user {
		merged[id] = p
	}
	return merged
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", filename, err)
	}

	return nil
}

func (l *configLoader) loadAgoraYAML() (*AgoraYAMLConfig, error) {
	config := AgoraYAMLConfig{
		Personas: make(map[string]PersonaConfig),
	}

	if err := l.loadYAML("agora.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}
