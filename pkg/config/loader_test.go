package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAgoraYAML(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "agora.yaml"), []byte(content), 0644)
	require.NoError(t, err)
	return dir
}

func TestInitialize(t *testing.T) {
	configDir := writeAgoraYAML(t, `
defaults:
  mode: turn-based
  brevity: 4
  models:
    pro: gpt-4o
    con: gpt-4o
    moderator: gpt-4o-mini
queue:
  worker_count: 2
personas:
  contrarian:
    name: "Jo Reyes"
    core_values: ["dissent"]
    immutable: "You are Jo Reyes, a professional contrarian."
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// User overrides applied on top of built-in defaults.
	assert.Equal(t, 4, cfg.Defaults.Brevity)
	assert.Equal(t, 0.7, cfg.Defaults.Temperature)
	assert.Equal(t, 1024, cfg.Defaults.MaxTokens)
	assert.Equal(t, 2, cfg.Queue.WorkerCount)
	assert.Equal(t, 8, cfg.Queue.MaxConcurrentDebates)

	// Built-in personas survive a user persona merge.
	_, ok := cfg.GetPersona("empiricist")
	assert.True(t, ok)
	user, ok := cfg.GetPersona("contrarian")
	require.True(t, ok)
	assert.Equal(t, "Jo Reyes", user.Name)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := writeAgoraYAML(t, `defaults: [not, a, mapping`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := writeAgoraYAML(t, `
defaults:
  mode: turn-based
  brevity: 9
  models:
    pro: gpt-4o
    con: gpt-4o
    moderator: gpt-4o
`)

	ctx := context.Background()
	_, err := Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")
	assert.True(t, IsValidationError(err))
}

func TestInitializeEnvExpansion(t *testing.T) {
	t.Setenv("AGORA_PRO_MODEL", "claude-sonnet-4")

	configDir := writeAgoraYAML(t, `
defaults:
  models:
    pro: "{{.AGORA_PRO_MODEL}}"
    con: gpt-4o
    moderator: gpt-4o-mini
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4", cfg.Defaults.Models.Pro)
}

func TestInitializePacingPreset(t *testing.T) {
	configDir := writeAgoraYAML(t, `
defaults:
  mode: lively
  models:
    pro: gpt-4o
    con: gpt-4o
    moderator: gpt-4o-mini
  lively:
    pacing: frantic
`)

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Defaults.Lively.Aggression)
	assert.Equal(t, 5, cfg.Defaults.Lively.MaxInterruptsPerMinute)
	assert.Equal(t, 8*time.Second, cfg.Defaults.Lively.InterruptCooldown)
	assert.Equal(t, PacingFrantic, cfg.Defaults.Lively.Pacing)
}
