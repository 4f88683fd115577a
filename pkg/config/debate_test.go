package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTurnBased() *DebateConfig {
	cfg := DefaultDebateConfig()
	cfg.Models = ModelAssignments{
		Pro:       "gpt-4o",
		Con:       "gpt-4o",
		Moderator: "gpt-4o-mini",
	}
	return cfg
}

func TestDebateConfigValidate(t *testing.T) {
	t.Run("valid turn-based", func(t *testing.T) {
		assert.NoError(t, validTurnBased().Validate())
	})

	t.Run("missing models", func(t *testing.T) {
		cfg := DefaultDebateConfig()
		err := cfg.Validate()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "models")
	})

	t.Run("brevity out of range", func(t *testing.T) {
		cfg := validTurnBased()
		cfg.Brevity = 6
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "brevity")
	})

	t.Run("temperature out of range", func(t *testing.T) {
		cfg := validTurnBased()
		cfg.Temperature = 1.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("max tokens out of range", func(t *testing.T) {
		cfg := validTurnBased()
		cfg.MaxTokens = 32
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown mode", func(t *testing.T) {
		cfg := validTurnBased()
		cfg.Mode = Mode("parliamentary")
		assert.Error(t, cfg.Validate())
	})

	t.Run("lively threshold out of range", func(t *testing.T) {
		cfg := validTurnBased()
		cfg.Mode = ModeLively
		cfg.Lively.RelevanceThreshold = 1.3
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "relevance_threshold")
	})

	t.Run("lively knobs not checked for turn-based", func(t *testing.T) {
		cfg := validTurnBased()
		cfg.Lively.Aggression = 0
		assert.NoError(t, cfg.Validate())
	})
}

func TestDebateConfigValidateDuelogic(t *testing.T) {
	valid := func() *DebateConfig {
		cfg := DefaultDebateConfig()
		cfg.Mode = ModeDuelogic
		cfg.Models.Arbiter = "gpt-4o"
		cfg.Models.Chairs = map[string]string{
			"chair_1": "gpt-4o",
			"chair_2": "claude-sonnet-4",
		}
		cfg.Duelogic.Chairs = []ChairConfig{
			{Position: "chair_1", Framework: FrameworkUtilitarian},
			{Position: "chair_2", Framework: FrameworkDeontological},
		}
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("one chair", func(t *testing.T) {
		cfg := valid()
		cfg.Duelogic.Chairs = cfg.Duelogic.Chairs[:1]
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chairs")
	})

	t.Run("unknown framework", func(t *testing.T) {
		cfg := valid()
		cfg.Duelogic.Chairs[0].Framework = Framework("nihilist")
		assert.Error(t, cfg.Validate())
	})

	t.Run("chair without model", func(t *testing.T) {
		cfg := valid()
		delete(cfg.Models.Chairs, "chair_2")
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "chair_2")
	})

	t.Run("missing arbiter model", func(t *testing.T) {
		cfg := valid()
		cfg.Models.Arbiter = ""
		assert.Error(t, cfg.Validate())
	})
}

func TestDebateConfigValidateInformal(t *testing.T) {
	cfg := DefaultDebateConfig()
	cfg.Mode = ModeInformal
	assert.NoError(t, cfg.Validate())

	cfg.Informal.Participants = 1
	assert.Error(t, cfg.Validate())
}

func TestApplyPacing(t *testing.T) {
	l := LivelyConfig{
		Aggression:         5,
		RelevanceThreshold: 0.1,
		Pacing:             PacingSlow,
	}
	l.ApplyPacing()

	assert.Equal(t, 1, l.Aggression)
	assert.Equal(t, 0.85, l.RelevanceThreshold)
	assert.Equal(t, 45*time.Second, l.InterruptCooldown)
	assert.Equal(t, PacingSlow, l.Pacing)

	// No pacing set leaves the knobs alone.
	l2 := LivelyConfig{Aggression: 3}
	l2.ApplyPacing()
	assert.Equal(t, 3, l2.Aggression)
}
