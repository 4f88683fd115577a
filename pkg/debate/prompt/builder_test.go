package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

func testPersona() *config.PersonaConfig {
	return &config.PersonaConfig{
		Name:       "Dr. Elena Vasquez",
		CoreValues: []string{"empirical rigor", "humility"},
		Immutable:  "You are Dr. Elena Vasquez, a data-driven researcher.",
		Style:      "Measured and precise.",
	}
}

func historyOf(contents ...string) []*models.Utterance {
	out := make([]*models.Utterance, len(contents))
	for i, c := range contents {
		speaker := models.SpeakerPro
		if i%2 == 1 {
			speaker = models.SpeakerCon
		}
		out[i] = &models.Utterance{
			TurnIndex: i,
			Phase:     models.PhaseConstructive,
			Speaker:   speaker,
			Content:   c,
		}
	}
	return out
}

func TestBuildPersonaFirst(t *testing.T) {
	b := NewBuilder()
	msgs := b.Build(BuildInput{
		Turn:        models.TurnDescriptor{Speaker: models.SpeakerPro, Kind: models.PromptOpening},
		Proposition: "AI data centres should face a moratorium.",
		Persona:     testPersona(),
		Brevity:     3,
	})

	require.GreaterOrEqual(t, len(msgs), 3)
	assert.Equal(t, llm.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "Dr. Elena Vasquez")
	assert.Contains(t, msgs[0].Content, "empirical rigor")
	assert.Equal(t, llm.RoleSystem, msgs[1].Role)
	assert.Contains(t, msgs[1].Content, "moratorium")
	assert.Equal(t, llm.RoleUser, msgs[len(msgs)-1].Role)
	assert.Contains(t, msgs[len(msgs)-1].Content, "## Your Task")
}

func TestBuildRolePresetWithoutPersona(t *testing.T) {
	b := NewBuilder()
	msgs := b.Build(BuildInput{
		Turn:        models.TurnDescriptor{Speaker: models.SpeakerModerator, Kind: models.PromptSynthesis},
		Proposition: "p",
	})
	assert.Contains(t, msgs[0].Content, "neutral moderator")
	assert.Contains(t, msgs[len(msgs)-1].Content, "Do not declare a winner")
}

func TestBuildDeterministic(t *testing.T) {
	b := NewBuilder()
	in := BuildInput{
		Turn:        models.TurnDescriptor{Speaker: models.SpeakerCon, Kind: models.PromptRebuttal},
		Proposition: "p",
		History:     historyOf("first", "second"),
		Persona:     testPersona(),
		Brevity:     2,
	}
	assert.Equal(t, b.Build(in), b.Build(in))
}

func TestBuildHistoryWindowTruncation(t *testing.T) {
	b := NewBuilder()

	long := strings.Repeat("argument text ", 200) // ~2800 runes each
	history := historyOf(long, long, long, long, long, long)

	msgs := b.Build(BuildInput{
		Turn:        models.TurnDescriptor{Speaker: models.SpeakerPro, Kind: models.PromptConstructive},
		Proposition: "p",
		History:     history,
		Persona:     testPersona(),
	})

	user := msgs[len(msgs)-1].Content
	assert.Contains(t, user, "earlier turns omitted")
	// Persona survives truncation untouched.
	assert.Contains(t, msgs[0].Content, "Dr. Elena Vasquez")
	// The window keeps the most recent turns, not the oldest.
	assert.LessOrEqual(t, len([]rune(user)), maxHistoryRunes+2000)
}

func TestBuildCitationsBeforeTask(t *testing.T) {
	b := NewBuilder()
	msgs := b.Build(BuildInput{
		Turn:             models.TurnDescriptor{Speaker: models.SpeakerPro, Kind: models.PromptConstructive},
		Proposition:      "p",
		RequireCitations: true,
		Citations:        []string{"IEA report 2025", "Nature study on cooling"},
	})

	assert.Contains(t, msgs[1].Content, "Cite sources")

	user := msgs[len(msgs)-1].Content
	citIdx := strings.Index(user, "## Reference Material")
	taskIdx := strings.Index(user, "## Your Task")
	require.NotEqual(t, -1, citIdx)
	require.NotEqual(t, -1, taskIdx)
	assert.Less(t, citIdx, taskIdx, "citations precede the task instruction")
	assert.Contains(t, user, "[1] IEA report 2025")
}

func TestBuildInterjectionWithViolation(t *testing.T) {
	b := NewBuilder()
	msgs := b.Build(BuildInput{
		Turn:               models.TurnDescriptor{Speaker: models.SpeakerArbiter, Kind: models.PromptInterjection},
		Proposition:        "p",
		InterruptedSpeaker: models.Speaker("chair_1"),
		InterruptedText:    "And my framework has no weaknesses whatsoever",
		Violation:          models.ViolationMissingSelfCritique,
	})

	user := msgs[len(msgs)-1].Content
	assert.Contains(t, user, "## Interrupted Speech")
	assert.Contains(t, user, "no weaknesses whatsoever")
	assert.Contains(t, user, "honest advocacy")
}

func TestBuildFrameworkAndTone(t *testing.T) {
	b := NewBuilder()
	msgs := b.Build(BuildInput{
		Turn:        models.TurnDescriptor{Speaker: models.Speaker("chair_1"), Kind: models.PromptExchange},
		Proposition: "p",
		Framework:   config.FrameworkUtilitarian,
		Tone:        config.ToneHeated,
	})

	framing := msgs[1].Content
	assert.Contains(t, framing, "utilitarian framework")
	assert.Contains(t, framing, "heated register")
	assert.Contains(t, msgs[len(msgs)-1].Content, "Steel-man")
}

func TestBuildUserIntervention(t *testing.T) {
	b := NewBuilder()
	msgs := b.Build(BuildInput{
		Turn:        models.TurnDescriptor{Speaker: models.SpeakerCon, Kind: models.PromptConstructive},
		Proposition: "p",
		Intervention: &models.Intervention{
			Type:    models.InterventionChallenge,
			Content: "Your cost figures are five years old.",
		},
	})

	user := msgs[len(msgs)-1].Content
	assert.Contains(t, user, "## Audience Intervention")
	assert.Contains(t, user, "challenges you")
	assert.Contains(t, user, "five years old")
}

func TestBuildEvaluationMessages(t *testing.T) {
	b := NewBuilder()
	u := &models.Utterance{
		Speaker: models.Speaker("chair_1"),
		Content: "Utility is all that matters here.",
	}
	msgs := b.BuildEvaluationMessages(u, config.FrameworkUtilitarian, []string{"deontological: rights first"})

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "requires_interjection")
	assert.Contains(t, msgs[1].Content, "chair_1")
	assert.Contains(t, msgs[1].Content, "Utility is all that matters")
	assert.Contains(t, msgs[1].Content, "rights first")
}

func TestBuildTriggerMessages(t *testing.T) {
	b := NewBuilder()
	msgs := b.BuildTriggerMessages(models.SpeakerPro, "This is obviously true. ", []models.Speaker{models.SpeakerCon})

	require.Len(t, msgs, 2)
	assert.Contains(t, msgs[0].Content, "interrupter")
	assert.Contains(t, msgs[1].Content, "Candidate interrupters: con")
}

func TestFormatHistoryWindowEmpty(t *testing.T) {
	out := FormatHistoryWindow(nil)
	assert.Contains(t, out, "you speak first")
}

func TestFormatHistoryWindowMarksInterrupted(t *testing.T) {
	h := historyOf("cut short")
	h[0].Metadata.Truncated = true
	out := FormatHistoryWindow(h)
	assert.Contains(t, out, "[interrupted]")
}
