package prompt

import (
	"fmt"
	"strings"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

// BuildInput carries everything a turn prompt depends on. The builder is a
// pure function of this input: identical inputs produce identical messages.
type BuildInput struct {
	Turn        models.TurnDescriptor
	Proposition string
	Context     string

	// History is the full transcript; the builder windows it.
	History []*models.Utterance

	// Persona is the speaker's persona, nil for role-preset speakers.
	Persona *config.PersonaConfig
	// Framework is set for duelogic chairs.
	Framework config.Framework
	// Tone applies in duelogic mode.
	Tone config.Tone

	Brevity          int
	RequireCitations bool
	Citations        []string

	// InterruptedText is the cut-off speaker's partial speech, for
	// interjection and resumption turns.
	InterruptedText string
	// InterruptedSpeaker is who was cut off (interjections) or who cut in
	// (resumptions).
	InterruptedSpeaker models.Speaker
	// Violation drives the arbiter's corrective interjection text.
	Violation models.ViolationKind
	// Intervention carries a user question/challenge to weave into the turn.
	Intervention *models.Intervention
}

// Builder builds all prompt text for debate turns. Stateless and
// thread-safe; one instance serves every session.
type Builder struct{}

// NewBuilder creates a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build returns the system+user message sequence for a turn. The persona
// identity is always the first system message and is never truncated; the
// transcript window and citations live in the user message before the task
// instruction.
func (b *Builder) Build(in BuildInput) []llm.Message {
	messages := []llm.Message{
		llm.SystemMessage(FormatPersonaSystem(in.Turn.Speaker, in.Persona)),
		llm.SystemMessage(b.framingSystem(in)),
	}

	var sb strings.Builder
	sb.WriteString(FormatHistoryWindow(in.History))
	sb.WriteString("\n")

	if section := FormatCitations(in.Citations); section != "" {
		sb.WriteString(section)
		sb.WriteString("\n")
	}
	if section := FormatInterruptedSection(in.InterruptedSpeaker, in.InterruptedText); section != "" {
		sb.WriteString(section)
		sb.WriteString("\n")
	}
	if in.Intervention != nil {
		if section := FormatUserIntervention(in.Intervention.Type, in.Intervention.Content); section != "" {
			sb.WriteString(section)
			sb.WriteString("\n")
		}
	}

	sb.WriteString(b.taskInstruction(in))

	messages = append(messages, llm.UserMessage(sb.String()))
	return messages
}

// framingSystem is the second system message: proposition, framework, tone,
// brevity, citations.
func (b *Builder) framingSystem(in BuildInput) string {
	var sb strings.Builder
	sb.WriteString(FormatPropositionSection(in.Proposition, in.Context))

	if in.Framework != "" {
		if desc, ok := frameworkDescriptions[in.Framework]; ok {
			sb.WriteString("\n")
			sb.WriteString(desc)
			sb.WriteString("\n")
		}
	}
	if in.Tone != "" {
		if tone, ok := toneInstructions[in.Tone]; ok {
			sb.WriteString("\n")
			sb.WriteString(tone)
			sb.WriteString("\n")
		}
	}
	if in.Brevity >= 1 && in.Brevity <= 5 {
		sb.WriteString("\n")
		sb.WriteString(brevityInstructions[in.Brevity])
		sb.WriteString("\n")
	}
	if in.RequireCitations {
		sb.WriteString("\n")
		sb.WriteString(citationAddendum)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b *Builder) taskInstruction(in BuildInput) string {
	task, ok := taskInstructions[in.Turn.Kind]
	if !ok {
		task = taskInstructions[models.PromptConstructive]
	}

	if in.Turn.Kind == models.PromptInterjection && in.Violation != "" {
		if corrective, ok := violationInstructions[in.Violation]; ok {
			return task + "\n\n" + corrective
		}
	}
	return task
}

// BuildEvaluationMessages builds the arbiter's quality-evaluation call for a
// completed chair utterance. The response is a JSON QualityEvaluation.
func (b *Builder) BuildEvaluationMessages(u *models.Utterance, framework config.Framework, opponents []string) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Speaker: %s\n", u.Speaker)
	if desc, ok := frameworkDescriptions[framework]; ok {
		fmt.Fprintf(&sb, "Assigned framework: %s (%s)\n", framework, desc)
	} else {
		fmt.Fprintf(&sb, "Assigned framework: %s\n", framework)
	}
	if len(opponents) > 0 {
		sb.WriteString("\nOpposing positions:\n")
		for _, o := range opponents {
			sb.WriteString("- ")
			sb.WriteString(o)
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\nUtterance to evaluate:\n\n")
	sb.WriteString(u.Content)

	return []llm.Message{
		llm.SystemMessage(evaluationSystemPrompt),
		llm.UserMessage(sb.String()),
	}
}

// BuildTriggerMessages builds the cheap trigger-scoring call for the
// interruption engine. The response is a JSON decision.
func (b *Builder) BuildTriggerMessages(speaker models.Speaker, partial string, candidates []models.Speaker) []llm.Message {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Current speaker: %s\n", speaker)
	sb.WriteString("Candidate interrupters: ")
	for i, c := range candidates {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(c))
	}
	sb.WriteString("\n\nAccumulated speech:\n\n")
	sb.WriteString(partial)

	return []llm.Message{
		llm.SystemMessage(triggerSystemPrompt),
		llm.UserMessage(sb.String()),
	}
}
