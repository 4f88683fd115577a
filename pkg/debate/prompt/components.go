package prompt

import (
	"fmt"
	"strings"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

// maxHistoryRunes caps the transcript window included in a prompt. The
// persona system message is never part of this budget and always survives.
const maxHistoryRunes = 8000

// FormatPersonaSystem builds the identity system message for a speaker.
// The persona's immutable fragment and core values always lead; fixed roles
// without a persona fall back to their preset.
func FormatPersonaSystem(speaker models.Speaker, persona *config.PersonaConfig) string {
	var sb strings.Builder

	if persona != nil && persona.Immutable != "" {
		sb.WriteString(persona.Immutable)
		if len(persona.CoreValues) > 0 {
			sb.WriteString("\n\nCore values: ")
			sb.WriteString(strings.Join(persona.CoreValues, ", "))
			sb.WriteString(".")
		}
		if persona.Style != "" {
			sb.WriteString("\nVoice: ")
			sb.WriteString(persona.Style)
		}
		return sb.String()
	}

	if preset, ok := rolePresets[speaker]; ok {
		return preset
	}
	return fmt.Sprintf("You are %s, a participant in this discussion.", speaker)
}

// FormatPropositionSection builds the proposition section shared by every
// debate prompt.
func FormatPropositionSection(proposition, context string) string {
	var sb strings.Builder
	sb.WriteString("## Proposition\n")
	sb.WriteString(proposition)
	sb.WriteString("\n")
	if context != "" {
		sb.WriteString("\n### Background\n")
		sb.WriteString(context)
		sb.WriteString("\n")
	}
	return sb.String()
}

// FormatHistoryWindow renders the transcript tail within the rune budget.
// Utterances are dropped oldest-first; a marker notes elided turns.
func FormatHistoryWindow(history []*models.Utterance) string {
	if len(history) == 0 {
		return "## Transcript So Far\nThe debate has not started; you speak first.\n"
	}

	// Walk backwards accumulating until the budget is spent.
	budget := maxHistoryRunes
	start := len(history)
	for start > 0 {
		cost := len([]rune(history[start-1].Content)) + 64
		if cost > budget {
			break
		}
		budget -= cost
		start--
	}
	// The most recent utterance is always included, truncated if oversized.
	if start == len(history) {
		start--
	}

	var sb strings.Builder
	sb.WriteString("## Transcript So Far\n")
	if start > 0 {
		fmt.Fprintf(&sb, "[%d earlier turns omitted]\n\n", start)
	}
	for _, u := range history[start:] {
		content := u.Content
		if runes := []rune(content); len(runes) > maxHistoryRunes {
			content = string(runes[:maxHistoryRunes]) + " […]"
		}
		fmt.Fprintf(&sb, "[%s] %s: %s", u.Phase, u.Speaker, content)
		if u.Metadata.Truncated {
			sb.WriteString(" [interrupted]")
		}
		sb.WriteString("\n\n")
	}
	return sb.String()
}

// FormatCitations renders retrieved reference material, injected before the
// task instruction.
func FormatCitations(citations []string) string {
	if len(citations) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Reference Material\n")
	for i, c := range citations {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, c)
	}
	return sb.String()
}

// FormatInterruptedSection renders the partial speech an interjection
// responds to.
func FormatInterruptedSection(speaker models.Speaker, partial string) string {
	if partial == "" {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "## Interrupted Speech\n%s was saying, before you cut in:\n\n", speaker)
	sb.WriteString(partial)
	sb.WriteString("\n")
	return sb.String()
}

// FormatUserIntervention renders an audience question or challenge directed
// at the speaker.
func FormatUserIntervention(kind models.InterventionType, content string) string {
	if content == "" {
		return ""
	}
	var label string
	switch kind {
	case models.InterventionChallenge:
		label = "A member of the audience challenges you"
	case models.InterventionEvidenceInjection:
		label = "New evidence has been introduced into the debate"
	case models.InterventionClarification:
		label = "A member of the audience asks for clarification"
	default:
		label = "A member of the audience asks"
	}
	return fmt.Sprintf("## Audience Intervention\n%s:\n\n%s\n", label, content)
}
