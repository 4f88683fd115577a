package debate

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/debatelab/agora/pkg/debate/prompt"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

// triggerCallTimeout bounds a single trigger-scoring call. Scoring happens
// between streamed sentences, so it must stay well under a turn's length.
const triggerCallTimeout = 10 * time.Second

// LLMTriggerScorer scores interrupt triggers with a cheap model. Falls back
// to the heuristic scorer when the call fails or returns garbage, so a
// flaky trigger model never stalls a lively debate.
type LLMTriggerScorer struct {
	provider llm.Provider
	model    string
	builder  *prompt.Builder
	fallback HeuristicTriggerScorer
	log      *slog.Logger
}

// NewLLMTriggerScorer wires a scorer around the given trigger model.
func NewLLMTriggerScorer(provider llm.Provider, model string, builder *prompt.Builder, log *slog.Logger) *LLMTriggerScorer {
	return &LLMTriggerScorer{
		provider: provider,
		model:    model,
		builder:  builder,
		log:      log,
	}
}

// triggerVerdict is the wire shape of the trigger model's JSON response.
type triggerVerdict struct {
	Interrupter string  `json:"interrupter"`
	Trigger     string  `json:"trigger"`
	Score       float64 `json:"score"`
}

// ScoreTriggers asks the trigger model whether the accumulated speech
// invites an interruption from one of the candidates.
func (s *LLMTriggerScorer) ScoreTriggers(ctx context.Context, speaker models.Speaker, text string, candidates []InterruptCandidate) (InterruptDecision, error) {
	if len(candidates) == 0 {
		return InterruptDecision{}, nil
	}

	speakers := make([]models.Speaker, len(candidates))
	for i, c := range candidates {
		speakers[i] = c.Speaker
	}
	messages := s.builder.BuildTriggerMessages(speaker, text, speakers)

	completion, err := s.provider.Complete(ctx, s.model, messages, llm.Options{
		JSONOutput: true,
		MaxTokens:  128,
		Timeout:    triggerCallTimeout,
	})
	if err != nil {
		s.log.Warn("Trigger scoring call failed, falling back to heuristics",
			"speaker", speaker,
			"error", err)
		return s.fallback.ScoreTriggers(ctx, speaker, text, candidates)
	}

	var verdict triggerVerdict
	if err := json.Unmarshal([]byte(completion.Text), &verdict); err != nil {
		s.log.Warn("Trigger scoring returned invalid JSON, falling back to heuristics",
			"speaker", speaker,
			"error", err)
		return s.fallback.ScoreTriggers(ctx, speaker, text, candidates)
	}

	interrupter := models.Speaker(verdict.Interrupter)
	if interrupter == "" || !validCandidate(interrupter, candidates) {
		return InterruptDecision{}, nil
	}

	return InterruptDecision{
		Interrupter: interrupter,
		Trigger:     TriggerKind(verdict.Trigger),
		Score:       capScore(verdict.Score),
	}, nil
}

func validCandidate(speaker models.Speaker, candidates []InterruptCandidate) bool {
	for _, c := range candidates {
		if c.Speaker == speaker {
			return true
		}
	}
	return false
}
