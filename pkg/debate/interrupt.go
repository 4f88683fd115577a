package debate

import (
	"context"
	"regexp"
	"strings"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/models"
)

// TriggerKind classifies what provoked an interruption.
type TriggerKind string

const (
	TriggerContradiction TriggerKind = "contradiction"
	TriggerKeyPhrase     TriggerKind = "key_phrase"
	TriggerWeakPoint     TriggerKind = "weak_point"
	TriggerBoldClaim     TriggerKind = "bold_claim"
)

// InterruptCandidate is a speaker eligible to interject, with the key
// phrases its persona reacts to.
type InterruptCandidate struct {
	Speaker    models.Speaker
	KeyPhrases []string
}

// InterruptDecision is an accepted interruption, ready to schedule.
type InterruptDecision struct {
	Interrupter models.Speaker
	Trigger     TriggerKind
	Score       float64
}

// TriggerScorer evaluates accumulated partial text for interrupt triggers.
// The heuristic implementation is the default; an LLM-backed one can be
// substituted for lively debates that warrant the extra calls.
type TriggerScorer interface {
	ScoreTriggers(ctx context.Context, speaker models.Speaker, text string, candidates []InterruptCandidate) (InterruptDecision, error)
}

// sentenceBoundary matches a sentence terminator (optionally followed by a
// closing quote or bracket) and trailing whitespace at the end of the
// accumulated text, or a paragraph break.
var sentenceBoundary = regexp.MustCompile(`[.!?]["')\]]*\s$|\n\n$`)

// EndsAtSentenceBoundary reports whether text currently ends at a sentence
// boundary.
func EndsAtSentenceBoundary(text string) bool {
	if text == "" {
		return false
	}
	// A terminator at the very end of the stream also counts.
	if sentenceBoundary.MatchString(text) {
		return true
	}
	return strings.ContainsAny(text[len(text)-1:], ".!?")
}

// InterruptionEngine watches the token stream of the current speaker and
// decides, at sentence boundaries, whether a candidate should interject.
// Session-local; driven synchronously by the stream consumer.
type InterruptionEngine struct {
	cfg        config.LivelyConfig
	budget     *InterruptBudget
	scorer     TriggerScorer
	candidates []InterruptCandidate

	speaker models.Speaker
	buf     strings.Builder
	// sinceBoundary holds text accumulated since the last evaluated
	// boundary, so mid-sentence tokens are cheap to skip.
	sinceBoundary strings.Builder
}

// NewInterruptionEngine wires the engine for one session.
func NewInterruptionEngine(cfg config.LivelyConfig, budget *InterruptBudget, scorer TriggerScorer, candidates []InterruptCandidate) *InterruptionEngine {
	return &InterruptionEngine{
		cfg:        cfg,
		budget:     budget,
		scorer:     scorer,
		candidates: candidates,
	}
}

// SpeakerStarted resets accumulation for a new speaker's turn.
func (e *InterruptionEngine) SpeakerStarted(speaker models.Speaker) {
	e.speaker = speaker
	e.buf.Reset()
	e.sinceBoundary.Reset()
	e.budget.SpeakerStarted()
}

// Accumulated returns the text observed so far in the current turn.
func (e *InterruptionEngine) Accumulated() string {
	return e.buf.String()
}

// Observe feeds one streamed token into the engine. A non-nil decision
// means an interruption was accepted and charged against the budget; the
// caller performs the soft cutoff.
func (e *InterruptionEngine) Observe(ctx context.Context, token string) (*InterruptDecision, error) {
	e.buf.WriteString(token)
	e.sinceBoundary.WriteString(token)

	// The new text must contain a terminator, so a trailing space after an
	// already-evaluated boundary does not re-trigger evaluation.
	pending := e.sinceBoundary.String()
	if !strings.ContainsAny(pending, ".!?") && !strings.Contains(pending, "\n\n") {
		return nil, nil
	}
	if !EndsAtSentenceBoundary(e.buf.String()) {
		return nil, nil
	}
	e.sinceBoundary.Reset()

	if !e.budget.Allows() {
		return nil, nil
	}

	decision, err := e.scorer.ScoreTriggers(ctx, e.speaker, e.buf.String(), e.eligible())
	if err != nil {
		// Scoring is advisory; a failed call never stalls the stream.
		return nil, err
	}
	if decision.Interrupter == "" || decision.Score < e.threshold() {
		return nil, nil
	}

	e.budget.Mark()
	return &decision, nil
}

// threshold returns the relevance threshold adjusted by aggression: each
// level above 1 lowers the bar by 0.04.
func (e *InterruptionEngine) threshold() float64 {
	t := e.cfg.RelevanceThreshold - 0.04*float64(e.cfg.Aggression-1)
	if t < 0 {
		return 0
	}
	return t
}

// eligible filters out the current speaker from the candidate list.
func (e *InterruptionEngine) eligible() []InterruptCandidate {
	out := make([]InterruptCandidate, 0, len(e.candidates))
	for _, c := range e.candidates {
		if c.Speaker != e.speaker {
			out = append(out, c)
		}
	}
	return out
}

// HeuristicTriggerScorer scores triggers with regex and keyword cues; no
// LLM calls. Scores are additive per matched cue and capped at 1.
type HeuristicTriggerScorer struct{}

var (
	boldClaimRe = regexp.MustCompile(`(?i)\b(always|never|undeniabl\w*|unquestionabl\w*|certainly|obviously|prove[sd]?|guarantee[sd]?|no one can deny|beyond (any |all )?doubt|every single)\b`)
	weakPointRe = regexp.MustCompile(`(?i)\b(perhaps|possibly|might be|may be|arguably|i am not (entirely )?sure|it could be argued|to some extent|somewhat)\b`)
	contradictRe = regexp.MustCompile(`(?i)\b(despite what i said|contrary to|on the contrary|unlike what|which contradicts|but earlier)\b`)
)

func (HeuristicTriggerScorer) ScoreTriggers(_ context.Context, _ models.Speaker, text string, candidates []InterruptCandidate) (InterruptDecision, error) {
	if len(candidates) == 0 {
		return InterruptDecision{}, nil
	}

	// Only the text of the last couple of sentences matters; cap the scan.
	if len(text) > 2000 {
		text = text[len(text)-2000:]
	}

	best := InterruptDecision{}
	consider := func(interrupter models.Speaker, kind TriggerKind, score float64) {
		if score > best.Score {
			best = InterruptDecision{Interrupter: interrupter, Trigger: kind, Score: score}
		}
	}

	general := candidates[0].Speaker
	if n := len(boldClaimRe.FindAllString(text, -1)); n > 0 {
		consider(general, TriggerBoldClaim, capScore(0.55+0.15*float64(n)))
	}
	if n := len(weakPointRe.FindAllString(text, -1)); n > 0 {
		consider(general, TriggerWeakPoint, capScore(0.45+0.15*float64(n)))
	}
	if contradictRe.MatchString(text) {
		consider(general, TriggerContradiction, 0.8)
	}

	lower := strings.ToLower(text)
	for _, c := range candidates {
		for _, phrase := range c.KeyPhrases {
			if phrase != "" && strings.Contains(lower, strings.ToLower(phrase)) {
				consider(c.Speaker, TriggerKeyPhrase, 0.9)
			}
		}
	}

	return best, nil
}

func capScore(s float64) float64 {
	if s > 1 {
		return 1
	}
	return s
}
