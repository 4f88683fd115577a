package debate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"regexp"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/debate/prompt"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

// evaluationCacheSize bounds the per-arbiter LRU of past verdicts.
const evaluationCacheSize = 128

// Arbiter evaluates completed chair utterances for adherence to debate
// principles and decides whether a corrective interjection is due.
type Arbiter struct {
	level    config.Accountability
	provider llm.Provider
	model    string
	builder  *prompt.Builder
	cache    *lru.Cache[string, models.QualityEvaluation]
	log      *slog.Logger
}

// NewArbiter wires an arbiter for one session. model is the evaluation
// model (the cheap trigger model is a good choice); provider may be nil for
// relaxed accountability, which never calls out.
func NewArbiter(level config.Accountability, provider llm.Provider, model string, builder *prompt.Builder, log *slog.Logger) *Arbiter {
	cache, _ := lru.New[string, models.QualityEvaluation](evaluationCacheSize)
	return &Arbiter{
		level:    level,
		provider: provider,
		model:    model,
		builder:  builder,
		cache:    cache,
		log:      log,
	}
}

// cacheKey builds the dedup key: speaker plus a hash of the text prefix, so
// identical content is never evaluated twice.
func cacheKey(speaker models.Speaker, content string) string {
	prefix := content
	if len(prefix) > 256 {
		prefix = prefix[:256]
	}
	sum := sha256.Sum256([]byte(prefix))
	return string(speaker) + ":" + hex.EncodeToString(sum[:])
}

// Evaluate returns the quality verdict for a chair utterance. Relaxed
// accountability is heuristic-only; moderate and strict call the evaluation
// model, falling back to heuristics when the call fails.
func (a *Arbiter) Evaluate(ctx context.Context, u *models.Utterance, framework config.Framework, opponents []string) models.QualityEvaluation {
	key := cacheKey(u.Speaker, u.Content)
	if cached, ok := a.cache.Get(key); ok {
		return cached
	}

	var eval models.QualityEvaluation
	if a.level == config.AccountabilityRelaxed || a.provider == nil {
		eval = heuristicEvaluate(u.Content)
	} else {
		var err error
		eval, err = a.llmEvaluate(ctx, u, framework, opponents)
		if err != nil {
			a.log.Warn("LLM evaluation failed, falling back to heuristics",
				"speaker", u.Speaker,
				"error", err)
			eval = heuristicEvaluate(u.Content)
		}
	}

	a.cache.Add(key, eval)
	return eval
}

func (a *Arbiter) llmEvaluate(ctx context.Context, u *models.Utterance, framework config.Framework, opponents []string) (models.QualityEvaluation, error) {
	messages := a.builder.BuildEvaluationMessages(u, framework, opponents)

	completion, err := a.provider.Complete(ctx, a.model, messages, llm.Options{
		JSONOutput: true,
		MaxTokens:  512,
	})
	if err != nil {
		return models.QualityEvaluation{}, err
	}

	var eval models.QualityEvaluation
	if err := json.Unmarshal([]byte(completion.Text), &eval); err != nil {
		return models.QualityEvaluation{}, err
	}
	return eval, nil
}

// ShouldInterject applies the accountability level to a verdict.
func (a *Arbiter) ShouldInterject(eval models.QualityEvaluation) bool {
	switch a.level {
	case config.AccountabilityRelaxed:
		return false
	case config.AccountabilityModerate:
		return eval.RequiresInterjection && eval.Score < 40
	case config.AccountabilityStrict:
		return eval.RequiresInterjection || eval.Score < 60 ||
			!eval.SteelManAttempted || !eval.SelfCritiqueAttempted
	default:
		return false
	}
}

// ViolationFor names the violation an interjection should correct, deriving
// one when the evaluator did not.
func (a *Arbiter) ViolationFor(eval models.QualityEvaluation) models.ViolationKind {
	if eval.Violation != "" {
		return eval.Violation
	}
	switch {
	case !eval.SteelManAttempted:
		return models.ViolationMissingSteelMan
	case !eval.SelfCritiqueAttempted:
		return models.ViolationMissingSelfCritique
	case eval.FrameworkConsistency < 50:
		return models.ViolationFrameworkInconsistency
	default:
		return models.ViolationRhetoricalEvasion
	}
}

// Heuristic cue patterns for the relaxed level and the LLM fallback.
var (
	steelManRe     = regexp.MustCompile(`(?i)(the strongest (version|form|case)|my opponent('s| is| would) (argu|point|claim|right)|to be fair to the other side|the best argument against|(steel.?man)|charitabl\w* read)`)
	selfCritiqueRe = regexp.MustCompile(`(?i)(i (concede|admit|acknowledge|grant)|admittedly|my (position|view|framework) (struggles|strains|is weakest|has a weakness)|a (fair|real) (objection|criticism) to my|to be fair,|i may be wrong)`)
	hedgingRe      = regexp.MustCompile(`(?i)(perhaps|might|possibly|arguably|to some extent|it depends)`)
)

// heuristicEvaluate scores an utterance from surface cues alone.
func heuristicEvaluate(content string) models.QualityEvaluation {
	eval := models.QualityEvaluation{
		SteelManAttempted:     steelManRe.MatchString(content),
		SelfCritiqueAttempted: selfCritiqueRe.MatchString(content),
		FrameworkConsistency:  70,
	}

	score := 50
	if eval.SteelManAttempted {
		score += 20
		eval.SteelManQuality = 60
	}
	if eval.SelfCritiqueAttempted {
		score += 20
		eval.SelfCritiqueQuality = 60
	}
	honesty := 50
	if hedgingRe.MatchString(content) {
		honesty += 20
	}
	if eval.SelfCritiqueAttempted {
		honesty += 20
	}
	eval.IntellectualHonesty = honesty
	eval.Score = score

	if !eval.SteelManAttempted && !eval.SelfCritiqueAttempted {
		eval.RequiresInterjection = true
		eval.Violation = models.ViolationMissingSteelMan
	}
	return eval
}
