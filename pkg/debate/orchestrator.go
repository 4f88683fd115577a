package debate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/debate/prompt"
	"github.com/debatelab/agora/pkg/events"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

const (
	// emptyResponseRetries is the number of retries with an identical prompt
	// after an empty model response.
	emptyResponseRetries = 2
	// timeoutRetries bounds retries after a turn-level timeout.
	timeoutRetries = 2
	// defaultTurnBudget caps a turn when the configuration gives none.
	defaultTurnBudget = 60 * time.Second
)

// errPausedMidStream aborts the in-flight turn when a pause lands while
// streaming. The partial text is discarded, never persisted.
var errPausedMidStream = errors.New("paused mid-stream")

// OrchestratorDeps are the collaborators one orchestrator composes. Clock
// defaults to the system clock and Scorer to the heuristic trigger scorer.
type OrchestratorDeps struct {
	Clock     Clock
	Store     Store
	Publisher Publisher
	Provider  llm.Provider
	Personas  *config.PersonaRegistry
	Scorer    TriggerScorer
	// DefaultModel serves speakers with no explicit model assignment.
	DefaultModel string
	Logger       *slog.Logger
}

// Orchestrator is the top-level driver for one debate. It exclusively owns
// the state machine, the planner cursor, the intervention queue head, the
// interrupt budget and the active LLM stream. Run drives the session to a
// terminal status; the control methods are safe to call from other
// goroutines.
type Orchestrator struct {
	clock        Clock
	store        Store
	pub          Publisher
	provider     llm.Provider
	builder      *prompt.Builder
	personas     *config.PersonaRegistry
	defaultModel string
	log          *slog.Logger

	debate *models.Debate
	cfg    *config.DebateConfig

	machine *StateMachine
	planner *Planner
	queue   *InterventionQueue
	engine  *InterruptionEngine
	arbiter *Arbiter

	// history is the in-order transcript; nextIndex the next turn index.
	history   []*models.Utterance
	nextIndex int
	// indexByNumber maps phase-relative turn numbers to persisted turn
	// indexes, for resolving responds_to references. Reset per phase.
	indexByNumber map[int]int

	// Cutoff context consumed by the next interjection/resumption prompt.
	cutText     string
	cutSpeaker  models.Speaker
	interrupter models.Speaker
	violation   models.ViolationKind

	// pendingIV is the user intervention waiting to be woven into a turn.
	pendingIV *models.Intervention

	mu             sync.Mutex
	overrides      map[models.Speaker]string
	pauseRequested bool
	stopRequested  bool
	stopReason     string
	continues      int
	// autoPaused marks a pause the orchestrator imposed after a model
	// failure; a reassignment lifts it without an explicit resume.
	autoPaused bool

	// notify wakes the run loop out of any wait. Buffered so signalling
	// never blocks; waiters re-check flags on wake.
	notify chan struct{}
}

// NewOrchestrator wires an orchestrator for one debate. The debate's config
// must already be validated.
func NewOrchestrator(d *models.Debate, deps OrchestratorDeps) *Orchestrator {
	clock := deps.Clock
	if clock == nil {
		clock = RealClock{}
	}
	log := deps.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("debate_id", d.ID)

	cfg := d.Config
	o := &Orchestrator{
		clock:         clock,
		store:         deps.Store,
		pub:           deps.Publisher,
		provider:      deps.Provider,
		builder:       prompt.NewBuilder(),
		personas:      deps.Personas,
		defaultModel:  deps.DefaultModel,
		log:           log,
		debate:        d,
		cfg:           cfg,
		machine:       NewStateMachine(clock),
		planner:       NewPlanner(cfg),
		queue:         NewInterventionQueue(clock),
		indexByNumber: make(map[int]int),
		overrides:     make(map[models.Speaker]string),
		notify:        make(chan struct{}, 1),
	}

	if cfg.Mode.Interruptible() && (cfg.Mode != config.ModeDuelogic || cfg.Duelogic.Interruptions) {
		scorer := deps.Scorer
		if scorer == nil {
			scorer = HeuristicTriggerScorer{}
		}
		budget := NewInterruptBudget(clock, cfg.Lively)
		o.engine = NewInterruptionEngine(cfg.Lively, budget, scorer, o.interruptCandidates())
	}
	if cfg.Mode == config.ModeDuelogic {
		o.arbiter = NewArbiter(cfg.Duelogic.Accountability, deps.Provider, o.modelFor(models.SpeakerArbiter), o.builder, log)
	}
	return o
}

// --- Control surface (safe from other goroutines) ---

// Pause requests a pause at the next safe point; mid-stream, the in-flight
// turn is cancelled at the next token and its partial text discarded.
func (o *Orchestrator) Pause() {
	o.mu.Lock()
	o.pauseRequested = true
	o.autoPaused = false
	o.mu.Unlock()
	o.wake()
}

// Resume lifts a pause; the interrupted turn re-runs from the start.
func (o *Orchestrator) Resume() {
	o.mu.Lock()
	o.pauseRequested = false
	o.autoPaused = false
	o.mu.Unlock()
	o.wake()
}

// Stop requests graceful termination. The orchestrator cancels any in-flight
// stream at its next suspension point and exits with a stopped status.
func (o *Orchestrator) Stop(reason string) {
	o.mu.Lock()
	o.stopRequested = true
	o.stopReason = reason
	o.mu.Unlock()
	o.wake()
}

// Continue advances one turn in step flow.
func (o *Orchestrator) Continue() {
	o.mu.Lock()
	o.continues++
	o.mu.Unlock()
	o.wake()
}

// ReassignModel routes a role to a new model, applied at the next turn. If
// the debate auto-paused after a model failure, the reassignment lifts the
// pause and the failed turn re-runs.
func (o *Orchestrator) ReassignModel(role models.Speaker, model string) {
	o.mu.Lock()
	o.overrides[role] = model
	if o.autoPaused {
		o.pauseRequested = false
		o.autoPaused = false
	}
	o.mu.Unlock()
	o.wake()
}

// Intervene validates, enqueues and persists a user intervention. Control
// types additionally take effect immediately so mid-stream safe points react
// without waiting for the queue drain.
func (o *Orchestrator) Intervene(ctx context.Context, iv models.Intervention) (*models.Intervention, error) {
	iv.DebateID = o.debate.ID
	stored, err := o.queue.Enqueue(iv)
	if err != nil {
		return nil, err
	}

	// Persist synchronously so the intervention survives a crash between
	// enqueue and consumption.
	if err := withStoreRetry(ctx, func() error {
		return o.store.AppendIntervention(ctx, stored)
	}); err != nil {
		return nil, fmt.Errorf("persisting intervention: %w", err)
	}

	switch stored.Type {
	case models.InterventionPauseRequest:
		o.Pause()
	case models.InterventionResume:
		o.Resume()
	case models.InterventionStop:
		o.Stop("stopped by intervention")
	case models.InterventionContinue:
		o.Continue()
	case models.InterventionReassignModel:
		o.ReassignModel(stored.DirectedTo, stored.Content)
	default:
		o.wake()
	}
	return stored, nil
}

// Interventions exposes the queue snapshot for transcript assembly.
func (o *Orchestrator) Interventions() []*models.Intervention {
	return o.queue.All()
}

func (o *Orchestrator) wake() {
	select {
	case o.notify <- struct{}{}:
	default:
	}
}

// --- Run loop ---

// Run drives the debate to a terminal status. It returns nil on clean
// completion or stop, and the failing error when the session ends in error.
func (o *Orchestrator) Run(ctx context.Context) error {
	o.log.Info("starting debate orchestration",
		"mode", o.cfg.Mode,
		"flow", o.cfg.Flow,
		"proposition", o.debate.Proposition)

	first := FirstPhase(o.cfg.Mode)
	if err := o.transition(ctx, first, models.SpeakerSystem); err != nil {
		return o.failSession(ctx, err)
	}
	o.planner.Reset(first)
	o.indexByNumber = make(map[int]int)
	atPhaseStart := true

	for {
		if ctx.Err() != nil {
			o.Stop("context cancelled")
		}
		if o.stopping() {
			return o.finishStopped(ctx)
		}

		o.drainInterventions(ctx, atPhaseStart)

		if o.paused() {
			if err := o.runPaused(ctx); err != nil {
				if errors.Is(err, ErrStopped) {
					return o.finishStopped(ctx)
				}
				return o.failSession(ctx, err)
			}
			continue
		}

		turn := o.planner.Current()
		if turn == nil {
			next := o.machine.NextPhase()
			if next == "" {
				// Terminal phase already reached.
				return o.finishCompleted(ctx)
			}
			if err := o.transition(ctx, next, models.SpeakerSystem); err != nil {
				return o.failSession(ctx, err)
			}
			if next == models.PhaseCompleted {
				return o.finishCompleted(ctx)
			}
			o.planner.Reset(next)
			o.indexByNumber = make(map[int]int)
			atPhaseStart = true
			continue
		}
		atPhaseStart = false

		err := o.runTurn(ctx, *turn)
		switch {
		case err == nil:
		case errors.Is(err, errPausedMidStream):
			// Partial discarded; the pause is handled at the top of the loop
			// and the turn re-runs after resume.
		case errors.Is(err, ErrStopped):
			return o.finishStopped(ctx)
		default:
			return o.failSession(ctx, err)
		}
	}
}

func (o *Orchestrator) paused() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pauseRequested
}

func (o *Orchestrator) stopping() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.stopRequested
}

// transition performs a state machine transition, publishes it, and persists
// the new phase.
func (o *Orchestrator) transition(ctx context.Context, to models.Phase, speaker models.Speaker) error {
	tr, err := o.machine.TransitionTo(to, speaker)
	if err != nil {
		return err
	}
	o.pub.Publish(o.debate.ID, events.TypePhaseTransition, events.PhaseTransitionPayload{
		From:      tr.From,
		To:        tr.To,
		Speaker:   tr.Speaker,
		ElapsedMS: tr.ElapsedMS,
	})

	status := models.StatusRunning
	if to == models.PhasePaused {
		status = models.StatusPaused
	}
	if err := withStoreRetry(ctx, func() error {
		return o.store.UpdateDebatePhase(ctx, o.debate.ID, to, speaker, status)
	}); err != nil {
		return fmt.Errorf("persisting phase %s: %w", to, err)
	}
	o.log.Info("phase transition", "from", tr.From, "to", tr.To, "elapsed_ms", tr.ElapsedMS)
	return nil
}

// runPaused enters the paused phase and blocks until resume or stop. While
// paused, only control interventions are serviced.
func (o *Orchestrator) runPaused(ctx context.Context) error {
	if err := o.transition(ctx, models.PhasePaused, models.SpeakerSystem); err != nil {
		return err
	}
	o.pub.Publish(o.debate.ID, events.TypePaused, nil)

	for {
		o.mu.Lock()
		stopped := o.stopRequested
		pausedStill := o.pauseRequested
		o.mu.Unlock()

		if stopped {
			return ErrStopped
		}
		if !pausedStill {
			break
		}
		o.drainControlInterventions(ctx)

		select {
		case <-o.notify:
		case <-ctx.Done():
			return ErrStopped
		}
	}

	// Resume back into the snapshotted phase. The speaker of the transition
	// is the turn that was in flight, so subscribers see where the debate
	// picks up.
	resumeSpeaker := models.SpeakerSystem
	if turn := o.planner.Current(); turn != nil {
		resumeSpeaker = turn.Speaker
	}
	previous := o.machine.PreviousPhase()
	if err := o.transition(ctx, previous, resumeSpeaker); err != nil {
		return err
	}
	o.pub.Publish(o.debate.ID, events.TypeResumed, nil)
	return nil
}

// --- Turn execution ---

func (o *Orchestrator) runTurn(ctx context.Context, turn models.TurnDescriptor) error {
	o.pub.Publish(o.debate.ID, events.TypeTurnStarted, events.TurnStartedPayload{
		TurnIndex: o.nextIndex,
		Phase:     turn.Phase,
		Speaker:   turn.Speaker,
		Kind:      turn.Kind,
	})

	attached := o.attachableIntervention(turn)
	messages := o.buildMessages(turn, attached)
	model := o.modelFor(turn.Speaker)

	var (
		text    string
		usage   llm.Usage
		cutoff  *InterruptDecision
		started time.Time
	)
	for attempt := 0; ; attempt++ {
		started = o.clock.Now()
		var err error
		text, usage, cutoff, err = o.streamTurn(ctx, turn, model, messages)
		if err == nil && cutoff == nil && strings.TrimSpace(text) == "" {
			err = &llm.RequestError{Kind: llm.KindEmptyResponse, Err: llm.ErrEmptyResponse}
		}
		if err == nil {
			break
		}
		if errors.Is(err, errPausedMidStream) || errors.Is(err, ErrStopped) {
			return err
		}

		switch llm.KindOf(err) {
		case llm.KindEmptyResponse:
			if attempt < emptyResponseRetries {
				o.log.Warn("empty model response, retrying", "speaker", turn.Speaker, "attempt", attempt+1)
				continue
			}
			o.pub.Publish(o.debate.ID, events.TypeEmptyResponse, events.ErrorPayload{
				Reason: "model returned empty content after retries",
				Role:   turn.Speaker,
			})
			return o.pauseForModelFailure(ctx, turn, model, err)

		case llm.KindTimeout:
			o.pub.Publish(o.debate.ID, events.TypeTimeout, events.ErrorPayload{
				Reason: err.Error(),
				Role:   turn.Speaker,
			})
			if attempt < timeoutRetries {
				continue
			}
			// Turn abandoned; the debate moves on.
			o.recordSystemEvent(ctx, "turn_abandoned", map[string]any{
				"speaker": turn.Speaker,
				"kind":    turn.Kind,
				"reason":  "timeout",
			})
			o.planner.Advance()
			return nil

		case llm.KindPermanent:
			return fmt.Errorf("model %s: %w", model, err)

		default:
			// Rate-limit and transient errors exhausted the gateway's own
			// retries; surface as a model failure a reassignment can fix.
			return o.pauseForModelFailure(ctx, turn, model, err)
		}
	}
	latency := o.clock.ElapsedSince(started)

	u := o.newUtterance(turn, text, model, usage, latency, cutoff)

	var eval *models.QualityEvaluation
	if o.arbiter != nil && turn.Kind == models.PromptExchange && cutoff == nil {
		e := o.arbiter.Evaluate(ctx, u, o.frameworkFor(turn.Speaker), o.opponentPositions(turn.Speaker))
		u.Metadata.Evaluation = &e
		eval = &e
	}

	if err := o.persistUtterance(ctx, turn, u); err != nil {
		return err
	}

	if attached != nil {
		o.completeIntervention(ctx, attached, u.Content)
		o.pendingIV = nil
	}
	o.clearCutoffContext(turn)

	if cutoff != nil {
		o.pub.Publish(o.debate.ID, events.TypeSpeakerCutoff, events.SpeakerCutoffPayload{
			Speaker:     turn.Speaker,
			PartialText: text,
		})
		o.recordSystemEvent(ctx, "interruption", map[string]any{
			"interrupter": cutoff.Interrupter,
			"interrupted": turn.Speaker,
			"trigger":     cutoff.Trigger,
			"score":       cutoff.Score,
		})
		o.pub.Publish(o.debate.ID, events.TypeInterruptFired, events.InterruptFiredPayload{
			Interrupter: cutoff.Interrupter,
			Interrupted: turn.Speaker,
		})
		o.cutText = text
		o.cutSpeaker = turn.Speaker
		o.interrupter = cutoff.Interrupter
		o.planner.OnCutoff(turn, cutoff.Interrupter)
	}

	if eval != nil && o.arbiter.ShouldInterject(*eval) {
		violation := o.arbiter.ViolationFor(*eval)
		o.log.Info("arbiter interjecting", "speaker", turn.Speaker, "violation", violation, "score", eval.Score)
		o.cutText = u.Content
		o.cutSpeaker = u.Speaker
		o.violation = violation
		num := turn.Number
		o.planner.InsertNext(models.TurnDescriptor{
			Number:     num,
			Speaker:    models.SpeakerArbiter,
			Kind:       models.PromptInterjection,
			Budget:     turn.Budget,
			RespondsTo: &num,
		})
		o.pub.Publish(o.debate.ID, events.TypeInterjection, events.InterjectionPayload{
			Speaker:   models.SpeakerArbiter,
			Violation: violation,
		})
	}

	o.planner.Advance()

	if o.cfg.Flow == config.FlowStep {
		return o.awaitContinue(ctx)
	}
	return nil
}

// streamTurn consumes one LLM stream, publishing tokens and watching for
// interruptions, pause and stop. On a soft cutoff it returns the partial
// text with the accepted decision.
func (o *Orchestrator) streamTurn(ctx context.Context, turn models.TurnDescriptor, model string, messages []llm.Message) (string, llm.Usage, *InterruptDecision, error) {
	budget := turn.Budget
	if budget <= 0 {
		budget = defaultTurnBudget
	}
	callCtx, cancel := context.WithTimeout(ctx, budget)
	defer cancel()

	stream, err := o.provider.Stream(callCtx, model, messages, llm.Options{
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
	})
	if err != nil {
		return "", llm.Usage{}, nil, err
	}

	watching := o.engine != nil && turn.Kind != models.PromptInterjection && turn.Kind != models.PromptResumption
	if watching {
		o.engine.SpeakerStarted(turn.Speaker)
	}

	var buf strings.Builder
	var usage llm.Usage
	drain := func() {
		cancel()
		for range stream {
		}
	}

	for {
		select {
		case chunk, ok := <-stream:
			if !ok {
				return buf.String(), usage, nil, nil
			}
			switch c := chunk.(type) {
			case *llm.TextChunk:
				buf.WriteString(c.Content)
				o.pub.Publish(o.debate.ID, events.TypeToken, events.TokenPayload{
					Speaker: turn.Speaker,
					Delta:   c.Content,
				})

				if o.stopping() {
					drain()
					return "", usage, nil, ErrStopped
				}
				if o.paused() {
					drain()
					return "", usage, nil, errPausedMidStream
				}

				if watching {
					decision, serr := o.engine.Observe(callCtx, c.Content)
					if serr != nil {
						o.log.Warn("trigger scoring failed", "error", serr)
					}
					if decision != nil {
						o.pub.Publish(o.debate.ID, events.TypeInterruptScheduled, events.InterruptScheduledPayload{
							Interrupter: decision.Interrupter,
							Trigger:     string(decision.Trigger),
							Score:       decision.Score,
						})
						// The decision fires at a sentence boundary, so the
						// current sentence is already complete: cut off now.
						drain()
						return buf.String(), usage, decision, nil
					}
				}

			case *llm.UsageChunk:
				usage = c.Usage

			case *llm.ErrorChunk:
				if ctx.Err() != nil {
					return "", usage, nil, ErrStopped
				}
				return buf.String(), usage, nil, c.Err
			}

		case <-o.notify:
			// A control method fired mid-wait; re-check the flags.
			if o.stopping() {
				drain()
				return "", usage, nil, ErrStopped
			}
			if o.paused() {
				drain()
				return "", usage, nil, errPausedMidStream
			}

		case <-callCtx.Done():
			drain()
			if ctx.Err() != nil {
				return "", usage, nil, ErrStopped
			}
			return "", usage, nil, &llm.RequestError{Kind: llm.KindTimeout, Err: callCtx.Err()}
		}
	}
}

// pauseForModelFailure auto-pauses the debate so the client can reassign the
// failing role; the turn is not advanced and re-runs after the reassignment.
func (o *Orchestrator) pauseForModelFailure(ctx context.Context, turn models.TurnDescriptor, model string, cause error) error {
	o.pub.Publish(o.debate.ID, events.TypeModelError, events.ErrorPayload{
		Reason: fmt.Sprintf("model %s failed for role %s", model, turn.Speaker),
		Role:   turn.Speaker,
	})
	o.recordSystemEvent(ctx, "model_failure", map[string]any{
		"speaker": turn.Speaker,
		"model":   model,
		"error":   cause.Error(),
	})

	o.mu.Lock()
	o.pauseRequested = true
	o.autoPaused = true
	o.mu.Unlock()
	return nil
}

// --- Prompt assembly ---

func (o *Orchestrator) buildMessages(turn models.TurnDescriptor, attached *models.Intervention) []llm.Message {
	in := prompt.BuildInput{
		Turn:             turn,
		Proposition:      o.debate.Proposition,
		Context:          o.debate.Context,
		History:          o.history,
		Persona:          o.personaFor(turn.Speaker),
		Brevity:          o.cfg.Brevity,
		RequireCitations: o.cfg.RequireCitations,
		Intervention:     attached,
	}
	if turn.Speaker.IsChair() {
		in.Framework = o.frameworkFor(turn.Speaker)
		in.Tone = o.cfg.Duelogic.Tone
	}
	switch turn.Kind {
	case models.PromptInterjection:
		in.InterruptedText = o.cutText
		in.InterruptedSpeaker = o.cutSpeaker
		in.Violation = o.violation
	case models.PromptResumption:
		in.InterruptedText = o.cutText
		in.InterruptedSpeaker = o.interrupter
	}
	return o.builder.Build(in)
}

// clearCutoffContext drops stale cutoff state once a regular turn has
// consumed or superseded it.
func (o *Orchestrator) clearCutoffContext(turn models.TurnDescriptor) {
	switch turn.Kind {
	case models.PromptInterjection:
		o.violation = ""
	case models.PromptResumption:
		o.cutText = ""
		o.cutSpeaker = ""
		o.interrupter = ""
	default:
		o.cutText = ""
		o.cutSpeaker = ""
		o.interrupter = ""
		o.violation = ""
	}
}

func (o *Orchestrator) modelFor(s models.Speaker) string {
	o.mu.Lock()
	if m, ok := o.overrides[s]; ok {
		o.mu.Unlock()
		return m
	}
	o.mu.Unlock()

	var m string
	switch s {
	case models.SpeakerPro:
		m = o.cfg.Models.Pro
	case models.SpeakerCon:
		m = o.cfg.Models.Con
	case models.SpeakerModerator:
		m = o.cfg.Models.Moderator
	case models.SpeakerArbiter:
		m = o.cfg.Models.Arbiter
	default:
		if s.IsChair() {
			m = o.cfg.Models.Chairs[s.ChairPosition()]
		}
	}
	if m == "" {
		return o.defaultModel
	}
	return m
}

func (o *Orchestrator) personaFor(s models.Speaker) *config.PersonaConfig {
	if o.personas == nil {
		return nil
	}
	var id string
	switch s {
	case models.SpeakerPro:
		id = o.cfg.Personas.Pro
	case models.SpeakerCon:
		id = o.cfg.Personas.Con
	default:
		if s.IsChair() {
			id = o.cfg.Personas.Chairs[s.ChairPosition()]
		}
	}
	if id == "" {
		return nil
	}
	p, ok := o.personas.Get(id)
	if !ok {
		return nil
	}
	return &p
}

func (o *Orchestrator) frameworkFor(s models.Speaker) config.Framework {
	for _, chair := range o.cfg.Duelogic.Chairs {
		if models.ChairSpeaker(chair.Position) == s {
			return chair.Framework
		}
	}
	return ""
}

// opponentPositions summarises the other chairs for the arbiter evaluation.
func (o *Orchestrator) opponentPositions(s models.Speaker) []string {
	var out []string
	for _, chair := range o.cfg.Duelogic.Chairs {
		speaker := models.ChairSpeaker(chair.Position)
		if speaker != s {
			out = append(out, fmt.Sprintf("%s argues from the %s framework", speaker, chair.Framework))
		}
	}
	return out
}

// interruptCandidates lists the speakers eligible to interject, per mode.
func (o *Orchestrator) interruptCandidates() []InterruptCandidate {
	switch o.cfg.Mode {
	case config.ModeDuelogic:
		out := make([]InterruptCandidate, 0, len(o.cfg.Duelogic.Chairs))
		for _, chair := range o.cfg.Duelogic.Chairs {
			out = append(out, InterruptCandidate{Speaker: models.ChairSpeaker(chair.Position)})
		}
		return out
	default:
		return []InterruptCandidate{
			{Speaker: models.SpeakerPro},
			{Speaker: models.SpeakerCon},
		}
	}
}

// --- Persistence ---

func (o *Orchestrator) newUtterance(turn models.TurnDescriptor, text, model string, usage llm.Usage, latencyMS int64, cutoff *InterruptDecision) *models.Utterance {
	u := &models.Utterance{
		ID:        NewID(),
		DebateID:  o.debate.ID,
		TurnIndex: o.nextIndex,
		OffsetMS:  o.machine.ElapsedMS(),
		Phase:     turn.Phase,
		Speaker:   turn.Speaker,
		Content:   text,
		Metadata: models.UtteranceMetadata{
			Model: model,
			Usage: models.TokenUsage{
				InputTokens:  usage.InputTokens,
				OutputTokens: usage.OutputTokens,
				TotalTokens:  usage.TotalTokens,
			},
			LatencyMS: latencyMS,
		},
		CreatedAt: o.clock.Now(),
	}
	if cutoff != nil {
		u.Metadata.Truncated = true
		u.Metadata.InterruptedBy = cutoff.Interrupter
	}
	if turn.RespondsTo != nil {
		if idx, ok := o.indexByNumber[*turn.RespondsTo]; ok {
			u.Metadata.RespondsTo = &idx
		}
	}
	return u
}

func (o *Orchestrator) persistUtterance(ctx context.Context, turn models.TurnDescriptor, u *models.Utterance) error {
	if err := withStoreRetry(ctx, func() error {
		return o.store.AppendUtterance(ctx, u)
	}); err != nil {
		return fmt.Errorf("persisting utterance %d: %w", u.TurnIndex, err)
	}

	o.indexByNumber[turn.Number] = u.TurnIndex
	o.history = append(o.history, u)
	o.nextIndex++

	o.pub.Publish(o.debate.ID, events.TypeUtterance, events.UtterancePayload{Utterance: u})
	return nil
}

func (o *Orchestrator) recordSystemEvent(ctx context.Context, channel string, payload map[string]any) {
	if err := o.store.RecordEvent(ctx, o.debate.ID, channel, payload); err != nil {
		o.log.Warn("failed to record system event", "channel", channel, "error", err)
	}
}

// --- Interventions ---

// attachableIntervention returns the pending user intervention when the turn
// can carry it: content turns only, honouring directed_to.
func (o *Orchestrator) attachableIntervention(turn models.TurnDescriptor) *models.Intervention {
	iv := o.pendingIV
	if iv == nil {
		return nil
	}
	if turn.Kind == models.PromptInterjection || turn.Kind == models.PromptResumption {
		return nil
	}
	if iv.DirectedTo != "" && iv.DirectedTo != turn.Speaker {
		return nil
	}
	return iv
}

// drainInterventions consumes queued interventions at a safe point. Control
// types were already applied by Intervene; here they are acknowledged.
// Content interventions are attached to the next eligible turn, one at a
// time.
func (o *Orchestrator) drainInterventions(ctx context.Context, phaseBoundary bool) {
	for {
		iv := o.queue.PeekReady(phaseBoundary)
		if iv == nil {
			return
		}

		switch iv.Type {
		case models.InterventionPauseRequest, models.InterventionResume,
			models.InterventionStop, models.InterventionContinue:
			o.acknowledge(ctx, iv)

		case models.InterventionReassignModel:
			_ = o.queue.MarkProcessing(iv.ID)
			response := fmt.Sprintf("model for %s reassigned to %s", iv.DirectedTo, iv.Content)
			_ = o.queue.MarkCompleted(iv.ID, response)
			o.persistInterventionStatus(ctx, iv.ID, models.InterventionCompleted, response)
			o.publishInterventionResponse(iv, models.InterventionCompleted, response)

		default:
			// One content intervention in flight at a time; the rest wait.
			if o.pendingIV != nil {
				return
			}
			_ = o.queue.MarkProcessing(iv.ID)
			o.persistInterventionStatus(ctx, iv.ID, models.InterventionProcessing, "")
			o.pendingIV = iv
		}
	}
}

// drainControlInterventions acknowledges control and reassignment records
// while paused, leaving content interventions queued for after resume.
func (o *Orchestrator) drainControlInterventions(ctx context.Context) {
	for _, iv := range o.queue.All() {
		if iv.Status != models.InterventionQueued {
			continue
		}
		switch iv.Type {
		case models.InterventionPauseRequest, models.InterventionResume,
			models.InterventionStop, models.InterventionContinue:
			o.acknowledge(ctx, iv)
		case models.InterventionReassignModel:
			_ = o.queue.MarkProcessing(iv.ID)
			response := fmt.Sprintf("model for %s reassigned to %s", iv.DirectedTo, iv.Content)
			_ = o.queue.MarkCompleted(iv.ID, response)
			o.persistInterventionStatus(ctx, iv.ID, models.InterventionCompleted, response)
			o.publishInterventionResponse(iv, models.InterventionCompleted, response)
		}
	}
}

func (o *Orchestrator) acknowledge(ctx context.Context, iv *models.Intervention) {
	_ = o.queue.MarkProcessing(iv.ID)
	_ = o.queue.MarkCompleted(iv.ID, "acknowledged")
	o.persistInterventionStatus(ctx, iv.ID, models.InterventionCompleted, "acknowledged")
	o.publishInterventionResponse(iv, models.InterventionCompleted, "acknowledged")
}

func (o *Orchestrator) completeIntervention(ctx context.Context, iv *models.Intervention, response string) {
	_ = o.queue.MarkCompleted(iv.ID, response)
	o.persistInterventionStatus(ctx, iv.ID, models.InterventionCompleted, response)
	o.publishInterventionResponse(iv, models.InterventionCompleted, response)
}

func (o *Orchestrator) persistInterventionStatus(ctx context.Context, id string, status models.InterventionStatus, response string) {
	if err := withStoreRetry(ctx, func() error {
		return o.store.UpdateInterventionStatus(ctx, id, status, response)
	}); err != nil {
		o.log.Warn("failed to persist intervention status", "intervention_id", id, "error", err)
	}
}

func (o *Orchestrator) publishInterventionResponse(iv *models.Intervention, status models.InterventionStatus, response string) {
	o.pub.Publish(o.debate.ID, events.TypeInterventionResponse, events.InterventionResponsePayload{
		InterventionID: iv.ID,
		Type:           iv.Type,
		Status:         status,
		Response:       response,
	})
}

// awaitContinue blocks in step flow until the user advances, pauses or
// stops.
func (o *Orchestrator) awaitContinue(ctx context.Context) error {
	for {
		o.mu.Lock()
		if o.stopRequested {
			o.mu.Unlock()
			return ErrStopped
		}
		if o.pauseRequested {
			o.mu.Unlock()
			return nil
		}
		if o.continues > 0 {
			o.continues--
			o.mu.Unlock()
			return nil
		}
		o.mu.Unlock()

		o.drainInterventions(ctx, false)

		select {
		case <-o.notify:
		case <-ctx.Done():
			return ErrStopped
		}
	}
}

// --- Finalisation ---

// failPendingInterventions drives every non-terminal intervention to failed
// before the debate reaches its terminal status.
func (o *Orchestrator) failPendingInterventions(ctx context.Context, reason string) {
	for _, iv := range o.queue.All() {
		if iv.Status == models.InterventionCompleted || iv.Status == models.InterventionFailed {
			continue
		}
		_ = o.queue.MarkFailed(iv.ID, reason)
		o.persistInterventionStatus(ctx, iv.ID, models.InterventionFailed, reason)
		o.publishInterventionResponse(iv, models.InterventionFailed, reason)
	}
	o.pendingIV = nil
}

func (o *Orchestrator) finishCompleted(ctx context.Context) error {
	o.failPendingInterventions(ctx, "debate completed")
	o.pub.Publish(o.debate.ID, events.TypeCompleted, map[string]any{
		"elapsed_ms": o.machine.ElapsedMS(),
		"utterances": o.nextIndex,
	})
	if err := withStoreRetry(ctx, func() error {
		return o.store.FinishDebate(ctx, o.debate.ID, models.StatusCompleted, "")
	}); err != nil {
		o.log.Error("failed to persist completion", "error", err)
	}
	o.log.Info("debate completed", "utterances", o.nextIndex, "elapsed_ms", o.machine.ElapsedMS())
	return nil
}

func (o *Orchestrator) finishStopped(ctx context.Context) error {
	o.mu.Lock()
	reason := o.stopReason
	o.mu.Unlock()
	if reason == "" {
		reason = "stopped"
	}

	o.failPendingInterventions(ctx, "debate stopped")
	o.pub.Publish(o.debate.ID, events.TypeStopped, events.ErrorPayload{Reason: reason})
	if err := withStoreRetry(ctx, func() error {
		return o.store.FinishDebate(ctx, o.debate.ID, models.StatusStopped, reason)
	}); err != nil {
		o.log.Error("failed to persist stop", "error", err)
	}
	o.log.Info("debate stopped", "reason", reason)
	return nil
}

func (o *Orchestrator) failSession(ctx context.Context, cause error) error {
	o.log.Error("debate failed", "error", cause)

	if !o.machine.Phase().IsTerminal() {
		if tr, err := o.machine.Fail(models.SpeakerSystem); err == nil {
			o.pub.Publish(o.debate.ID, events.TypePhaseTransition, events.PhaseTransitionPayload{
				From:      tr.From,
				To:        tr.To,
				Speaker:   tr.Speaker,
				ElapsedMS: tr.ElapsedMS,
			})
		}
	}
	o.pub.Publish(o.debate.ID, events.TypeError, events.ErrorPayload{Reason: cause.Error()})
	o.recordSystemEvent(ctx, "session_failure", map[string]any{"error": cause.Error()})
	o.failPendingInterventions(ctx, "debate failed")

	if err := withStoreRetry(ctx, func() error {
		return o.store.FinishDebate(ctx, o.debate.ID, models.StatusFailed, cause.Error())
	}); err != nil {
		o.log.Error("failed to persist failure", "error", err)
	}
	return cause
}
