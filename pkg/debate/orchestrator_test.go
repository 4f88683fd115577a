package debate

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debatelab/agora/pkg/config"
	"github.com/debatelab/agora/pkg/events"
	"github.com/debatelab/agora/pkg/llm"
	"github.com/debatelab/agora/pkg/models"
)

// memStore is the in-memory Store double.
type memStore struct {
	mu            sync.Mutex
	utterances    []*models.Utterance
	interventions map[string]*models.Intervention
	phases        []models.Phase
	finalStatus   models.DebateStatus
	errorMessage  string
	systemEvents  []string

	// appendFailures injects that many transient AppendUtterance failures.
	appendFailures int
	// appendErr makes every AppendUtterance fail permanently.
	appendErr error
}

func newMemStore() *memStore {
	return &memStore{interventions: make(map[string]*models.Intervention)}
}

func (s *memStore) AppendUtterance(_ context.Context, u *models.Utterance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.appendErr != nil {
		return s.appendErr
	}
	if s.appendFailures > 0 {
		s.appendFailures--
		return &TransientError{Err: errors.New("connection reset")}
	}
	for _, existing := range s.utterances {
		if existing.TurnIndex == u.TurnIndex {
			return nil
		}
	}
	s.utterances = append(s.utterances, u)
	return nil
}

func (s *memStore) AppendIntervention(_ context.Context, iv *models.Intervention) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *iv
	s.interventions[iv.ID] = &copied
	return nil
}

func (s *memStore) UpdateInterventionStatus(_ context.Context, id string, status models.InterventionStatus, response string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if iv, ok := s.interventions[id]; ok {
		iv.Status = status
		iv.Response = response
	}
	return nil
}

func (s *memStore) UpdateDebatePhase(_ context.Context, _ string, phase models.Phase, _ models.Speaker, _ models.DebateStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phases = append(s.phases, phase)
	return nil
}

func (s *memStore) FinishDebate(_ context.Context, _ string, status models.DebateStatus, errorMessage string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalStatus = status
	s.errorMessage = errorMessage
	return nil
}

func (s *memStore) RecordEvent(_ context.Context, _, channel string, _ any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.systemEvents = append(s.systemEvents, channel)
	return nil
}

func (s *memStore) LoadDebate(context.Context, string) (*models.Debate, error) {
	return nil, ErrNotFound
}

func (s *memStore) LoadTranscript(context.Context, string) ([]*models.Utterance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Utterance, len(s.utterances))
	copy(out, s.utterances)
	return out, nil
}

func (s *memStore) transcript() []*models.Utterance {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Utterance, len(s.utterances))
	copy(out, s.utterances)
	return out
}

func (s *memStore) status() models.DebateStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finalStatus
}

// capturePublisher records every published event and mirrors it on a channel
// for the wait helpers.
type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
	seq    int64
	ch     chan events.Event
}

func newCapturePublisher() *capturePublisher {
	return &capturePublisher{ch: make(chan events.Event, 16384)}
}

func (p *capturePublisher) Publish(debateID, eventType string, payload any) events.Event {
	p.mu.Lock()
	p.seq++
	e := events.Event{Seq: p.seq, Type: eventType, DebateID: debateID, Payload: payload}
	p.events = append(p.events, e)
	p.mu.Unlock()
	p.ch <- e
	return e
}

func (p *capturePublisher) countType(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Type == eventType {
			n++
		}
	}
	return n
}

func (p *capturePublisher) transitions() []events.PhaseTransitionPayload {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.PhaseTransitionPayload
	for _, e := range p.events {
		if e.Type == events.TypePhaseTransition {
			out = append(out, e.Payload.(events.PhaseTransitionPayload))
		}
	}
	return out
}

func waitForEvent(t *testing.T, ch <-chan events.Event, eventType string) events.Event {
	t.Helper()
	return waitForEventFunc(t, ch, func(e events.Event) bool { return e.Type == eventType })
}

func waitForEventFunc(t *testing.T, ch <-chan events.Event, match func(events.Event) bool) events.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case e := <-ch:
			if match(e) {
				return e
			}
		case <-deadline:
			t.Fatal("timed out waiting for event")
		}
	}
}

// expectQuiet drains events for the given window and fails on eventType.
func expectQuiet(t *testing.T, ch <-chan events.Event, eventType string, window time.Duration) {
	t.Helper()
	timer := time.After(window)
	for {
		select {
		case e := <-ch:
			if e.Type == eventType {
				t.Fatalf("unexpected %s event", eventType)
			}
		case <-timer:
			return
		}
	}
}

type orchestratorHarness struct {
	clock    *fakeClock
	provider *llm.ScriptedProvider
	store    *memStore
	pub      *capturePublisher
	orch     *Orchestrator

	cancel context.CancelFunc
	done   chan error
}

func newHarness(cfg *config.DebateConfig) *orchestratorHarness {
	h := &orchestratorHarness{
		clock:    newFakeClock(),
		provider: llm.NewScriptedProvider(),
		store:    newMemStore(),
		pub:      newCapturePublisher(),
	}
	h.provider.SetDefault(llm.ScriptedResponse{
		Text:  "The record presented so far carries this point. ",
		Usage: llm.Usage{InputTokens: 40, OutputTokens: 12, TotalTokens: 52},
	})
	debate := &models.Debate{
		ID:          "debate-1",
		Proposition: "This house believes AI debates are useful.",
		Config:      cfg,
	}
	h.orch = NewOrchestrator(debate, OrchestratorDeps{
		Clock:        h.clock,
		Store:        h.store,
		Publisher:    h.pub,
		Provider:     h.provider,
		DefaultModel: "default-model",
	})
	return h
}

func (h *orchestratorHarness) start(t *testing.T) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	h.done = make(chan error, 1)
	go func() { h.done <- h.orch.Run(ctx) }()
	t.Cleanup(cancel)
}

func (h *orchestratorHarness) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-h.done:
		return err
	case <-time.After(10 * time.Second):
		t.Fatal("orchestrator did not finish")
		return nil
	}
}

func turnBasedConfig(rounds int) *config.DebateConfig {
	cfg := config.DefaultDebateConfig()
	cfg.ConstructiveRounds = rounds
	cfg.TurnTimeout = 5 * time.Second
	cfg.Models = config.ModelAssignments{Pro: "pro-m", Con: "con-m", Moderator: "mod-m"}
	return cfg
}

func TestOrchestratorTurnBasedHappyPath(t *testing.T) {
	h := newHarness(turnBasedConfig(2))
	h.start(t)
	require.NoError(t, h.wait(t))

	transitions := h.pub.transitions()
	var phases []models.Phase
	for _, tr := range transitions {
		phases = append(phases, tr.To)
	}
	assert.Equal(t, []models.Phase{
		models.PhaseOpening, models.PhaseConstructive, models.PhaseCrossExam,
		models.PhaseRebuttal, models.PhaseClosing, models.PhaseSynthesis,
		models.PhaseCompleted,
	}, phases)

	utterances := h.store.transcript()
	require.Len(t, utterances, 15, "2 opening + 4 constructive + 4 cross-exam + 2 rebuttal + 2 closing + 1 synthesis")
	for i, u := range utterances {
		assert.Equal(t, i, u.TurnIndex, "turn indexes are contiguous")
	}

	assert.Equal(t, models.SpeakerPro, utterances[0].Speaker)
	assert.Equal(t, models.SpeakerCon, utterances[1].Speaker)
	assert.Equal(t, models.SpeakerModerator, utterances[14].Speaker)

	// Cross-exam answers back-reference their questions.
	require.NotNil(t, utterances[7].Metadata.RespondsTo)
	assert.Equal(t, 6, *utterances[7].Metadata.RespondsTo)
	require.NotNil(t, utterances[9].Metadata.RespondsTo)
	assert.Equal(t, 8, *utterances[9].Metadata.RespondsTo)

	assert.Equal(t, "pro-m", utterances[0].Metadata.Model)
	assert.Equal(t, 52, utterances[0].Metadata.Usage.TotalTokens)

	assert.Equal(t, models.StatusCompleted, h.store.status())
	assert.Equal(t, 1, h.pub.countType(events.TypeCompleted))
}

func TestOrchestratorPauseResumeMidConstructive(t *testing.T) {
	cfg := turnBasedConfig(1)
	h := newHarness(cfg)
	h.provider.EnqueueFor("pro-m",
		llm.ScriptedResponse{Text: "Opening case for the proposition. "},
		llm.ScriptedResponse{Text: "A half-formed thought ", BlockUntilCancelled: true},
		llm.ScriptedResponse{Text: "Recovered argument after the pause. "},
	)
	h.start(t)

	// Pause once the blocked constructive turn is streaming.
	waitForEventFunc(t, h.pub.ch, func(e events.Event) bool {
		p, ok := e.Payload.(events.TokenPayload)
		return ok && strings.Contains(p.Delta, "half-formed")
	})
	h.orch.Pause()
	waitForEvent(t, h.pub.ch, events.TypePaused)

	h.orch.Resume()
	waitForEvent(t, h.pub.ch, events.TypeResumed)

	require.NoError(t, h.wait(t))
	assert.Equal(t, models.StatusCompleted, h.store.status())

	utterances := h.store.transcript()
	require.Len(t, utterances, 9, "2 opening + 2 constructive + 2 rebuttal + 2 closing + 1 synthesis")
	for _, u := range utterances {
		assert.NotContains(t, u.Content, "half-formed", "partial text from the paused stream is discarded")
	}
	assert.Contains(t, utterances[2].Content, "Recovered argument", "the interrupted turn re-ran from the start")

	// The pause round-trips through the paused phase and back.
	var sawPaused, sawResume bool
	for _, tr := range h.pub.transitions() {
		if tr.From == models.PhaseConstructive && tr.To == models.PhasePaused {
			sawPaused = true
		}
		if tr.From == models.PhasePaused && tr.To == models.PhaseConstructive {
			sawResume = true
		}
	}
	assert.True(t, sawPaused)
	assert.True(t, sawResume)
}

func TestOrchestratorEmptyModelReassignment(t *testing.T) {
	cfg := turnBasedConfig(1)
	cfg.Models.Pro = "flaky"
	h := newHarness(cfg)
	// Three empty responses exhaust the initial attempt plus both retries.
	h.provider.EnqueueFor("flaky",
		llm.ScriptedResponse{}, llm.ScriptedResponse{}, llm.ScriptedResponse{},
	)
	h.start(t)

	e := waitForEvent(t, h.pub.ch, events.TypeModelError)
	payload, ok := e.Payload.(events.ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, models.SpeakerPro, payload.Role)
	assert.Equal(t, 1, h.pub.countType(events.TypeEmptyResponse))

	waitForEvent(t, h.pub.ch, events.TypePaused)
	h.orch.ReassignModel(models.SpeakerPro, "solid")
	waitForEvent(t, h.pub.ch, events.TypeResumed)

	require.NoError(t, h.wait(t))
	assert.Equal(t, models.StatusCompleted, h.store.status())

	utterances := h.store.transcript()
	require.Len(t, utterances, 9)
	assert.Equal(t, models.SpeakerPro, utterances[0].Speaker, "the failed turn re-ran, nothing was skipped")
	assert.Equal(t, "solid", utterances[0].Metadata.Model, "the re-run used the reassigned model")
}

func TestOrchestratorLivelyInterruptionBudget(t *testing.T) {
	cfg := turnBasedConfig(1)
	cfg.Mode = config.ModeLively
	cfg.Lively = config.LivelyConfig{
		Aggression:             3,
		MaxInterruptsPerMinute: 1,
		InterruptCooldown:      30 * time.Second,
		MinSpeakingTime:        0,
		RelevanceThreshold:     0.5,
	}
	h := newHarness(cfg)
	h.provider.EnqueueFor("pro-m",
		llm.ScriptedResponse{Text: "Settlement is obviously our destiny. Nothing else needs saying. "},
	)
	h.provider.EnqueueFor("con-m",
		// First con-m call is the interjection, second the con opening. The
		// con opening carries a trigger cue too, but the budget blocks it.
		llm.ScriptedResponse{Text: "Hold on, that claim needs support. "},
		llm.ScriptedResponse{Text: "Obviously the opposite is true. "},
	)
	h.start(t)
	require.NoError(t, h.wait(t))

	assert.Equal(t, 1, h.pub.countType(events.TypeInterruptFired),
		"one interruption per minute with a 30s cooldown")
	assert.Equal(t, 1, h.pub.countType(events.TypeSpeakerCutoff))

	utterances := h.store.transcript()
	require.Len(t, utterances, 10, "9 planned turns plus the interjection")

	cut := utterances[0]
	assert.Equal(t, models.SpeakerPro, cut.Speaker)
	assert.True(t, cut.Metadata.Truncated)
	assert.Equal(t, models.SpeakerCon, cut.Metadata.InterruptedBy)
	assert.Contains(t, cut.Content, "obviously our destiny.")
	assert.NotContains(t, cut.Content, "Nothing else needs saying", "the cutoff lands at the sentence boundary")

	interjection := utterances[1]
	assert.Equal(t, models.SpeakerCon, interjection.Speaker)
	require.NotNil(t, interjection.Metadata.RespondsTo)
	assert.Equal(t, 0, *interjection.Metadata.RespondsTo)
}

func TestOrchestratorDuelogicArbiterInterjection(t *testing.T) {
	cfg := config.DefaultDebateConfig()
	cfg.Mode = config.ModeDuelogic
	cfg.TurnTimeout = 5 * time.Second
	cfg.Models = config.ModelAssignments{
		Arbiter: "ma",
		Chairs:  map[string]string{"chair_1": "m1", "chair_2": "m2"},
	}
	cfg.Duelogic = config.DuelogicConfig{
		Accountability: config.AccountabilityStrict,
		MaxExchanges:   2,
		Tone:           config.ToneAcademic,
		Chairs: []config.ChairConfig{
			{Position: "chair_1", Framework: config.FrameworkUtilitarian},
			{Position: "chair_2", Framework: config.FrameworkVirtueEthics},
		},
	}

	h := newHarness(cfg)
	h.provider.EnqueueFor("m1",
		llm.ScriptedResponse{Text: "My framework settles this question without remainder. "},
	)
	h.provider.EnqueueFor("ma",
		// Evaluation of chair_1's exchange, the corrective interjection
		// itself, then a clean evaluation of chair_2.
		llm.ScriptedResponse{Text: `{"score": 30, "steel_man_attempted": false, "self_critique_attempted": false, "framework_consistency": 70, "intellectual_honesty": 35, "requires_interjection": true, "violation": "missing_steel_man"}`},
		llm.ScriptedResponse{Text: "Before continuing, present the opposing case in its strongest form. "},
		llm.ScriptedResponse{Text: `{"score": 85, "steel_man_attempted": true, "self_critique_attempted": true, "framework_consistency": 90, "intellectual_honesty": 80, "requires_interjection": false}`},
	)
	h.start(t)

	e := waitForEvent(t, h.pub.ch, events.TypeInterjection)
	payload, ok := e.Payload.(events.InterjectionPayload)
	require.True(t, ok)
	assert.Equal(t, models.SpeakerArbiter, payload.Speaker)
	assert.Equal(t, models.ViolationMissingSteelMan, payload.Violation)

	require.NoError(t, h.wait(t))
	assert.Equal(t, models.StatusCompleted, h.store.status())

	utterances := h.store.transcript()
	require.Len(t, utterances, 3, "chair_1, arbiter interjection, chair_2")

	assert.Equal(t, models.ChairSpeaker("chair_1"), utterances[0].Speaker)
	require.NotNil(t, utterances[0].Metadata.Evaluation)
	assert.Equal(t, 30, utterances[0].Metadata.Evaluation.Score)

	arb := utterances[1]
	assert.Equal(t, models.SpeakerArbiter, arb.Speaker)
	require.NotNil(t, arb.Metadata.RespondsTo)
	assert.Equal(t, 0, *arb.Metadata.RespondsTo)
	assert.Contains(t, arb.Content, "strongest form")

	assert.Equal(t, models.ChairSpeaker("chair_2"), utterances[2].Speaker)
	assert.Equal(t, 1, h.pub.countType(events.TypeInterjection))
}

func TestOrchestratorStepFlowAwaitsContinue(t *testing.T) {
	cfg := config.DefaultDebateConfig()
	cfg.Mode = config.ModeInformal
	cfg.Flow = config.FlowStep
	cfg.TurnTimeout = 5 * time.Second
	cfg.Informal = config.InformalConfig{Participants: 2, MaxTurns: 2}

	h := newHarness(cfg)
	h.start(t)

	waitForEvent(t, h.pub.ch, events.TypeUtterance)
	expectQuiet(t, h.pub.ch, events.TypeTurnStarted, 150*time.Millisecond)

	h.orch.Continue()
	waitForEvent(t, h.pub.ch, events.TypeUtterance)

	// Drive the rest to completion.
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case <-stop:
				return
			default:
				h.orch.Continue()
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
	require.NoError(t, h.wait(t))
	close(stop)

	assert.Equal(t, models.StatusCompleted, h.store.status())
	utterances := h.store.transcript()
	require.Len(t, utterances, 3, "2 informal turns + wrapup")
	assert.Equal(t, models.ParticipantSpeaker(1), utterances[0].Speaker)
	assert.Equal(t, models.ParticipantSpeaker(2), utterances[1].Speaker)
	assert.Equal(t, models.SpeakerModerator, utterances[2].Speaker)
}

func TestOrchestratorStopMidStream(t *testing.T) {
	h := newHarness(turnBasedConfig(1))
	h.provider.EnqueueFor("pro-m",
		llm.ScriptedResponse{Text: "An argument that never finishes ", BlockUntilCancelled: true},
	)
	h.start(t)

	waitForEvent(t, h.pub.ch, events.TypeToken)
	h.orch.Stop("user requested")

	require.NoError(t, h.wait(t))
	assert.Equal(t, models.StatusStopped, h.store.status())

	e := waitForEvent(t, h.pub.ch, events.TypeStopped)
	payload, ok := e.Payload.(events.ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, "user requested", payload.Reason)

	assert.Empty(t, h.store.transcript(), "the aborted stream is never persisted")
}

func TestOrchestratorTimeoutAbandonsTurn(t *testing.T) {
	cfg := turnBasedConfig(1)
	cfg.TurnTimeout = 30 * time.Millisecond
	h := newHarness(cfg)
	h.provider.EnqueueFor("pro-m",
		llm.ScriptedResponse{Text: "Stalling ", BlockUntilCancelled: true},
		llm.ScriptedResponse{Text: "Stalling ", BlockUntilCancelled: true},
		llm.ScriptedResponse{Text: "Stalling ", BlockUntilCancelled: true},
	)
	h.start(t)
	require.NoError(t, h.wait(t))

	assert.Equal(t, 3, h.pub.countType(events.TypeTimeout), "initial attempt plus two retries")
	assert.Equal(t, models.StatusCompleted, h.store.status())

	utterances := h.store.transcript()
	require.Len(t, utterances, 8, "the timed-out opening turn was skipped")
	assert.Equal(t, models.SpeakerCon, utterances[0].Speaker)
	assert.Contains(t, h.store.systemEvents, "turn_abandoned")
}

func TestOrchestratorQuestionWovenIntoDirectedTurn(t *testing.T) {
	h := newHarness(turnBasedConfig(1))

	iv, err := h.orch.Intervene(context.Background(), models.Intervention{
		Type:       models.InterventionQuestion,
		Content:    "What would change your mind?",
		DirectedTo: models.SpeakerCon,
	})
	require.NoError(t, err)

	h.start(t)

	e := waitForEventFunc(t, h.pub.ch, func(e events.Event) bool {
		p, ok := e.Payload.(events.InterventionResponsePayload)
		return ok && p.InterventionID == iv.ID && p.Status == models.InterventionCompleted
	})
	response := e.Payload.(events.InterventionResponsePayload)
	assert.NotEmpty(t, response.Response)

	require.NoError(t, h.wait(t))

	// The question reached the con model's prompt, not the pro model's.
	var conSawQuestion, proSawQuestion bool
	for _, call := range h.provider.Calls() {
		for _, msg := range call.Messages {
			if strings.Contains(msg.Content, "What would change your mind?") {
				switch call.Model {
				case "con-m":
					conSawQuestion = true
				case "pro-m":
					proSawQuestion = true
				}
			}
		}
	}
	assert.True(t, conSawQuestion)
	assert.False(t, proSawQuestion, "a directed question is not shown to other speakers")

	got := h.orch.queue.Get(iv.ID)
	require.NotNil(t, got)
	assert.Equal(t, models.InterventionCompleted, got.Status)
}

func TestOrchestratorRetriesTransientStoreFailures(t *testing.T) {
	h := newHarness(turnBasedConfig(1))
	h.store.appendFailures = 1
	h.start(t)
	require.NoError(t, h.wait(t))

	assert.Equal(t, models.StatusCompleted, h.store.status())
	assert.Len(t, h.store.transcript(), 9, "the transient failure was retried, nothing lost")
}

func TestOrchestratorPermanentStoreFailureFailsSession(t *testing.T) {
	h := newHarness(turnBasedConfig(1))
	h.store.appendErr = errors.New("relation does not exist")
	h.start(t)

	err := h.wait(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "relation does not exist")

	assert.Equal(t, models.StatusFailed, h.store.status())
	assert.Equal(t, 1, h.pub.countType(events.TypeError))

	transitions := h.pub.transitions()
	assert.Equal(t, models.PhaseError, transitions[len(transitions)-1].To)
}
