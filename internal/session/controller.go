// Package session drives a fixed-length quiz session: challenge sequencing,
// scoring, progress updates and the final tier.
package session

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quickcode/internal/challenge"
	"github.com/abhisek/quickcode/internal/challengegen"
	"github.com/abhisek/quickcode/internal/explain"
	"github.com/abhisek/quickcode/internal/logger"
	"github.com/abhisek/quickcode/internal/progress"
	"github.com/abhisek/quickcode/internal/store"
)

// EventLog receives session history. store.EventRepo satisfies it.
type EventLog interface {
	AppendSessionEvent(ctx context.Context, data store.SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Options configures a Controller. Only Store is required.
type Options struct {
	Store progress.Store

	// Seed is the static challenge set. Defaults to challenge.Seed().
	Seed []challenge.Challenge

	// Generator supplies challenges beyond the seed set. Nil always
	// serves the fallback challenge.
	Generator challengegen.Generator

	// Explainer supplies remediation for wrong answers. Nil always uses
	// the authored explanation.
	Explainer explain.Explainer

	Events EventLog
	Logger *logger.Logger

	// Topics is the catalog new challenges are drawn from. Defaults to
	// challenge.Topics.
	Topics []string

	Now   func() time.Time
	Rand  *rand.Rand
	NewID func() string
}

// Controller is the session state machine. It is safe for concurrent use;
// intents that arrive while a request is in flight fail with ErrBusy.
type Controller struct {
	store     progress.Store
	generator challengegen.Generator
	explainer explain.Explainer
	events    EventLog
	log       *logger.Logger
	seed      []challenge.Challenge
	fallback  challenge.Challenge
	topics    []string
	now       func() time.Time
	rng       *rand.Rand
	newID     func() string

	mu  sync.Mutex
	st  sessionState
	rec progress.Record
}

// New validates the seed set and loads the progress record. A load failure
// is logged and the session proceeds from a fresh record.
func New(ctx context.Context, opts Options) (*Controller, error) {
	if opts.Store == nil {
		return nil, errors.New("session: progress store is required")
	}

	seed := opts.Seed
	if seed == nil {
		seed = challenge.Seed()
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: seed set is empty", ErrNoChallenges)
	}
	for _, c := range seed {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoChallenges, err)
		}
	}
	fallback, ok := challenge.Find(seed, challenge.FallbackID)
	if !ok {
		return nil, fmt.Errorf("%w: fallback challenge %q missing from seed set", ErrNoChallenges, challenge.FallbackID)
	}

	c := &Controller{
		store:     opts.Store,
		generator: opts.Generator,
		explainer: opts.Explainer,
		events:    opts.Events,
		log:       opts.Logger,
		seed:      cloneChallenges(seed),
		fallback:  fallback,
		topics:    opts.Topics,
		now:       opts.Now,
		rng:       opts.Rand,
		newID:     opts.NewID,
		st:        sessionState{phase: PhaseInitializing, current: -1},
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	if len(c.topics) == 0 {
		c.topics = challenge.Topics
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}

	rec, err := c.store.Load(ctx)
	if err != nil {
		c.log.Warn("loading progress failed, starting fresh", "error", err)
		rec = progress.New()
	}
	c.rec = rec
	return c, nil
}

// Start begins a fresh session from the seed set. A learner with no
// completed challenges sees the lesson card first.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.st.phase.InFlight() {
		c.mu.Unlock()
		return ErrBusy
	}
	c.startLocked()
	ev := c.sessionEventLocked(store.SessionStart)
	c.mu.Unlock()

	c.appendSession(ctx, ev)
	return nil
}

// Restart abandons the current session and starts a new one. Progress is
// kept.
func (c *Controller) Restart(ctx context.Context) error {
	c.mu.Lock()
	if c.st.phase.InFlight() {
		c.mu.Unlock()
		return ErrBusy
	}
	var abandoned *store.SessionEventData
	if c.st.phase != PhaseInitializing && c.st.phase != PhaseFinished {
		ev := c.sessionEventLocked(store.SessionRestart)
		abandoned = &ev
	}
	c.startLocked()
	started := c.sessionEventLocked(store.SessionStart)
	c.mu.Unlock()

	if abandoned != nil {
		c.appendSession(ctx, *abandoned)
	}
	c.appendSession(ctx, started)
	return nil
}

func (c *Controller) startLocked() {
	c.st = sessionState{
		id:        c.newID(),
		pool:      cloneChallenges(c.seed),
		current:   0,
		startedAt: c.now(),
	}
	if c.rec.IsFirstSession() {
		c.st.phase = PhaseLesson
	} else {
		c.st.phase = PhasePresenting
	}
}

// SelectOption records the learner's choice. It is a no-op once the answer
// has been revealed.
func (c *Controller) SelectOption(option string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.st.revealed && c.st.phase == PhaseFeedback {
		return nil
	}
	if err := c.expectLocked(PhasePresenting); err != nil {
		return err
	}
	cur, _ := c.st.currentChallenge()
	if !cur.HasOption(option) {
		return fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}
	c.st.selected = option
	return nil
}

// Submit checks the selected option. A correct answer updates and saves
// progress before feedback is shown; a wrong answer asks the explainer
// for remediation and falls back to the authored explanation.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if err := c.expectLocked(PhasePresenting); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.st.selected == "" {
		c.mu.Unlock()
		return ErrNoSelection
	}

	cur, _ := c.st.currentChallenge()
	selected := c.st.selected
	correct := cur.IsCorrect(selected)
	var updated progress.Record
	if correct {
		updated = c.rec.ApplyCorrect(cur.ID, c.now())
	}
	sessionID := c.st.id
	c.st.phase = PhaseChecking
	c.mu.Unlock()

	explanation := cur.Explanation
	aiExplained := false
	if correct {
		if err := c.store.Save(context.WithoutCancel(ctx), updated); err != nil {
			c.log.Warn("saving progress failed", "session_id", sessionID, "error", err)
		}
	} else if c.explainer != nil {
		text, err := c.explainer.Explain(ctx, cur.Code, selected, cur.CorrectAnswer)
		if err != nil {
			c.log.Warn("explanation unavailable, using authored text", "challenge_id", cur.ID, "error", err)
		} else {
			explanation = text
			aiExplained = true
		}
	}

	c.mu.Lock()
	if correct {
		c.rec = updated
		c.st.correctCount++
	}
	c.st.revealed = true
	c.st.isCorrect = correct
	c.st.explanation = explanation
	c.st.phase = PhaseFeedback
	c.mu.Unlock()

	c.appendAnswer(ctx, store.AnswerEventData{
		SessionID:     sessionID,
		ChallengeID:   cur.ID,
		Topic:         cur.Topic,
		Difficulty:    string(cur.Difficulty),
		LearnerAnswer: selected,
		CorrectAnswer: cur.CorrectAnswer,
		Correct:       correct,
		AIExplained:   aiExplained,
	})
	return nil
}

// Advance moves past feedback. On the last challenge the session finishes;
// otherwise the next challenge comes from the pool or, past its end, from
// the generator with the fallback challenge on failure.
func (c *Controller) Advance(ctx context.Context) error {
	c.mu.Lock()
	if err := c.expectLocked(PhaseFeedback); err != nil {
		c.mu.Unlock()
		return err
	}

	if c.st.index >= SessionLength-1 {
		c.st.phase = PhaseFinished
		ev := c.sessionEventLocked(store.SessionEnd)
		c.mu.Unlock()
		c.appendSession(ctx, ev)
		return nil
	}

	c.st.index++
	c.st.clearTurn()

	if c.st.index < len(c.st.pool) {
		c.presentLocked(c.st.index)
		c.mu.Unlock()
		return nil
	}

	topic := c.pickTopicLocked()
	difficulty := challenge.DifficultyForLevel(c.rec.Level)
	c.st.phase = PhaseAwaitingChallenge
	c.mu.Unlock()

	next := c.generate(ctx, topic, difficulty)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.st.pool = append(c.st.pool, next)
	c.presentLocked(len(c.st.pool) - 1)
	return nil
}

func (c *Controller) generate(ctx context.Context, topic string, difficulty challenge.Difficulty) challenge.Challenge {
	if c.generator == nil {
		return c.fallback
	}
	ch, err := c.generator.Generate(ctx, topic, difficulty)
	if err == nil && ch != nil {
		if err = ch.Validate(); err == nil {
			return *ch
		}
	}
	if err == nil {
		err = errors.New("generator returned no challenge")
	}
	c.log.Warn("challenge generation failed, serving fallback",
		"topic", topic, "difficulty", difficulty, "error", err)
	return c.fallback
}

func (c *Controller) presentLocked(poolIndex int) {
	c.st.current = poolIndex
	cur := c.st.pool[poolIndex]
	if challenge.IsTeachable(cur.Topic) {
		c.st.phase = PhaseLesson
	} else {
		c.st.phase = PhasePresenting
	}
}

func (c *Controller) pickTopicLocked() string {
	if c.rng != nil {
		return c.topics[c.rng.IntN(len(c.topics))]
	}
	return c.topics[rand.IntN(len(c.topics))]
}

// DismissLesson leaves the lesson card for the challenge.
func (c *Controller) DismissLesson() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expectLocked(PhaseLesson); err != nil {
		return err
	}
	c.st.phase = PhasePresenting
	return nil
}

// ShowLesson reopens the lesson card for the current challenge.
func (c *Controller) ShowLesson() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.expectLocked(PhasePresenting); err != nil {
		return err
	}
	c.st.phase = PhaseLesson
	return nil
}

// State returns a snapshot of the session.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.snapshot()
}

// Progress returns a copy of the learner's progress record.
func (c *Controller) Progress() progress.Record {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rec.Clone()
}

// Signal returns the assistant signal for the current state.
func (c *Controller) Signal() Signal {
	return DeriveSignal(c.State())
}

// Summary scores the session so far. It is final once the phase is
// PhaseFinished.
func (c *Controller) Summary() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()
	return BuildSummary(c.st.correctCount)
}

func (c *Controller) expectLocked(want Phase) error {
	if c.st.phase.InFlight() {
		return ErrBusy
	}
	if c.st.phase != want {
		return fmt.Errorf("%w: %s", ErrInvalidPhase, c.st.phase)
	}
	return nil
}

func (c *Controller) sessionEventLocked(action string) store.SessionEventData {
	served := c.st.index + 1
	if action == store.SessionStart {
		served = 0
	}
	return store.SessionEventData{
		SessionID:       c.st.id,
		Action:          action,
		QuestionsServed: served,
		CorrectAnswers:  c.st.correctCount,
		DurationSecs:    int(c.now().Sub(c.st.startedAt).Seconds()),
	}
}

// History writes never fail an intent.
func (c *Controller) appendSession(ctx context.Context, ev store.SessionEventData) {
	if c.events == nil {
		return
	}
	if err := c.events.AppendSessionEvent(context.WithoutCancel(ctx), ev); err != nil {
		c.log.Warn("recording session event failed", "action", ev.Action, "error", err)
	}
}

func (c *Controller) appendAnswer(ctx context.Context, ev store.AnswerEventData) {
	if c.events == nil {
		return
	}
	if err := c.events.AppendAnswerEvent(context.WithoutCancel(ctx), ev); err != nil {
		c.log.Warn("recording answer event failed", "challenge_id", ev.ChallengeID, "error", err)
	}
}
