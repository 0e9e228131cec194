package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/scoring"
)

// DefaultTimeLimit is the wall-clock budget of a session in seconds.
const DefaultTimeLimit = 1800

var (
	// ErrCompleted is returned when mutating a completed session.
	ErrCompleted = errors.New("session already completed")

	// ErrNotStarted is returned when mutating a session that was never started.
	ErrNotStarted = errors.New("session not started")

	// ErrUnknownQuestion is returned when answering a question outside the session.
	ErrUnknownQuestion = errors.New("unknown question")
)

// QuestionSource supplies assessments. *bank.Bank implements it.
type QuestionSource interface {
	Assessment(id string) (bank.Assessment, error)
	Questions(id string) ([]bank.Question, error)
}

// Observer is notified of session lifecycle events. *metrics.Metrics
// implements it.
type Observer interface {
	SessionStarted(assessmentID string)
	AnswerRecorded(assessmentID string)
	SessionCompleted(assessmentID, reason string, score int)
}

type nopObserver struct{}

func (nopObserver) SessionStarted(string)                {}
func (nopObserver) AnswerRecorded(string)                {}
func (nopObserver) SessionCompleted(string, string, int) {}

// Runner starts sessions against a question source.
type Runner struct {
	source    QuestionSource
	timeLimit int
	logger    *zap.Logger
	observer  Observer
	now       func() time.Time
	newID     func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithTimeLimit sets the per-session budget in seconds. Non-positive
// values are ignored.
func WithTimeLimit(seconds int) Option {
	return func(r *Runner) {
		if seconds > 0 {
			r.timeLimit = seconds
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(r *Runner) {
		if o != nil {
			r.observer = o
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// NewRunner creates a Runner.
func NewRunner(source QuestionSource, opts ...Option) *Runner {
	r := &Runner{
		source:    source,
		timeLimit: DefaultTimeLimit,
		logger:    zap.NewNop(),
		observer:  nopObserver{},
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// TimeLimit is the budget given to new sessions, in seconds.
func (r *Runner) TimeLimit() int { return r.timeLimit }

// Start begins a session for assessmentID. Returns bank.ErrNotFound if the
// assessment is unknown or has no questions.
func (r *Runner) Start(assessmentID string) (*Session, error) {
	questions, err := r.source.Questions(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", assessmentID, err)
	}
	a, err := r.source.Assessment(assessmentID)
	if err != nil {
		return nil, fmt.Errorf("start %q: %w", assessmentID, err)
	}

	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q.ID] = true
	}

	s := &Session{
		id:            r.newID(),
		assessmentID:  assessmentID,
		title:         a.Title,
		strategy:      a.Strategy,
		questions:     questions,
		known:         known,
		answers:       make(map[string]string, len(questions)),
		timeLimit:     r.timeLimit,
		timeRemaining: r.timeLimit,
		phase:         PhaseInProgress,
		startedAt:     r.now(),
		runner:        r,
	}

	r.observer.SessionStarted(assessmentID)
	r.logger.Info("session started",
		zap.String("session_id", s.id),
		zap.String("assessment", assessmentID),
		zap.Int("questions", len(questions)),
		zap.Int("time_limit", r.timeLimit),
	)
	return s, nil
}

// RecordAnswer sets the answer for questionID, replacing any earlier one.
// The value is not checked against the question's choices.
func (s *Session) RecordAnswer(questionID, value string) error {
	switch s.phase {
	case PhaseNotStarted:
		return ErrNotStarted
	case PhaseCompleted:
		return ErrCompleted
	}
	if !s.known[questionID] {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	s.answers[questionID] = value
	s.runner.observer.AnswerRecorded(s.assessmentID)
	return nil
}

// Advance moves to the next question. On the last question it completes
// the session and scores it. No-op unless in progress.
func (s *Session) Advance() {
	if s.phase != PhaseInProgress {
		return
	}
	if s.currentIndex < len(s.questions)-1 {
		s.currentIndex++
		return
	}
	s.complete(ReasonFinished)
}

// Retreat moves to the previous question. No-op on the first question or
// unless in progress.
func (s *Session) Retreat() {
	if s.phase != PhaseInProgress {
		return
	}
	if s.currentIndex > 0 {
		s.currentIndex--
	}
}

// Tick consumes one second of budget. When the budget reaches zero the
// session completes and is scored. No-op unless in progress.
func (s *Session) Tick() {
	if s.phase != PhaseInProgress {
		return
	}
	if s.timeRemaining > 0 {
		s.timeRemaining--
	}
	if s.timeRemaining == 0 {
		s.complete(ReasonTimeExpired)
	}
}

// complete transitions to PhaseCompleted and scores exactly once.
func (s *Session) complete(reason Reason) {
	if s.phase != PhaseInProgress {
		return
	}
	s.phase = PhaseCompleted
	s.reason = reason
	s.endedAt = s.runner.now()

	res := scoring.Score(s.strategy, s.questions, s.answers)
	s.result = &res

	s.runner.observer.SessionCompleted(s.assessmentID, string(reason), res.OverallScore)
	s.runner.logger.Info("session completed",
		zap.String("session_id", s.id),
		zap.String("assessment", s.assessmentID),
		zap.String("reason", string(reason)),
		zap.Int("answered", len(s.answers)),
		zap.Int("score", res.OverallScore),
	)
}
