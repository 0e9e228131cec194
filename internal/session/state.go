package session

import (
	"fmt"
	"maps"
	"time"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/scoring"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseInProgress
	PhaseCompleted // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseInProgress:
		return "in-progress"
	case PhaseCompleted:
		return "completed"
	}
	return "unknown"
}

// Reason records why a session completed.
type Reason string

const (
	ReasonFinished    Reason = "finished"
	ReasonTimeExpired Reason = "time-expired"
)

// Session is one attempt at an assessment. It is owned by a single
// goroutine (the TUI update loop) and is not safe for concurrent use.
type Session struct {
	id           string
	assessmentID string
	title        string
	strategy     bank.Strategy
	questions    []bank.Question
	known        map[string]bool

	answers       map[string]string
	currentIndex  int
	timeLimit     int
	timeRemaining int

	phase     Phase
	reason    Reason
	startedAt time.Time
	endedAt   time.Time
	result    *scoring.Result

	runner *Runner
}

func (s *Session) ID() string              { return s.id }
func (s *Session) AssessmentID() string    { return s.assessmentID }
func (s *Session) Title() string           { return s.title }
func (s *Session) Strategy() bank.Strategy { return s.strategy }
func (s *Session) Phase() Phase            { return s.phase }
func (s *Session) Reason() Reason          { return s.reason }
func (s *Session) StartedAt() time.Time    { return s.startedAt }
func (s *Session) EndedAt() time.Time      { return s.endedAt }

// Completed reports whether the session reached its terminal phase.
func (s *Session) Completed() bool { return s.phase == PhaseCompleted }

// Index is the zero-based position of the current question.
func (s *Session) Index() int { return s.currentIndex }

// Len is the number of questions in the session.
func (s *Session) Len() int { return len(s.questions) }

// IsLast reports whether the current question is the final one.
func (s *Session) IsLast() bool { return s.currentIndex == len(s.questions)-1 }

// Current returns the question at the current index.
func (s *Session) Current() bank.Question {
	if len(s.questions) == 0 {
		return bank.Question{}
	}
	return s.questions[s.currentIndex]
}

// Questions returns the session's question sequence. Callers must not
// modify it.
func (s *Session) Questions() []bank.Question { return s.questions }

// TimeRemaining is the number of seconds left in the budget.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// Elapsed is the number of seconds ticked so far.
func (s *Session) Elapsed() int { return s.timeLimit - s.timeRemaining }

// Answer returns the recorded answer for a question id.
func (s *Session) Answer(questionID string) (string, bool) {
	v, ok := s.answers[questionID]
	return v, ok
}

// Answers returns a copy of the answer set.
func (s *Session) Answers() map[string]string {
	return maps.Clone(s.answers)
}

// Answered is the number of distinct questions with an answer.
func (s *Session) Answered() int { return len(s.answers) }

// Result returns the score, or nil until the session completes.
func (s *Session) Result() *scoring.Result { return s.result }

// ProgressPercent is the share of the sequence reached, counting the
// current question, in [0, 100].
func (s *Session) ProgressPercent() int {
	if len(s.questions) == 0 {
		return 0
	}
	return (s.currentIndex + 1) * 100 / len(s.questions)
}

// FormatClock renders seconds as m:ss.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
