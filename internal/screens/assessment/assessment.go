package assessment

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screen"
	"github.com/abhisek/assessiz/internal/screens/results"
	"github.com/abhisek/assessiz/internal/session"
	"github.com/abhisek/assessiz/internal/store"
	"github.com/abhisek/assessiz/internal/ui/components"
	"github.com/abhisek/assessiz/internal/ui/layout"
)

// saveTimeout bounds the history write after completion.
const saveTimeout = 5 * time.Second

// AssessmentScreen runs one timed session.
type AssessmentScreen struct {
	sess   *session.Session
	repo   store.AttemptRepo
	logger *zap.Logger

	choices     components.ChoiceList
	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)
var _ screen.StatusProvider = (*AssessmentScreen)(nil)
var _ screen.EscapeHandler = (*AssessmentScreen)(nil)

// New creates an AssessmentScreen for a started session. repo may be nil,
// in which case the attempt is not persisted.
func New(sess *session.Session, repo store.AttemptRepo, logger *zap.Logger) *AssessmentScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AssessmentScreen{
		sess:   sess,
		repo:   repo,
		logger: logger,
	}
	s.loadChoices()
	return s
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return tickCmd(s.sess.ID())
}

func (s *AssessmentScreen) Title() string {
	return s.sess.Title()
}

func (s *AssessmentScreen) Status() string {
	return "⏱ " + session.FormatClock(s.sess.TimeRemaining())
}

func (s *AssessmentScreen) HandlesEscape() bool {
	return true
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "y", Description: "Leave"},
			{Key: "n", Description: "Stay"},
		}
	}
	next := "Next"
	if s.sess.IsLast() {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Choose"},
		{Key: "←", Description: "Previous"},
		{Key: "→", Description: next},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if msg.id != s.sess.ID() || s.sess.Completed() {
			return s, nil
		}
		s.sess.Tick()
		if s.sess.Completed() {
			return s, s.finish()
		}
		return s, tickCmd(msg.id)

	case tea.KeyMsg:
		if s.sess.Completed() {
			return s, nil
		}
		if s.confirmQuit {
			return s.updateConfirm(msg)
		}
		return s.updateQuestion(msg)
	}
	return s, nil
}

func (s *AssessmentScreen) updateConfirm(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		s.logger.Info("session abandoned",
			zap.String("session_id", s.sess.ID()),
			zap.String("assessment", s.sess.AssessmentID()),
			zap.Int("answered", s.sess.Answered()))
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "n", "N", "esc":
		s.confirmQuit = false
	}
	return s, nil
}

func (s *AssessmentScreen) updateQuestion(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil
	case "left", "h", "shift+tab":
		s.sess.Retreat()
		s.loadChoices()
		return s, nil
	case "right", "l", "tab":
		return s, s.next()
	}

	var cmd tea.Cmd
	before := s.choices.Value()
	s.choices, cmd = s.choices.Update(msg)
	if v := s.choices.Value(); v != "" && v != before {
		if err := s.sess.RecordAnswer(s.sess.Current().ID, v); err != nil {
			s.errMsg = err.Error()
		} else {
			s.errMsg = ""
		}
	}
	return s, cmd
}

// next moves forward, or finishes on the last question. Nothing happens
// until the current question has an answer.
func (s *AssessmentScreen) next() tea.Cmd {
	if !s.currentAnswered() {
		return nil
	}
	s.sess.Advance()
	if s.sess.Completed() {
		return s.finish()
	}
	s.loadChoices()
	return nil
}

func (s *AssessmentScreen) currentAnswered() bool {
	_, ok := s.sess.Answer(s.sess.Current().ID)
	return ok
}

func (s *AssessmentScreen) loadChoices() {
	q := s.sess.Current()
	chosen, _ := s.sess.Answer(q.ID)
	s.choices = components.NewChoiceList(q.Choices(), chosen)
}

// finish swaps this screen for the results and then writes the attempt to
// history. The SavedMsg goes to whichever screen is on top when the write
// returns: normally results, or home if the user already went back.
func (s *AssessmentScreen) finish() tea.Cmd {
	sum := session.BuildSummary(s.sess)
	if sum == nil {
		return nil
	}
	resultsScreen := results.New(sum, s.repo != nil)
	show := func() tea.Msg { return router.ReplaceScreenMsg{Screen: resultsScreen} }
	if s.repo == nil {
		return show
	}
	return tea.Sequence(show, s.saveCmd(sum))
}

// saveCmd writes the attempt to history and reports the outcome.
func (s *AssessmentScreen) saveCmd(sum *session.Summary) tea.Cmd {
	repo, logger := s.repo, s.logger
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		err := session.Save(ctx, repo, sum)
		if err != nil {
			logger.Error("saving attempt failed",
				zap.String("session_id", sum.SessionID),
				zap.Error(err))
		}
		return results.SavedMsg{Err: err}
	}
}

func tickCmd(sessionID string) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg{id: sessionID, at: t}
	})
}
