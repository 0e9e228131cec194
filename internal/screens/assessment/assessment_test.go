package assessment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screens/results"
	"github.com/abhisek/assessiz/internal/session"
	"github.com/abhisek/assessiz/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	saved []*store.Attempt
	err   error
}

func (m *mockAttemptRepo) SaveAttempt(_ context.Context, a *store.Attempt) error {
	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, a)
	return nil
}
func (m *mockAttemptRepo) QueryAttempts(_ context.Context, _ store.QueryOpts) ([]store.Attempt, error) {
	return nil, nil
}
func (m *mockAttemptRepo) Stats(_ context.Context) (store.Stats, error) {
	return store.Stats{}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestScreen(t *testing.T, id string, repo store.AttemptRepo) *AssessmentScreen {
	t.Helper()
	sess, err := session.NewRunner(bank.Default()).Start(id)
	if err != nil {
		t.Fatalf("Start(%q): %v", id, err)
	}
	return New(sess, repo, nil)
}

func TestAssessmentScreen_TitleAndStatus(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)
	if s.Title() != "Aptitude Test" {
		t.Errorf("Title = %q, want %q", s.Title(), "Aptitude Test")
	}
	if !strings.Contains(s.Status(), "30:00") {
		t.Errorf("Status = %q, want it to contain 30:00", s.Status())
	}
	if !s.HandlesEscape() {
		t.Error("expected screen to handle escape")
	}
}

func TestAssessmentScreen_View(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)
	view := s.View(100, 30)
	if !strings.Contains(view, "120 miles") {
		t.Error("expected the first prompt in the view")
	}
	if !strings.Contains(view, "Question 1 of 2") {
		t.Error("expected progress in the view")
	}
}

func TestAssessmentScreen_NextGatedUntilAnswered(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)

	s.Update(specialKey(tea.KeyRight))
	if s.sess.Index() != 0 {
		t.Fatalf("Index = %d, want 0 before answering", s.sess.Index())
	}

	s.Update(keyPress('2'))
	if v, _ := s.sess.Answer("1"); v != "60 mph" {
		t.Fatalf("answer = %q, want %q", v, "60 mph")
	}

	s.Update(specialKey(tea.KeyRight))
	if s.sess.Index() != 1 {
		t.Errorf("Index = %d, want 1", s.sess.Index())
	}
}

func TestAssessmentScreen_PreviousKeepsAnswer(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyLeft))

	if s.sess.Index() != 0 {
		t.Fatalf("Index = %d, want 0", s.sess.Index())
	}
	if s.choices.Value() != "60 mph" {
		t.Errorf("choice = %q, want the earlier answer restored", s.choices.Value())
	}
}

func TestAssessmentScreen_FinishShowsResults(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('2'))
	_, cmd := s.Update(specialKey(tea.KeyRight))

	if !s.sess.Completed() {
		t.Fatal("expected session to be completed")
	}
	if cmd == nil {
		t.Fatal("expected a command after finishing")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", msg.Screen)
	}
	if got := s.sess.Result().OverallScore; got != 100 {
		t.Errorf("OverallScore = %d, want 100", got)
	}
}

func TestAssessmentScreen_SaveCmd(t *testing.T) {
	repo := &mockAttemptRepo{}
	s := newTestScreen(t, "aptitude", repo)
	s.Update(keyPress('1'))
	s.Update(specialKey(tea.KeyRight))
	s.Update(keyPress('2'))
	s.Update(specialKey(tea.KeyRight))

	msg := s.saveCmd(session.BuildSummary(s.sess))()
	saved, ok := msg.(results.SavedMsg)
	if !ok {
		t.Fatalf("expected SavedMsg, got %T", msg)
	}
	if saved.Err != nil {
		t.Fatalf("unexpected save error: %v", saved.Err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("saved = %d, want 1", len(repo.saved))
	}
	if repo.saved[0].OverallScore != 50 {
		t.Errorf("OverallScore = %d, want 50", repo.saved[0].OverallScore)
	}
}

func TestAssessmentScreen_SaveCmdError(t *testing.T) {
	repo := &mockAttemptRepo{err: errors.New("disk full")}
	s := newTestScreen(t, "aptitude", repo)
	s.sess.Advance()
	s.sess.Advance()

	msg := s.saveCmd(session.BuildSummary(s.sess))().(results.SavedMsg)
	if msg.Err == nil {
		t.Error("expected save error to be reported")
	}
}

func TestAssessmentScreen_QuitConfirm(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)

	s.Update(specialKey(tea.KeyEscape))
	if !s.confirmQuit {
		t.Fatal("expected quit confirmation dialog")
	}
	if !strings.Contains(s.View(100, 30), "Leave this assessment?") {
		t.Error("expected confirmation in view")
	}

	s.Update(keyPress('n'))
	if s.confirmQuit {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestAssessmentScreen_QuitConfirm_Yes(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)
	s.Update(specialKey(tea.KeyEscape))

	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if s.sess.Completed() {
		t.Error("abandoned session must not be scored")
	}
}

func TestAssessmentScreen_TickCountsDown(t *testing.T) {
	s := newTestScreen(t, "aptitude", nil)

	_, cmd := s.Update(tickMsg{id: s.sess.ID()})
	if cmd == nil {
		t.Error("expected the next tick to be scheduled")
	}
	if s.sess.TimeRemaining() != session.DefaultTimeLimit-1 {
		t.Errorf("TimeRemaining = %d, want %d", s.sess.TimeRemaining(), session.DefaultTimeLimit-1)
	}
}

func TestAssessmentScreen_TickExpiryFinishes(t *testing.T) {
	sess, err := session.NewRunner(bank.Default(), session.WithTimeLimit(1)).Start("aptitude")
	if err != nil {
		t.Fatal(err)
	}
	s := New(sess, nil, nil)

	_, cmd := s.Update(tickMsg{id: s.sess.ID()})
	if !sess.Completed() {
		t.Fatal("expected session to complete at zero")
	}
	if sess.Reason() != session.ReasonTimeExpired {
		t.Errorf("Reason = %q, want %q", sess.Reason(), session.ReasonTimeExpired)
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg after expiry")
	}

	_, cmd = s.Update(tickMsg{id: s.sess.ID()})
	if cmd != nil {
		t.Error("expected ticks to stop after completion")
	}
}

func TestAssessmentScreen_TickFromEarlierSessionIgnored(t *testing.T) {
	runner := session.NewRunner(bank.Default())
	first, err := runner.Start("aptitude")
	if err != nil {
		t.Fatal(err)
	}
	abandoned := New(first, nil, nil)
	abandoned.Update(specialKey(tea.KeyEscape))
	abandoned.Update(keyPress('y'))

	second, err := runner.Start("aptitude")
	if err != nil {
		t.Fatal(err)
	}
	s := New(second, nil, nil)

	_, cmd := s.Update(tickMsg{id: first.ID(), at: time.Now()})
	if cmd != nil {
		t.Error("expected no tick chain for a tick from another session")
	}
	if second.TimeRemaining() != session.DefaultTimeLimit {
		t.Errorf("TimeRemaining = %d, want %d", second.TimeRemaining(), session.DefaultTimeLimit)
	}

	s.Update(tickMsg{id: second.ID(), at: time.Now()})
	if second.TimeRemaining() != session.DefaultTimeLimit-1 {
		t.Errorf("TimeRemaining = %d, want %d after its own tick", second.TimeRemaining(), session.DefaultTimeLimit-1)
	}
}
