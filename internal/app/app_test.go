package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screens/assessment"
	"github.com/abhisek/assessiz/internal/session"
)

func testModel(t *testing.T) (AppModel, *session.Runner) {
	t.Helper()
	b := bank.Default()
	r := session.NewRunner(b)
	return newAppModel(Options{Bank: b, Runner: r}), r
}

func TestAppModel_EscAtRootIsNoop(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no command for esc at root")
	}
}

func TestAppModel_EscHandledByAssessment(t *testing.T) {
	m, r := testModel(t)
	sess, err := r.Start("aptitude")
	if err != nil {
		t.Fatal(err)
	}
	m.router.Push(assessment.New(sess, nil, nil))

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		if _, ok := cmd().(router.PopScreenMsg); ok {
			t.Fatal("esc must not pop an assessment directly")
		}
	}
	if m.router.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", m.router.Depth())
	}
}

func TestAppModel_View(t *testing.T) {
	m, _ := testModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	v := updated.(AppModel).View()
	if v.Content == nil {
		t.Error("expected rendered content")
	}
}
