package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/assessiz/internal/bank"
	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screen"
	"github.com/abhisek/assessiz/internal/screens/assessment"
	dashboardscreen "github.com/abhisek/assessiz/internal/screens/dashboard"
	"github.com/abhisek/assessiz/internal/screens/history"
	insightsscreen "github.com/abhisek/assessiz/internal/screens/insights"
	"github.com/abhisek/assessiz/internal/screens/results"
	"github.com/abhisek/assessiz/internal/session"
	"github.com/abhisek/assessiz/internal/store"
	"github.com/abhisek/assessiz/internal/ui/components"
	"github.com/abhisek/assessiz/internal/ui/layout"
	"github.com/abhisek/assessiz/internal/ui/theme"
)

// Deps are the services the home screen hands to the screens it opens.
type Deps struct {
	Bank   *bank.Bank
	Runner *session.Runner

	// Repo is the attempt history. Nil disables persistence and the
	// history-backed screens fall back to sample data.
	Repo   store.AttemptRepo
	Logger *zap.Logger
}

// HomeScreen lists the assessment catalogue and the secondary views.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	errMsg string

	// notice reports a history save that finished after the results
	// screen was left.
	notice string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	h := &HomeScreen{deps: deps}

	var items []components.MenuItem
	for _, a := range deps.Bank.List() {
		id := a.ID
		items = append(items, components.MenuItem{
			Label:  a.Title,
			Detail: catalogueDetail(a),
			Action: func() tea.Cmd { return h.start(id) },
		})
	}

	items = append(items,
		components.MenuItem{Label: "Dashboard", Detail: "Scores and trends across attempts", Action: func() tea.Cmd {
			return push(dashboardscreen.New(deps.Repo))
		}},
		components.MenuItem{Label: "History", Detail: "Browse completed attempts", Disabled: deps.Repo == nil, Action: func() tea.Cmd {
			return push(history.New(deps.Repo))
		}},
		components.MenuItem{Label: "Model Insights", Detail: "Models behind the analysis", Action: func() tea.Cmd {
			return push(insightsscreen.New())
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h.menu = components.NewMenu(items)
	return h
}

// start begins a session for the assessment and opens it.
func (h *HomeScreen) start(id string) tea.Cmd {
	sess, err := h.deps.Runner.Start(id)
	if err != nil {
		h.errMsg = err.Error()
		return nil
	}
	h.errMsg = ""
	h.notice = ""
	return push(assessment.New(sess, h.deps.Repo, h.deps.Logger))
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

// catalogueDetail is the dim line under an assessment, e.g.
// "15-20 min · 25 questions · Adaptive".
func catalogueDetail(a bank.Assessment) string {
	parts := make([]string, 0, 3)
	if a.Duration != "" {
		parts = append(parts, a.Duration)
	}
	parts = append(parts, fmt.Sprintf("%d questions", a.AdvertisedCount()))
	if a.Style != "" {
		parts = append(parts, a.Style)
	}
	return strings.Join(parts, " · ")
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if saved, ok := msg.(results.SavedMsg); ok {
		if saved.Err != nil {
			h.notice = "Could not save last attempt: " + saved.Err.Error()
		} else {
			h.notice = "Last attempt saved to history"
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Align(lipgloss.Center).Render("Choose an assessment"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Align(lipgloss.Center).
		Render("Timed question sets scored by category"))
	b.WriteString("\n\n")

	h.menu.ShowDetail = !layout.IsCompact(width, height)
	b.WriteString(components.Centered(components.Card("", strings.TrimRight(h.menu.View(), "\n"), cw), width))

	if h.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(h.notice))
	}
	if h.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("Error: " + h.errMsg))
	}
	return b.String()
}
