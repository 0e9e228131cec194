package dashboard

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/dashboard"
	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screen"
	"github.com/abhisek/assessiz/internal/scoring"
	"github.com/abhisek/assessiz/internal/screens/results"
	"github.com/abhisek/assessiz/internal/store"
	"github.com/abhisek/assessiz/internal/ui/components"
	"github.com/abhisek/assessiz/internal/ui/layout"
	"github.com/abhisek/assessiz/internal/ui/theme"
)

const (
	tabOverview = iota
	tabProgress
	tabRecommendations
)

type dashboardLoadedMsg struct {
	Summary dashboard.Summary
	Err     error
}

// DashboardScreen shows aggregate scores across attempts.
type DashboardScreen struct {
	repo    store.AttemptRepo
	tabs    components.Tabs
	summary dashboard.Summary
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

// New creates a DashboardScreen. A nil repo shows sample data.
func New(repo store.AttemptRepo) *DashboardScreen {
	return &DashboardScreen{
		repo: repo,
		tabs: components.NewTabs("Overview", "Progress", "Recommendations"),
	}
}

func (s *DashboardScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return dashboardLoadedMsg{Summary: dashboard.Build(store.Stats{}, nil)}
		}
		sum, err := dashboard.Load(context.Background(), repo)
		return dashboardLoadedMsg{Summary: sum, Err: err}
	}
}

func (s *DashboardScreen) Title() string {
	return "Dashboard"
}

func (s *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Switch tab"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.summary = msg.Summary
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		var cmd tea.Cmd
		s.tabs, cmd = s.tabs.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *DashboardScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading dashboard...")
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.Centered(s.tabs.View(), width))
	b.WriteString("\n")
	if s.summary.Sample {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.Warning).Italic(true).
			Render("Sample data: complete an assessment to see your own figures"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch s.tabs.Active {
	case tabOverview:
		b.WriteString(s.viewOverview(width, cw))
	case tabProgress:
		b.WriteString(s.viewProgress(width, cw))
	case tabRecommendations:
		b.WriteString(s.viewRecommendations(width, cw))
	}
	return b.String()
}

func (s *DashboardScreen) viewOverview(width, cw int) string {
	sum := s.summary
	stat := func(label string, value string) string {
		return lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(value) + " " +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
	}
	stats := strings.Join([]string{
		stat("average", fmt.Sprintf("%d%%", sum.AverageScore)),
		stat("attempts", fmt.Sprintf("%d", sum.TotalAttempts)),
		stat("minutes", fmt.Sprintf("%d", sum.TotalMinutes)),
	}, "    ")

	var b strings.Builder
	b.WriteString(components.Centered(stats, width))
	b.WriteString("\n\n")

	var rows []string
	for _, e := range sum.Recent {
		title := e.Title
		if title == "" {
			title = e.AssessmentID
		}
		row := fmt.Sprintf("%s  %-26s %3d min  ", e.Date.Format("Jan 02"), title, e.Minutes) +
			lipgloss.NewStyle().Foreground(bandColor(e.Score)).Render(fmt.Sprintf("%3d%%", e.Score))
		rows = append(rows, row)
	}
	b.WriteString(components.Centered(components.Card("Recent attempts", strings.Join(rows, "\n"), cw), width))
	return b.String()
}

func (s *DashboardScreen) viewProgress(width, cw int) string {
	var b strings.Builder

	if len(s.summary.Categories) > 0 {
		var bars []string
		for _, c := range s.summary.Categories {
			bar := components.NewProgressBar(fmt.Sprintf("%-22s", c.Category), float64(c.Average)/100, true, cw-6)
			bar.Color = bandColor(c.Average)
			bars = append(bars, bar.View())
		}
		b.WriteString(components.Centered(components.Card("Category averages", strings.Join(bars, "\n"), cw), width))
		b.WriteString("\n")
	}

	var skills []string
	for _, sk := range s.summary.Skills {
		bar := components.NewProgressBar(fmt.Sprintf("%-22s", sk.Skill), float64(sk.Current)/100, true, cw-18)
		skills = append(skills, bar.View()+lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  →%d  %s", sk.Target, sk.Improvement)))
	}
	b.WriteString(components.Centered(components.Card("Skill targets", strings.Join(skills, "\n"), cw), width))
	return b.String()
}

func (s *DashboardScreen) viewRecommendations(width, cw int) string {
	var cards []string
	for _, r := range s.summary.Recommendations {
		head := lipgloss.NewStyle().Foreground(priorityColor(r.Priority)).Bold(true).
			Render(fmt.Sprintf("[%s] ", r.Priority)) +
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(r.Title)
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Width(cw - 6).Render(r.Description)
		est := lipgloss.NewStyle().Foreground(theme.Secondary).Render(r.EstimatedTime)
		cards = append(cards, components.Centered(components.Card("", head+"\n"+desc+"\n"+est, cw), width))
	}
	return strings.Join(cards, "\n")
}

func bandColor(score int) color.Color {
	return results.BandColor(scoring.BandOf(score))
}

func priorityColor(p dashboard.Priority) color.Color {
	switch p {
	case dashboard.PriorityHigh:
		return theme.Error
	case dashboard.PriorityMedium:
		return theme.Warning
	default:
		return theme.Success
	}
}
