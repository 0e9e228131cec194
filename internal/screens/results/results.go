package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screen"
	"github.com/abhisek/assessiz/internal/scoring"
	"github.com/abhisek/assessiz/internal/session"
	"github.com/abhisek/assessiz/internal/ui/components"
	"github.com/abhisek/assessiz/internal/ui/layout"
	"github.com/abhisek/assessiz/internal/ui/theme"
)

// SavedMsg reports the outcome of writing the attempt to history.
type SavedMsg struct {
	Err error
}

type saveState int

const (
	savePending saveState = iota
	saveDone
	saveFailed
	saveDisabled
)

// ResultsScreen displays the score of a completed session.
type ResultsScreen struct {
	summary *session.Summary
	save    saveState
	saveErr string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. persisted is false when there is no history
// store, in which case no SavedMsg is expected.
func New(summary *session.Summary, persisted bool) *ResultsScreen {
	s := &ResultsScreen{summary: summary}
	if !persisted {
		s.save = saveDisabled
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case SavedMsg:
		if msg.Err != nil {
			s.save = saveFailed
			s.saveErr = msg.Err.Error()
		} else {
			s.save = saveDone
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc", "q":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}
	res := sum.Result
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(sum.Title + " complete"))
	b.WriteString("\n\n")

	// Overall score.
	band := BandColor(scoring.BandOf(res.OverallScore))
	score := lipgloss.NewStyle().Foreground(band).Bold(true).
		Render(fmt.Sprintf("%d%%", res.OverallScore))
	label := lipgloss.NewStyle().Foreground(band).
		Render(scoring.Label(res.OverallScore))
	b.WriteString(components.Centered(score+"  "+label, width))
	b.WriteString("\n")

	meta := fmt.Sprintf("Answered %d of %d   Time %s", sum.Answered, sum.Total, session.FormatClock(sum.DurationSecs))
	if sum.Reason == session.ReasonTimeExpired {
		meta += "   Time expired"
	}
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Render(meta))
	b.WriteString("\n\n")

	// Category breakdown.
	if len(res.CategoryScores) > 0 {
		labelWidth := 0
		for _, cs := range res.CategoryScores {
			labelWidth = max(labelWidth, lipgloss.Width(cs.Category))
		}
		var bars []string
		for _, cs := range res.CategoryScores {
			bar := components.NewProgressBar(padRight(cs.Category, labelWidth), float64(cs.Score)/100, true, cw-6)
			bar.Color = BandColor(scoring.BandOf(cs.Score))
			bars = append(bars, bar.View())
		}
		b.WriteString(components.Centered(components.Card("Categories", strings.Join(bars, "\n"), cw), width))
		b.WriteString("\n")
	}

	// Insights.
	if len(res.Insights) > 0 {
		var lines []string
		for _, in := range res.Insights {
			lines = append(lines, "• "+in)
		}
		body := lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(strings.Join(lines, "\n"))
		b.WriteString(components.Centered(components.Card("Insights", body, cw), width))
		b.WriteString("\n")
	}

	switch s.save {
	case saveDone:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("Saved to history"))
	case saveFailed:
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("Could not save to history: " + s.saveErr))
	}

	return b.String()
}

// BandColor maps a score band to its display colour.
func BandColor(b scoring.Band) color.Color {
	switch b {
	case scoring.BandHigh:
		return theme.Success
	case scoring.BandMid:
		return theme.Warning
	default:
		return theme.Error
	}
}

func padRight(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
