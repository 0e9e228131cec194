package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/ui/components"
	"github.com/abhisek/assessiz/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	q := s.sess.Current()

	var b strings.Builder
	b.WriteString("\n")

	// Progress line.
	progress := fmt.Sprintf("Question %d of %d", s.sess.Index()+1, s.sess.Len())
	bar := components.NewProgressBar(progress, float64(s.sess.ProgressPercent())/100, true, cw)
	b.WriteString(components.Centered(bar.View(), width))
	b.WriteString("\n\n")

	if s.confirmQuit {
		body := lipgloss.NewStyle().Foreground(theme.Text).Render(
			"Leave this assessment? Your answers will not be scored or saved.") +
			"\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("y  leave    n  stay")
		b.WriteString(components.Centered(components.Card("Quit assessment", body, cw), width))
		return b.String()
	}

	// Question card.
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", q.Category, q.Difficulty))
	prompt := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Width(cw - 6).Render(q.Prompt)
	body := meta + "\n\n" + prompt + "\n\n" + strings.TrimRight(s.choices.View(), "\n")
	b.WriteString(components.Centered(components.Card("", body, cw), width))
	b.WriteString("\n\n")

	// Navigation buttons.
	prevLabel := "◂ Previous"
	nextLabel := "Next ▸"
	if s.sess.IsLast() {
		nextLabel = "Finish ✓"
	}
	prev := components.NewButton(prevLabel, s.sess.Index() > 0, nil)
	next := components.NewButton(nextLabel, s.currentAnswered(), nil)
	b.WriteString(components.Centered(lipgloss.JoinHorizontal(lipgloss.Center, prev.View(), "  ", next.View()), width))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("Error: " + s.errMsg))
	}

	return b.String()
}
