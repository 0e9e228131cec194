package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for cards so stacked
// sections visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 72 {
		w = 72
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Card wraps content in a rounded-border card at the given width, with an
// optional heading.
func Card(heading, content string, cw int) string {
	body := content
	if heading != "" {
		body = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(heading) + "\n\n" + content
	}
	return theme.Card.
		Width(cw).
		Render(body)
}

// Centered places s in the middle of a width-wide line.
func Centered(s string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
