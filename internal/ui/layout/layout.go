// Package layout renders the frame around every screen: a header bar with
// the app name, screen title and status, a footer of key hints, and the
// notice shown when the terminal is too small.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	// chromeHeight is the rows taken by the header and footer bars.
	chromeHeight = 6

	compactWidth  = 100
	compactHeight = 30
)

// KeyHint is a key and what it does, shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether the terminal is below MinWidth x MinHeight.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// IsCompact reports whether a content area should drop secondary detail.
// contentHeight excludes the header and footer.
func IsCompact(width, contentHeight int) bool {
	return width < compactWidth || contentHeight+chromeHeight < compactHeight
}

// RenderMinSizeMessage asks the user to enlarge the terminal.
func RenderMinSizeMessage(width, height int) string {
	body := theme.Title.Render("Window too small") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("assessiz needs at least %d x %d", MinWidth, MinHeight)) + "\n" +
		theme.Hint.Render(fmt.Sprintf("current size %d x %d", width, height))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func barStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// RenderHeader renders the app name on the left, the screen title in the
// middle and status, such as the session timer, on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)

	left := theme.Selected.Render(" assessiz")
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status + " ")
	mid := lipgloss.PlaceHorizontal(
		max(inner-lipgloss.Width(left)-lipgloss.Width(right), 0),
		lipgloss.Center,
		theme.Body.Render(title),
	)
	return barStyle(width).Render(left + mid + right)
}

// RenderFooter renders key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	sep := theme.Hint.Render("  ·  ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+theme.Hint.Render(h.Description))
	}
	return barStyle(width).Render(" " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, giving the content every
// row the bars do not use.
func RenderFrame(header, content, footer string, width, height int) string {
	rows := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rows).MaxHeight(rows).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
