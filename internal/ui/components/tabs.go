package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/ui/theme"
)

// Tabs is a horizontal tab strip switched with left/right or tab.
type Tabs struct {
	Labels []string
	Active int
}

// NewTabs creates a tab strip with the first tab active.
func NewTabs(labels ...string) Tabs {
	return Tabs{Labels: labels}
}

// Update moves between tabs, wrapping around at either end.
func (t Tabs) Update(msg tea.Msg) (Tabs, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(t.Labels) == 0 {
		return t, nil
	}
	switch kmsg.String() {
	case "right", "l", "tab":
		t.Active = (t.Active + 1) % len(t.Labels)
	case "left", "h", "shift+tab":
		t.Active = (t.Active - 1 + len(t.Labels)) % len(t.Labels)
	}
	return t, nil
}

// View renders the strip.
func (t Tabs) View() string {
	parts := make([]string, 0, len(t.Labels))
	for i, l := range t.Labels {
		if i == t.Active {
			parts = append(parts, theme.Selected.Underline(true).Render(l))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(l))
		}
	}
	return strings.Join(parts, "   ")
}
