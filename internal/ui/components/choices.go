package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/ui/theme"
)

// ChoiceList lets the learner pick one answer from a list. Picking does
// not lock the choice; it can be changed until the question is left.
type ChoiceList struct {
	Options []string
	Cursor  int

	// Chosen is the picked index, or -1.
	Chosen int
}

// NewChoiceList creates a list with the cursor on the chosen value, if any.
func NewChoiceList(options []string, chosen string) ChoiceList {
	c := ChoiceList{Options: options, Chosen: -1}
	for i, opt := range options {
		if opt == chosen {
			c.Cursor = i
			c.Chosen = i
			break
		}
	}
	return c
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and picking. Number keys pick directly.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", "space", " ":
		if len(c.Options) > 0 {
			c.Chosen = c.Cursor
		}
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Cursor = n - 1
			c.Chosen = n - 1
		}
	}
	return c, nil
}

// Value returns the chosen option, or "" if none.
func (c ChoiceList) Value() string {
	if c.Chosen < 0 || c.Chosen >= len(c.Options) {
		return ""
	}
	return c.Options[c.Chosen]
}

// View renders the list.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}
		mark := "○"
		if i == c.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %d) %s", prefix, mark, i+1, opt)

		switch {
		case i == c.Chosen:
			b.WriteString(theme.Chosen.Render(line))
		case i == c.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
