package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "A", Disabled: true},
		{Label: "B"},
		{Label: "C", Disabled: true},
		{Label: "D"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_EnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "Go", Action: func() tea.Cmd { called = true; return nil }}})
	m.Update(specialKey(tea.KeyEnter))
	assert.True(t, called)
}

func TestMenu_DetailShown(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Cognitive", Detail: "15-20 min"}})
	assert.NotContains(t, m.View(), "15-20 min")
	m.ShowDetail = true
	assert.Contains(t, m.View(), "15-20 min")
}

func TestChoiceList(t *testing.T) {
	c := NewChoiceList([]string{"True", "False"}, "")
	assert.Equal(t, -1, c.Chosen)
	assert.Empty(t, c.Value())

	c, _ = c.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, c.Cursor)
	assert.Empty(t, c.Value(), "moving the cursor does not pick")

	c, _ = c.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "False", c.Value())

	c, _ = c.Update(keyPress('1'))
	assert.Equal(t, "True", c.Value())

	c, _ = c.Update(keyPress('9'))
	assert.Equal(t, "True", c.Value(), "out of range number is ignored")
}

func TestChoiceList_Preselected(t *testing.T) {
	c := NewChoiceList([]string{"a", "b", "c"}, "c")
	assert.Equal(t, 2, c.Cursor)
	assert.Equal(t, "c", c.Value())
	assert.True(t, strings.Contains(c.View(), "3) c"))
}

func TestButton_Press(t *testing.T) {
	pressed := 0
	b := NewButton("Next", false, func() tea.Cmd { pressed++; return nil })
	b.Press()
	assert.Equal(t, 0, pressed)

	b.Active = true
	b.Press()
	assert.Equal(t, 1, pressed)
}

func TestProgressBar_ShowsPercent(t *testing.T) {
	p := NewProgressBar("Logic", 0.67, true, 40)
	assert.Contains(t, p.View(), "67%")
	assert.Contains(t, p.View(), "Logic")
}

func TestTabs_Wraps(t *testing.T) {
	tabs := NewTabs("One", "Two", "Three")

	tabs, _ = tabs.Update(specialKey(tea.KeyLeft))
	assert.Equal(t, 2, tabs.Active)

	tabs, _ = tabs.Update(specialKey(tea.KeyTab))
	assert.Equal(t, 0, tabs.Active)

	tabs, _ = tabs.Update(keyPress('l'))
	assert.Equal(t, 1, tabs.Active)
	assert.Contains(t, tabs.View(), "Three")
}
