package insights

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/assessiz/internal/insights"
	"github.com/abhisek/assessiz/internal/router"
	"github.com/abhisek/assessiz/internal/screen"
	"github.com/abhisek/assessiz/internal/ui/components"
	"github.com/abhisek/assessiz/internal/ui/layout"
	"github.com/abhisek/assessiz/internal/ui/theme"
)

const (
	tabModels = iota
	tabArchitecture
	tabPredictions
	tabTraining
)

// InsightsScreen shows the static model figures.
type InsightsScreen struct {
	tabs components.Tabs
}

var _ screen.Screen = (*InsightsScreen)(nil)
var _ screen.KeyHintProvider = (*InsightsScreen)(nil)

// New creates an InsightsScreen.
func New() *InsightsScreen {
	return &InsightsScreen{
		tabs: components.NewTabs("Models", "Architecture", "Predictions", "Training"),
	}
}

func (s *InsightsScreen) Init() tea.Cmd {
	return nil
}

func (s *InsightsScreen) Title() string {
	return "Model Insights"
}

func (s *InsightsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Switch tab"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InsightsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.tabs, cmd = s.tabs.Update(msg)
	return s, cmd
}

func (s *InsightsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(components.Centered(s.tabs.View(), width))
	b.WriteString("\n\n")

	var body string
	switch s.tabs.Active {
	case tabModels:
		body = viewModels(width, cw)
	case tabArchitecture:
		body = viewArchitecture(width, cw)
	case tabPredictions:
		body = viewPredictions(width, cw)
	case tabTraining:
		body = viewTraining(width, cw)
	}
	b.WriteString(body)
	return b.String()
}

func viewModels(width, cw int) string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	var cards []string
	for _, m := range insights.Models() {
		status := lipgloss.NewStyle().Foreground(theme.Success).Render(string(m.Status))
		if m.Status == insights.StatusTraining {
			status = lipgloss.NewStyle().Foreground(theme.Warning).Render(string(m.Status))
		}
		head := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Name) + "  " + status
		line := dim.Render(fmt.Sprintf("%s · %.1f%% accuracy · %d layers · %s params · %d samples · trained %s",
			m.Type, m.Accuracy, m.Layers, m.Parameters, m.DataPoints, m.LastTrained))
		desc := dim.Width(cw - 6).Render(m.Description)
		cards = append(cards, components.Centered(components.Card("", head+"\n"+desc+"\n"+line, cw), width))
	}
	return strings.Join(cards, "\n")
}

func viewArchitecture(width, cw int) string {
	layers := insights.Architecture()
	var rows []string
	for _, l := range layers {
		rows = append(rows, fmt.Sprintf("%-15s %4d  %-8s %s", l.Name, l.Neurons, l.Activation,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(l.Description)))
	}
	rows = append(rows, "", lipgloss.NewStyle().Foreground(theme.Accent).
		Render(fmt.Sprintf("%d neurons across %d layers", insights.TotalNeurons(layers), len(layers))))
	return components.Centered(components.Card("Network architecture", strings.Join(rows, "\n"), cw), width)
}

func viewPredictions(width, cw int) string {
	var rows []string
	for _, p := range insights.Predictions() {
		arrow := lipgloss.NewStyle().Foreground(theme.Success).Render("▲")
		if p.Trend == insights.TrendDecreasing {
			arrow = lipgloss.NewStyle().Foreground(theme.Error).Render("▼")
		}
		rows = append(rows, fmt.Sprintf("%-18s %3d → %3d %s  %d%% conf  ", p.Metric, p.Current, p.Predicted, arrow, p.Confidence)+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Timeframe))
	}
	return components.Centered(components.Card("Predictions", strings.Join(rows, "\n"), cw), width)
}

func viewTraining(width, cw int) string {
	t := insights.Training()
	bar := components.NewProgressBar(fmt.Sprintf("Epoch %d/%d", t.Epoch, t.Epochs),
		float64(t.Epoch)/float64(t.Epochs), true, cw-6)

	settings := func(ss []insights.Setting) string {
		var rows []string
		for _, s := range ss {
			rows = append(rows, fmt.Sprintf("%-18s ", s.Name)+
				lipgloss.NewStyle().Foreground(theme.Accent).Render(s.Value))
		}
		return strings.Join(rows, "\n")
	}

	return components.Centered(components.Card("Training", bar.View()+"\n\n"+settings(t.Metrics), cw), width) +
		"\n" +
		components.Centered(components.Card("Configuration", settings(t.Config), cw), width)
}
