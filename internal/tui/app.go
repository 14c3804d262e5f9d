package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/starrating/internal/rating"
)

// Layout of App.View: title line, then the pane holding the rating row.
const (
	paneLine  = 1
	rowIndent = paneContentX
	rowLine   = paneLine + paneContentY
)

// App is the root model run by the entry point. It owns quitting, the status
// line and logging; everything rating related is delegated to Model.
type App struct {
	rating *Model
	logger *zap.Logger
	help   help.Model
	quit   key.Binding
	status string
	width  int
}

func NewApp(m *Model, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	m.SetOrigin(rowIndent, rowLine)
	return &App{
		rating: m,
		logger: logger,
		help:   help.New(),
		quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (a *App) Rating() *Model { return a.rating }

func (a *App) Status() string { return a.status }

// Init turns on all-motion mouse reporting; hover previews need motion
// events with no button held.
func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.EnableMouseAllMotion, a.rating.Init())
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.help.Width = msg.Width
		return a, nil
	case tea.KeyMsg:
		if key.Matches(msg, a.quit) {
			return a, tea.Quit
		}
	case ChangedMsg:
		a.status = "rating: " + rating.FormatValue(msg.Value)
		a.logger.Info("rating changed", zap.Float64("value", msg.Value))
		return a, nil
	}
	_, cmd := a.rating.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	indent := strings.Repeat(" ", rowIndent)
	frame := pane{
		Title:   "rate",
		Content: a.rating.View(),
		Focused: a.rating.Focus() >= 0,
	}
	lines := []string{
		titleStyle.Render("starrating"),
		frame.Render(min(a.width, 40)),
		"",
	}
	if a.status != "" {
		lines = append(lines, indent+statusStyle.Render(a.status))
	} else {
		lines = append(lines, indent+mutedStyle.Render("no rating yet"))
	}
	bindings := append(a.rating.Keys().ShortHelp(), a.quit)
	lines = append(lines, "", indent+a.help.ShortHelpView(bindings))
	return strings.Join(lines, "\n")
}
