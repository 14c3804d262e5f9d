package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/starrating/internal/rating"
)

const (
	starGap  = 1 // cells between stars
	labelGap = 2 // cells between the last star and the label
)

var glyphText = map[rating.Glyph]string{
	rating.GlyphFull:  "★",
	rating.GlyphHalf:  "⯨",
	rating.GlyphEmpty: "☆",
}

// ChangedMsg is emitted after every committed change, including resets.
type ChangedMsg struct {
	Value float64
}

// Model hosts a rating.Widget on a single terminal row. Each star is an
// independently focusable cell block; mouse hit testing needs the row's
// screen origin, see SetOrigin.
//
// The geometry assumes the star glyphs draw one cell wide. ★ and ☆ are East
// Asian ambiguous width; terminals that render them two cells wide shift every
// star after the first and hit testing drifts.
type Model struct {
	widget *rating.Widget
	keys   KeyMap
	cells  int

	originX int
	originY int

	focus int // focused star, -1 when none
	hot   int // star under the pointer, -1 when none
}

func New(cfg rating.Config) *Model {
	return &Model{
		widget: rating.New(cfg),
		keys:   DefaultKeyMap(),
		cells:  StarCells(cfg.StarSize),
		focus:  -1,
		hot:    -1,
	}
}

// StarCells converts a pixel size into an even number of terminal cells so
// every star has a left and right half.
func StarCells(size float64) int {
	return 2 * max(1, int(math.Round(size/24)))
}

func (m *Model) Widget() *rating.Widget { return m.widget }

func (m *Model) Keys() KeyMap { return m.keys }

func (m *Model) Focus() int { return m.focus }

// SetOrigin records where the row is drawn on screen.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	n := m.widget.MaxStars()
	if n <= 0 {
		return nil
	}
	switch {
	case key.Matches(msg, m.keys.Next):
		if m.focus < 0 {
			m.focus = 0
		} else {
			m.focus = (m.focus + 1) % n
		}
	case key.Matches(msg, m.keys.Prev):
		if m.focus < 0 {
			m.focus = n - 1
		} else {
			m.focus = (m.focus - 1 + n) % n
		}
	case key.Matches(msg, m.keys.Activate):
		if m.focus < 0 {
			return nil
		}
		return m.activate(m.focus)
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	star, offset, ok := m.hitTest(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionMotion:
		if !ok {
			m.hot = -1
			m.widget.Leave()
			return nil
		}
		m.hot = star
		m.widget.HoverAt(star, float64(offset), float64(m.cells))
	case tea.MouseActionPress:
		if !ok || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.focus = star
		return m.activate(star)
	}
	return nil
}

// hitTest maps a screen cell to a star index and the cell offset within it.
func (m *Model) hitTest(x, y int) (star, offset int, ok bool) {
	if y != m.originY {
		return 0, 0, false
	}
	rel := x - m.originX
	if rel < 0 {
		return 0, 0, false
	}
	stride := m.cells + starGap
	star = rel / stride
	offset = rel % stride
	if star >= m.widget.MaxStars() || offset >= m.cells {
		return 0, 0, false
	}
	return star, offset, true
}

func (m *Model) activate(star int) tea.Cmd {
	v := m.widget.Activate(star)
	return func() tea.Msg { return ChangedMsg{Value: v} }
}

func (m *Model) View() string {
	cfg := m.widget.Config()
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cfg.StarColor)).
		Width(m.cells).
		Align(lipgloss.Center)

	parts := make([]string, 0, cfg.MaxStars*2+1)
	for i, g := range m.widget.Glyphs() {
		if i > 0 {
			parts = append(parts, strings.Repeat(" ", starGap))
		}
		style := base
		if i == m.hot || i == m.focus {
			style = emphasize(style, cfg.Animation)
		}
		if i == m.focus {
			style = style.Background(colorFocus)
		}
		parts = append(parts, style.Render(glyphText[g]))
	}

	if label := m.widget.Label(); label != "" {
		labelStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(cfg.LabelColor)).
			Bold(true)
		parts = append(parts, strings.Repeat(" ", labelGap), labelStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// emphasize is the terminal stand-in for the hover animations.
func emphasize(s lipgloss.Style, a rating.Animation) lipgloss.Style {
	switch a {
	case rating.AnimationScale:
		return s.Bold(true)
	case rating.AnimationRotate:
		return s.Italic(true)
	case rating.AnimationBounce:
		return s.Underline(true)
	default:
		return s
	}
}
