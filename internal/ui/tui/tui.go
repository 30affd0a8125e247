// Package tui presents a session in the terminal. Character cells play the
// role of pixels: the session layout is measured in them and mouse events
// arrive in them.
package tui

import (
	"fmt"
	"strings"
	"time"

	"go-concentration/internal/board"
	"go-concentration/internal/game"
	"go-concentration/internal/layout"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

const helpHeight = 1

var (
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))  // White box for a hidden tile
	hoverStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250")) // Dimmed box under the pointer
)

// FrameMsg drives one iteration of the game loop.
type FrameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Model is the bubbletea model for one session. Mouse messages are buffered
// and handed to the session as one batch per frame.
type Model struct {
	Session  *game.Session
	pending  []game.Event
	keys     keyMap
	help     help.Model
	quitting bool
	log      zerolog.Logger
}

func NewModel(s *game.Session, log zerolog.Logger) *Model {
	return &Model{
		Session: s,
		keys:    defaultKeyMap(),
		help:    help.New(),
		log:     log,
	}
}

func (m *Model) Init() tea.Cmd {
	return frameCmd(m.Session.Config.FrameInterval())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		events := m.pending
		m.pending = nil
		if m.Session.Step(events, time.Time(msg)) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, frameCmd(m.Session.Config.FrameInterval())
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion:
			m.pending = append(m.pending, game.PointerMoved{X: msg.X, Y: msg.Y})
		case tea.MouseActionRelease:
			m.pending = append(m.pending, game.PointerReleased{X: msg.X, Y: msg.Y})
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		// Quit skips the frame queue
		if key.Matches(msg, m.keys.Quit) {
			m.Session.Step([]game.Event{game.Quit{}}, time.Now())
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

// resize re-centers the grid. A terminal too small for the grid keeps the
// previous layout.
func (m *Model) resize(width, height int) {
	spec := m.Session.Layout.Spec()
	spec.CanvasW = width
	spec.CanvasH = height - helpHeight
	l, err := layout.New(spec)
	if err != nil {
		m.log.Debug().Err(err).Int("width", width).Int("height", height).Msg("keeping layout")
		return
	}
	if err := m.Session.SetLayout(l); err != nil {
		m.log.Warn().Err(err).Msg("layout rejected")
	}
	m.help.Width = width
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	return m.RenderBoard() + "\n" + m.help.View(m.keys)
}

// RenderBoard draws the canvas, one string line per canvas row: hidden tiles
// as white boxes, revealed tiles as a disc in their token color.
func (m *Model) RenderBoard() string {
	l := m.Session.Layout
	spec := l.Spec()
	mx, my := l.Margins()
	b := m.Session.Board()
	reveal := m.Session.Reveal()
	hover, hovering := m.Session.Hover()

	lines := make([]string, 0, spec.CanvasH)
	for i := 0; i < my; i++ {
		lines = append(lines, "")
	}
	for r := 0; r < b.Rows; r++ {
		if r > 0 {
			for i := 0; i < spec.GapY; i++ {
				lines = append(lines, "")
			}
		}
		for i := 0; i < spec.CellH; i++ {
			var sb strings.Builder
			sb.WriteString(strings.Repeat(" ", mx))
			for c := 0; c < b.Cols; c++ {
				cell := board.Cell{Row: r, Col: c}
				if c > 0 {
					sb.WriteString(strings.Repeat(" ", spec.GapX))
				}
				switch {
				case reveal.Revealed(cell):
					sb.WriteString(tokenStyle(b.At(cell)).Render(discLine(i, spec.CellW, spec.CellH)))
				case hovering && cell == hover:
					sb.WriteString(hoverStyle.Render(strings.Repeat("▓", spec.CellW)))
				default:
					sb.WriteString(hiddenStyle.Render(strings.Repeat("█", spec.CellW)))
				}
			}
			lines = append(lines, sb.String())
		}
	}
	for len(lines) < spec.CanvasH {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func tokenStyle(t board.Token) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Hex()))
}

// discLine returns line i of a w x h tile drawn as a rounded disc.
func discLine(i, w, h int) string {
	if h < 3 || w < 3 {
		return strings.Repeat("█", w)
	}
	switch i {
	case 0:
		return " " + strings.Repeat("▄", w-2) + " "
	case h - 1:
		return " " + strings.Repeat("▀", w-2) + " "
	}
	return strings.Repeat("█", w)
}

// Presentation runs a session in the alternate screen with mouse tracking.
type Presentation struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Presentation {
	return &Presentation{log: log}
}

func (p *Presentation) Run(s *game.Session) error {
	prog := tea.NewProgram(NewModel(s, p.log), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("error running the terminal UI: %w", err)
	}
	return nil
}
