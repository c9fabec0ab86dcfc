package ui

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-bomberhuman/internal/game"
	"github.com/amalg/go-bomberhuman/internal/geometry"
)

const (
	frameInterval = time.Second / 60
	// maxElapsed bounds one tick so a stalled terminal cannot carry players
	// through walls.
	maxElapsed = 100 * time.Millisecond
)

// frameMsg drives one simulation tick.
type frameMsg time.Time

// Model is the Bubbletea model running a local match.
type Model struct {
	state    *game.GameState
	canvas   *Canvas
	input    *Input
	last     time.Time
	err      error
	quitting bool
}

// NewModel builds a match from config. hold is how long a key press counts
// as held.
func NewModel(config game.GameConfig, hold time.Duration) (Model, error) {
	canvas := NewCanvas(geometry.Grid{Size: config.GridSize})
	state, err := game.New(config, canvas)
	if err != nil {
		return Model{}, fmt.Errorf("new game: %w", err)
	}
	return Model{
		state:  state,
		canvas: canvas,
		input:  NewInput(config.Players, hold),
	}, nil
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return nextFrame()
}

// Update handles incoming messages (key presses, frames).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		now := time.Time(msg)
		m.step(now)
		return m, nextFrame()
	}

	return m, nil
}

// step runs one tick for the time elapsed since the previous frame.
func (m *Model) step(now time.Time) {
	elapsed := time.Duration(0)
	if !m.last.IsZero() {
		elapsed = min(max(now.Sub(m.last), 0), maxElapsed)
	}
	m.last = now
	m.state.Update(int(elapsed / time.Millisecond))
	m.input.Release(m.state, now)
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye! 👋\n"
	}
	if m.err != nil {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Render("Error: "+m.err.Error()) + "\n"
	}

	m.state.Draw()
	hud := RenderHUD(m.state.Players(), m.input.Help())

	// Layout: board on the left, HUD on the right
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.canvas.String(),
		"  ",
		hud,
	) + "\n"
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "r":
		state, err := game.New(m.state.Config(), m.canvas)
		if err != nil {
			m.err = err
			return m, tea.Quit
		}
		log.Printf("match restarted after %d ticks", m.state.Tick())
		m.state = state
		m.input.Reset()
		return m, nil
	}

	m.input.Press(m.state, msg.String(), time.Now())
	return m, nil
}

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
