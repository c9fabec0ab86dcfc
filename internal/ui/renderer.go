package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amalg/go-bomberhuman/internal/game"
	"github.com/amalg/go-bomberhuman/internal/geometry"
)

// Color palette
var (
	hardWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3a3a3a")).
			Foreground(lipgloss.Color("#555555"))

	softWallStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B6914")).
			Foreground(lipgloss.Color("#A0772B"))

	burningWallStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#8B3A14")).
				Foreground(lipgloss.Color("#ff8844"))

	emptyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#1a1a2e"))

	bombStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	fireStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff6600")).
			Foreground(lipgloss.Color("#ffcc00")).
			Bold(true)

	powerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#44aaff")).
			Bold(true)

	// Player colors (4 distinct colors for up to 4 players)
	playerColors = []lipgloss.Color{
		lipgloss.Color("#00ff88"), // Green
		lipgloss.Color("#4488ff"), // Blue
		lipgloss.Color("#ff44ff"), // Magenta
		lipgloss.Color("#ffff44"), // Yellow
	}

	deadPlayerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(lipgloss.Color("#666666")).
			Strikethrough(true)

	// HUD styles
	hudBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff8844")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
)

type cell struct {
	kind   game.ActorKind
	action int
	set    bool
}

// Canvas is a game.Renderer that paints sprites onto a character grid, one
// cell per arena grid cell. Sprites drawn later cover earlier ones.
type Canvas struct {
	grid  geometry.Grid
	cols  int
	rows  int
	cells []cell
}

// NewCanvas creates a canvas for the given arena cell size.
func NewCanvas(grid geometry.Grid) *Canvas {
	return &Canvas{grid: grid}
}

// Clear resizes the canvas to the surface and wipes it.
func (c *Canvas) Clear(width, height int) {
	c.cols = width / c.grid.Size
	c.rows = height / c.grid.Size
	n := c.cols * c.rows
	if cap(c.cells) < n {
		c.cells = make([]cell, n)
	}
	c.cells = c.cells[:n]
	clear(c.cells)
}

// PutSprite snaps pos to its nearest cell; sprites off the surface are
// dropped.
func (c *Canvas) PutSprite(pos geometry.Point, kind game.ActorKind, action int) {
	p := c.grid.Align(pos)
	cx, cy := p.X/c.grid.Size, p.Y/c.grid.Size
	if cx < 0 || cy < 0 || cx >= c.cols || cy >= c.rows {
		return
	}
	c.cells[cy*c.cols+cx] = cell{kind: kind, action: action, set: true}
}

// String renders the canvas. Each cell is 2 characters wide for a
// square-ish appearance.
func (c *Canvas) String() string {
	if c.cols == 0 || c.rows == 0 {
		return "Waiting for first frame..."
	}
	rows := make([]string, 0, c.rows)
	var b strings.Builder
	for y := 0; y < c.rows; y++ {
		b.Reset()
		for x := 0; x < c.cols; x++ {
			b.WriteString(renderCell(c.cells[y*c.cols+x]))
		}
		rows = append(rows, b.String())
	}
	return strings.Join(rows, "\n")
}

// Glyph is the unstyled two-character text of a sprite.
func Glyph(kind game.ActorKind, action int) string {
	switch kind {
	case game.KindPlayer1, game.KindPlayer2, game.KindPlayer3, game.KindPlayer4:
		if action == game.ActionDead {
			return "xx"
		}
		return fmt.Sprintf("P%d", int(kind-game.KindPlayer1)+1)
	case game.KindBomb:
		if action >= 12 && action%2 == 0 {
			return "@@"
		}
		return "()"
	case game.KindHardBlock:
		return "██"
	case game.KindSoftBlock:
		switch action {
		case 0:
			return "▒▒"
		case 1:
			return "▓▓"
		default:
			return "░░"
		}
	case game.KindFire:
		if action < 2 {
			return "▓▓"
		}
		return "░░"
	case game.KindBombUp:
		return "B+"
	case game.KindPowerUp:
		return "F+"
	case game.KindSpeedUp:
		return "S+"
	default:
		return "  "
	}
}

func renderCell(c cell) string {
	if !c.set {
		return emptyStyle.Render("  ")
	}
	text := Glyph(c.kind, c.action)
	switch c.kind {
	case game.KindPlayer1, game.KindPlayer2, game.KindPlayer3, game.KindPlayer4:
		if c.action == game.ActionDead {
			return deadPlayerStyle.Render(text)
		}
		return lipgloss.NewStyle().
			Background(lipgloss.Color("#1a1a2e")).
			Foreground(playerColors[int(c.kind-game.KindPlayer1)%len(playerColors)]).
			Bold(true).
			Render(text)
	case game.KindBomb:
		return bombStyle.Render(text)
	case game.KindHardBlock:
		return hardWallStyle.Render(text)
	case game.KindSoftBlock:
		if c.action > 0 {
			return burningWallStyle.Render(text)
		}
		return softWallStyle.Render(text)
	case game.KindFire:
		return fireStyle.Render(text)
	default:
		return powerStyle.Render(text)
	}
}

// RenderHUD renders the heads-up display with each player's stats.
func RenderHUD(players []game.Player, bindings []string) string {
	parts := []string{titleStyle.Render("💣 BOMBERHUMAN"), ""}

	for _, p := range players {
		colorIdx := p.ID % len(playerColors)
		nameStyle := lipgloss.NewStyle().Foreground(playerColors[colorIdx])
		status := "❤️ "
		if !p.Alive() {
			status = "💀"
			nameStyle = deadPlayerStyle
		}
		line := fmt.Sprintf("%s %s [💣×%d 🔥%d 👟%d] deaths %d",
			status,
			nameStyle.Render(fmt.Sprintf("P%d", p.ID+1)),
			p.Bombs,
			p.Power,
			p.Speed,
			p.Deaths,
		)
		parts = append(parts, line)
	}

	parts = append(parts, "")
	for _, b := range bindings {
		parts = append(parts, helpStyle.Render(b))
	}
	parts = append(parts, helpStyle.Render("R: Restart | Q: Quit"))

	return hudBorderStyle.Render(strings.Join(parts, "\n"))
}
