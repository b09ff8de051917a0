package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
)

// playModel is the bubbletea model behind the play command.
// The fleet stays hidden; only hits and misses are drawn.
type playModel struct {
	game   *mb.Game
	styles styles
	cursor mb.Point

	last     *mb.ShotResult
	shots    int
	quitting bool
}

func newPlayModel(game *mb.Game, s styles) playModel {
	return playModel{
		game:   game,
		styles: s,
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}
	case "down", "j":
		if m.cursor.Y < mb.MapSize-1 {
			m.cursor.Y++
		}
	case "left", "h":
		if m.cursor.X > 0 {
			m.cursor.X--
		}
	case "right", "l":
		if m.cursor.X < mb.MapSize-1 {
			m.cursor.X++
		}

	case "enter", " ":
		return m.fire()
	}

	return m, nil
}

func (m playModel) fire() (tea.Model, tea.Cmd) {
	result, err := m.game.Shoot(m.cursor)
	// The cursor never leaves the grid
	if err != nil {
		return m, nil
	}

	m.last = &result
	m.shots++
	if m.game.IsFinished() {
		return m, tea.Quit
	}
	return m, nil
}

func (m playModel) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.styles.title.Render("Battleship") + "\n\n")

	cursor := m.cursor
	sb.WriteString(m.styles.board(m.game.Board(), m.game.IsFinished(), &cursor))
	sb.WriteString("\n")

	board := m.game.Board()
	fmt.Fprintf(&sb, "shots: %d  sunk: %d/%d\n", m.shots, board.SunkenShips(), len(board.Ships()))

	if m.last != nil {
		fmt.Fprintf(&sb, "(%d,%d): %s\n", m.last.Point.X, m.last.Point.Y, m.styles.outcome(*m.last))
	}

	if m.game.IsFinished() {
		sb.WriteString(m.styles.success.Render(fmt.Sprintf("%s fleet destroyed in %d shots", iconSuccess, m.shots)) + "\n")
		return sb.String()
	}

	sb.WriteString(m.styles.dim.Render("arrows/hjkl move • enter/space fire • q quit") + "\n")
	return sb.String()
}
