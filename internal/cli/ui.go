package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
)

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorDim    = lipgloss.Color("240")
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
)

// Board cell glyphs
const (
	glyphWater  = "~"
	glyphShip   = "#"
	glyphHit    = "x"
	glyphMiss   = "o"
	glyphCursor = "+"
)

// styles are bound to a renderer so output written to a
// pipe or a buffer carries no escape sequences.
type styles struct {
	title   lipgloss.Style
	dim     lipgloss.Style
	value   lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	err     lipgloss.Style

	water  lipgloss.Style
	ship   lipgloss.Style
	hit    lipgloss.Style
	miss   lipgloss.Style
	cursor lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorCyan),
		dim:     r.NewStyle().Foreground(colorDim),
		value:   r.NewStyle().Foreground(colorWhite),
		success: r.NewStyle().Foreground(colorGreen),
		warning: r.NewStyle().Foreground(colorYellow),
		err:     r.NewStyle().Foreground(colorRed),

		water:  r.NewStyle().Foreground(colorBlue),
		ship:   r.NewStyle().Foreground(colorWhite).Bold(true),
		hit:    r.NewStyle().Foreground(colorRed).Bold(true),
		miss:   r.NewStyle().Foreground(colorDim),
		cursor: r.NewStyle().Foreground(colorYellow).Bold(true).Reverse(true),
	}
}

func (s styles) printTitle(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.title.Render(fmt.Sprintf(format, args...)))
}

func (s styles) printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.success.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (s styles) printError(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.err.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func (s styles) printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.warning.Render(iconWarning)+" "+s.warning.Render(fmt.Sprintf(format, args...)))
}

func (s styles) printInfo(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, s.dim.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

// outcome renders a shot result, e.g. "hit Nina".
func (s styles) outcome(result mb.ShotResult) string {
	text := result.Outcome.String()
	if result.Outcome.NamesShip() {
		text += " " + result.ShipName
	}

	switch result.Outcome {
	case mb.OutcomeSunk:
		return s.hit.Render(text)
	case mb.OutcomeHit:
		return s.warning.Render(text)
	case mb.OutcomeRepeat:
		return s.dim.Render(text)
	default:
		return s.value.Render(text)
	}
}

// board draws the grid with x across and y down. Ships are
// only drawn when reveal is set; hits and misses always are.
// The cursor is highlighted when not nil.
func (s styles) board(b *mb.Board, reveal bool, cursor *mb.Point) string {
	grid := b.Snapshot()

	var sb strings.Builder
	sb.WriteString("   ")
	for x := uint8(0); x < mb.MapSize; x++ {
		fmt.Fprintf(&sb, " %d", x)
	}
	sb.WriteString("\n")

	for y := uint8(0); y < mb.MapSize; y++ {
		fmt.Fprintf(&sb, " %d ", y)
		for x := uint8(0); x < mb.MapSize; x++ {
			p := mb.NewPoint(x, y)
			glyph, style := s.cell(b, grid[x][y], p, reveal)
			if cursor != nil && *cursor == p {
				if glyph == glyphWater {
					glyph = glyphCursor
				}
				style = s.cursor
			}
			sb.WriteString(" " + style.Render(glyph))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (s styles) cell(b *mb.Board, status mb.CellStatus, p mb.Point, reveal bool) (string, lipgloss.Style) {
	switch status {
	case mb.CellHasShip:
		if reveal {
			return glyphShip, s.ship
		}
		return glyphWater, s.water

	case mb.CellPicked:
		if _, prs := b.ShipAt(p); prs {
			return glyphHit, s.hit
		}
		return glyphMiss, s.miss

	default:
		return glyphWater, s.water
	}
}
