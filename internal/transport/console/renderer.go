package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	glyphWater = '·'
	glyphShip  = '■'
	glyphHit   = 'X'
	glyphMiss  = '*'
)

type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderBoard - prints the board with row and column numbers, ships drawn as water when hidden.
func (that *Renderer) RenderBoard(title string, board *entity.Board, hideShips bool) {
	var sb strings.Builder

	sb.WriteString(title)
	sb.WriteString("\n  ")
	for y := range entity.BoardSize {
		fmt.Fprintf(&sb, " %d", y)
	}
	sb.WriteByte('\n')

	grid := board.Grid()
	for x := range entity.BoardSize {
		fmt.Fprintf(&sb, "%2d", x)
		for y := range entity.BoardSize {
			sb.WriteByte(' ')
			sb.WriteRune(glyph(grid[x][y], hideShips))
		}
		sb.WriteByte('\n')
	}

	fmt.Fprint(that.out, sb.String())
}

// Subscribe - prints the course of the match. With a viewer set, the viewer's board and the
// hidden enemy board are shown before each of the viewer's turns, and the enemy board again
// before every extra shot the viewer earns.
func (that *Renderer) Subscribe(match *battleship.Match, viewer *entity.Player) {
	match.OnTurnStarted(func(event battleship.TurnStarted) {
		fmt.Fprintf(that.out, "\nTurn %d: %s\n", event.Turn, event.Player)

		if viewer == nil || match.Current() != viewer {
			return
		}

		that.RenderBoard("Your board:", viewer.Board(), false)
		that.RenderBoard("\nEnemy board:", match.Opponent().Board(), true)
	})

	match.OnShotFired(func(event battleship.ShotFired) {
		fmt.Fprintf(that.out, "%s fires at (%d, %d)\n", event.Player, event.X, event.Y)
	})

	match.OnShotResult(func(event battleship.ShotResolved) {
		fmt.Fprintln(that.out, describeShot(event))

		if viewer == nil || match.Current() != viewer || !event.Hit {
			return
		}

		enemy := match.Opponent().Board()
		if !enemy.IsLost() {
			that.RenderBoard("\nEnemy board:", enemy, true)
		}
	})
}

func (that *Renderer) RenderResult(result *entity.MatchResult) {
	fmt.Fprintf(that.out, "\n%s won in %d turns!\n", result.Winner, result.Turns)

	for _, stats := range result.Players {
		fmt.Fprintf(that.out, "  %-12s shots: %3d  hits: %2d  accuracy: %.1f%%\n",
			stats.Name, stats.Shots, stats.Hits, stats.Accuracy)
	}
}

func describeShot(event battleship.ShotResolved) string {
	switch {
	case event.Repeat:
		return "Already shot there. Miss!"
	case event.Sunk:
		return fmt.Sprintf("Hit! A %d-cell ship is sunk.", event.ShipSize)
	case event.Hit:
		return "Hit!"
	default:
		return "Miss!"
	}
}

func glyph(state entity.CellState, hideShips bool) rune {
	switch state {
	case entity.CellShip:
		if hideShips {
			return glyphWater
		}
		return glyphShip
	case entity.CellHit:
		return glyphHit
	case entity.CellMiss:
		return glyphMiss
	default:
		return glyphWater
	}
}
