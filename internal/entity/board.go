package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

type ShotOutcome int

const (
	ShotMiss ShotOutcome = iota
	ShotHit
	ShotSunk
)

func (o ShotOutcome) String() string {
	switch o {
	case ShotHit:
		return "hit"
	case ShotSunk:
		return "sunk"
	default:
		return "miss"
	}
}

// ShotResult - Ship is set for hits and points to the ship that was struck.
type ShotResult struct {
	Outcome ShotOutcome
	Ship    *Ship
}

func (that ShotResult) IsHit() bool {
	return that.Outcome != ShotMiss
}

type Board struct {
	grid  Grid
	fleet []*Ship
}

func NewBoard() *Board {
	return &Board{}
}

// CanPlaceShip - checks that a ship of the given length fits at (x, y) and keeps one free cell
// to every other ship, diagonals included. Horizontal ships extend along y, vertical along x.
func (that *Board) CanPlaceShip(x, y, length int, horizontal bool) bool {
	if length <= 0 || !InBounds(x, y) {
		return false
	}

	if horizontal && y+length > BoardSize {
		return false
	}

	if !horizontal && x+length > BoardSize {
		return false
	}

	for i := range length {
		cx, cy := segmentCell(x, y, i, horizontal)

		if that.grid[cx][cy] != CellEmpty {
			return false
		}

		if that.hasAdjacentShip(cx, cy) {
			return false
		}
	}

	return true
}

// PlaceShip - writes the ship onto the grid and appends it to the fleet.
func (that *Board) PlaceShip(ship *Ship, x, y int, horizontal bool) error {
	if ship.IsPlaced() {
		return apperror.ErrShipAlreadyPlaced
	}

	if !that.CanPlaceShip(x, y, ship.Size(), horizontal) {
		return fmt.Errorf("%w: size %d at (%d, %d)", apperror.ErrInvalidPlacement, ship.Size(), x, y)
	}

	for i := range ship.Size() {
		cx, cy := segmentCell(x, y, i, horizontal)

		that.grid[cx][cy] = CellShip
		ship.AddCoordinate(cx, cy)
	}

	that.fleet = append(that.fleet, ship)

	return nil
}

// Fire - resolves a shot at (x, y). A repeat shot leaves the grid untouched and returns
// ErrCellAlreadyShot.
func (that *Board) Fire(x, y int) (ShotResult, error) {
	if !InBounds(x, y) {
		return ShotResult{}, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, x, y)
	}

	switch that.grid[x][y] {
	case CellShip:
		that.grid[x][y] = CellHit

		ship := that.ShipAt(x, y)
		if ship != nil && ship.IsSunk(&that.grid) {
			that.markAroundSunkShip(ship)

			return ShotResult{Outcome: ShotSunk, Ship: ship}, nil
		}

		return ShotResult{Outcome: ShotHit, Ship: ship}, nil
	case CellEmpty:
		that.grid[x][y] = CellMiss

		return ShotResult{Outcome: ShotMiss}, nil
	default:
		return ShotResult{Outcome: ShotMiss}, fmt.Errorf("%w: (%d, %d)", apperror.ErrCellAlreadyShot, x, y)
	}
}

// Shoot - reports whether the shot at (x, y) hit a ship. Shooting an already resolved cell
// reports a miss. The coordinate must be on the board.
func (that *Board) Shoot(x, y int) bool {
	result, err := that.Fire(x, y)
	if errors.Is(err, apperror.ErrOutOfBounds) {
		panic(err)
	}

	return err == nil && result.IsHit()
}

// IsLost - true when every ship of the fleet is sunk, and for an empty fleet.
func (that *Board) IsLost() bool {
	for _, ship := range that.fleet {
		if !ship.IsSunk(&that.grid) {
			return false
		}
	}

	return true
}

func (that *Board) Reset() {
	that.grid = Grid{}
	that.fleet = nil
}

// ShipAt - returns the first fleet ship occupying (x, y), or nil.
func (that *Board) ShipAt(x, y int) *Ship {
	for _, ship := range that.fleet {
		if ship.Contains(x, y) {
			return ship
		}
	}

	return nil
}

func (that *Board) Cell(x, y int) CellState {
	return that.grid[x][y]
}

// Grid - returns a copy of the grid.
func (that *Board) Grid() Grid {
	return that.grid
}

func (that *Board) Fleet() []*Ship {
	fleet := make([]*Ship, len(that.fleet))
	copy(fleet, that.fleet)

	return fleet
}

func (that *Board) SunkCount() int {
	sunk := 0
	for _, ship := range that.fleet {
		if ship.IsSunk(&that.grid) {
			sunk++
		}
	}

	return sunk
}

func (that *Board) hasAdjacentShip(x, y int) bool {
	found := false
	neighbours(x, y, func(nx, ny int) {
		if that.grid[nx][ny] == CellShip {
			found = true
		}
	})

	return found
}

// markAroundSunkShip - the border of a sunk ship can't hold another ship, so it is revealed.
func (that *Board) markAroundSunkShip(ship *Ship) {
	for _, coord := range ship.coords {
		neighbours(coord.X, coord.Y, func(nx, ny int) {
			if that.grid[nx][ny] == CellEmpty {
				that.grid[nx][ny] = CellMiss
			}
		})
	}
}

func segmentCell(x, y, i int, horizontal bool) (int, int) {
	if horizontal {
		return x, y + i
	}

	return x + i, y
}
