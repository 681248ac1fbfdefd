package entity

import (
	"fmt"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

const (
	DefaultMaxPlacementAttempts = 1000

	maxFleetAttempts = 10
)

// StandardFleet - one 4-cell, two 3-cell, three 2-cell and four 1-cell ships.
var StandardFleet = []int{4, 3, 3, 2, 2, 2, 1, 1, 1, 1}

// Random - source of randomness for placement and targeting, *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

type Player struct {
	name  string
	board *Board
	rnd   Random

	fleet       []int
	maxAttempts int
}

type PlayerOption func(*Player)

// WithFleet - replaces the standard fleet manifest.
func WithFleet(lengths ...int) PlayerOption {
	return func(player *Player) {
		player.fleet = append([]int(nil), lengths...)
	}
}

// WithMaxPlacementAttempts - random samples per ship before falling back to a full scan.
func WithMaxPlacementAttempts(attempts int) PlayerOption {
	return func(player *Player) {
		if attempts > 0 {
			player.maxAttempts = attempts
		}
	}
}

func NewPlayer(name string, rnd Random, opts ...PlayerOption) *Player {
	player := &Player{
		name:        name,
		board:       NewBoard(),
		rnd:         rnd,
		fleet:       StandardFleet,
		maxAttempts: DefaultMaxPlacementAttempts,
	}

	for _, opt := range opts {
		opt(player)
	}

	return player
}

func (that *Player) Name() string {
	return that.name
}

func (that *Player) Board() *Board {
	return that.board
}

// PlaceShips - places the fleet at random positions. If the board gets too crowded for the
// remaining ships, the board is cleared and the whole fleet is placed again.
func (that *Player) PlaceShips() error {
	for range maxFleetAttempts {
		if that.placeFleet() {
			return nil
		}

		that.board.Reset()
	}

	return fmt.Errorf("%w: fleet %v", apperror.ErrPlacementExhausted, that.fleet)
}

// ResetShips - clears the board and places a new fleet, used for rematches.
func (that *Player) ResetShips() error {
	that.board.Reset()

	return that.PlaceShips()
}

// Shoot - fires at the opponent's board and reports a hit.
func (that *Player) Shoot(opponent *Player, x, y int) bool {
	return opponent.board.Shoot(x, y)
}

func (that *Player) Fire(opponent *Player, x, y int) (ShotResult, error) {
	result, err := opponent.board.Fire(x, y)
	if err != nil {
		return result, fmt.Errorf("%s fires at (%d, %d): %w", that.name, x, y, err)
	}

	return result, nil
}

func (that *Player) placeFleet() bool {
	for _, length := range that.fleet {
		x, y, horizontal, ok := that.findPlacement(length)
		if !ok {
			return false
		}

		if err := that.board.PlaceShip(NewShip(length), x, y, horizontal); err != nil {
			return false
		}
	}

	return true
}

// findPlacement - random samples first, then a row-major scan over every origin.
func (that *Player) findPlacement(length int) (int, int, bool, bool) {
	for range that.maxAttempts {
		x := that.rnd.Intn(BoardSize)
		y := that.rnd.Intn(BoardSize)
		horizontal := that.rnd.Intn(2) == 0

		if that.board.CanPlaceShip(x, y, length, horizontal) {
			return x, y, horizontal, true
		}
	}

	for x := range BoardSize {
		for y := range BoardSize {
			for _, horizontal := range []bool{true, false} {
				if that.board.CanPlaceShip(x, y, length, horizontal) {
					return x, y, horizontal, true
				}
			}
		}
	}

	return 0, 0, false, false
}
