package entity

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship/internal/apperror"
)

func TestPlayer_PlaceShips(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		// Given: a player with a seeded random source
		player := NewPlayer("p1", rand.New(rand.NewSource(seed)))

		// When: the standard fleet is placed
		require.NoError(t, player.PlaceShips())

		// Then: the fleet has the standard sizes and 18 ship cells
		fleet := player.Board().Fleet()
		require.Len(t, fleet, 10)

		sizes := make([]int, 0, len(fleet))
		for _, ship := range fleet {
			sizes = append(sizes, ship.Size())
			assert.Len(t, ship.Coordinates(), ship.Size())
		}
		sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
		assert.Equal(t, StandardFleet, sizes)

		shipCells := 0
		grid := player.Board().Grid()
		for x := range BoardSize {
			for y := range BoardSize {
				if grid[x][y] == CellShip {
					shipCells++
				}
			}
		}
		assert.Equal(t, 18, shipCells)

		// Then: no two ships overlap or touch
		assertFleetSeparated(t, fleet)
	}
}

func TestPlayer_PlaceShipsExhausted(t *testing.T) {
	// Given: a fleet that can't fit on the board
	player := NewPlayer("p1", rand.New(rand.NewSource(1)), WithFleet(11), WithMaxPlacementAttempts(10))

	// When: the fleet is placed
	err := player.PlaceShips()

	// Then: placement gives up with ErrPlacementExhausted and leaves the board clean
	require.ErrorIs(t, err, apperror.ErrPlacementExhausted)
	assert.Empty(t, player.Board().Fleet())
}

func TestPlayer_PlaceShipsFallbackScan(t *testing.T) {
	// Given: a random source that always proposes a spot outside the board for a 4-cell ship
	player := NewPlayer("p1", stuckRandom{}, WithFleet(4), WithMaxPlacementAttempts(5))

	// When: the fleet is placed
	err := player.PlaceShips()

	// Then: the scan finds the first free spot
	require.NoError(t, err)
	require.Len(t, player.Board().Fleet(), 1)
	assert.Equal(t, Coordinate{X: 0, Y: 0}, player.Board().Fleet()[0].Coordinates()[0])
}

func TestPlayer_ResetShips(t *testing.T) {
	// Given: a player whose board has been shot at
	player := NewPlayer("p1", rand.New(rand.NewSource(7)))
	opponent := NewPlayer("p2", rand.New(rand.NewSource(8)))
	require.NoError(t, player.PlaceShips())
	for x := range BoardSize {
		opponent.Shoot(player, x, x)
	}

	// When: the ships are reset
	require.NoError(t, player.ResetShips())

	// Then: a fresh fleet sits on a board without shots
	assert.Len(t, player.Board().Fleet(), 10)
	grid := player.Board().Grid()
	for x := range BoardSize {
		for y := range BoardSize {
			assert.Contains(t, []CellState{CellEmpty, CellShip}, grid[x][y])
		}
	}
}

func TestPlayer_Shoot(t *testing.T) {
	// Given: an opponent with one ship at (2,2)
	shooter := NewPlayer("p1", rand.New(rand.NewSource(1)))
	opponent := NewPlayer("p2", rand.New(rand.NewSource(2)))
	require.NoError(t, opponent.Board().PlaceShip(NewShip(1), 2, 2, true))

	// Then: shots land on the opponent's board
	assert.False(t, shooter.Shoot(opponent, 0, 0))
	assert.Equal(t, CellMiss, opponent.Board().Cell(0, 0))
	assert.True(t, shooter.Shoot(opponent, 2, 2))
	assert.True(t, opponent.Board().IsLost())
	assert.Equal(t, Grid{}, shooter.Board().Grid())

	// Then: Fire reports the repeat
	_, err := shooter.Fire(opponent, 2, 2)
	require.ErrorIs(t, err, apperror.ErrCellAlreadyShot)
}

func TestNewPlayerStats(t *testing.T) {
	assert.InDelta(t, 25.0, NewPlayerStats("p1", 8, 2).Accuracy, 0.0001)
	assert.Zero(t, NewPlayerStats("p1", 0, 0).Accuracy)
}

// stuckRandom - always proposes (9, 9) horizontally.
type stuckRandom struct{}

func (stuckRandom) Intn(n int) int {
	if n == 2 {
		return 0
	}
	return n - 1
}

func assertFleetSeparated(t *testing.T, fleet []*Ship) {
	t.Helper()

	for i := range fleet {
		for j := i + 1; j < len(fleet); j++ {
			for _, a := range fleet[i].Coordinates() {
				for _, b := range fleet[j].Coordinates() {
					dx, dy := a.X-b.X, a.Y-b.Y
					touching := dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
					assert.False(t, touching, "ships %d and %d touch at %v/%v", i, j, a, b)
				}
			}
		}
	}
}
