package entity

type Ship struct {
	size   int
	coords []Coordinate
}

func NewShip(size int) *Ship {
	return &Ship{
		size:   size,
		coords: make([]Coordinate, 0, size),
	}
}

func (that *Ship) Size() int {
	return that.size
}

// AddCoordinate - the board guarantees no duplicates and exactly Size calls.
func (that *Ship) AddCoordinate(x, y int) {
	that.coords = append(that.coords, Coordinate{X: x, Y: y})
}

func (that *Ship) Coordinates() []Coordinate {
	coords := make([]Coordinate, len(that.coords))
	copy(coords, that.coords)

	return coords
}

func (that *Ship) Contains(x, y int) bool {
	for _, coord := range that.coords {
		if coord.X == x && coord.Y == y {
			return true
		}
	}

	return false
}

func (that *Ship) IsPlaced() bool {
	return len(that.coords) > 0
}

// IsSunk - true when every cell of the ship is hit in the given grid.
func (that *Ship) IsSunk(grid *Grid) bool {
	for _, coord := range that.coords {
		if grid[coord.X][coord.Y] != CellHit {
			return false
		}
	}

	return true
}
