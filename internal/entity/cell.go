package entity

// BoardSize - the side length of every board.
const BoardSize = 10

type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "empty"
	case CellShip:
		return "ship"
	case CellHit:
		return "hit"
	case CellMiss:
		return "miss"
	default:
		return "unknown"
	}
}

// Coordinate - X is the row, Y is the column.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid - indexed as grid[x][y].
type Grid [BoardSize][BoardSize]CellState

// InBounds - reports whether (x, y) lies on the board.
func InBounds(x, y int) bool {
	return x >= 0 && x < BoardSize && y >= 0 && y < BoardSize
}

// neighbours - calls fn for each of the up to 8 cells around (x, y) that lie on the board.
func neighbours(x, y int, fn func(nx, ny int)) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}

			if nx, ny := x+dx, y+dy; InBounds(nx, ny) {
				fn(nx, ny)
			}
		}
	}
}
