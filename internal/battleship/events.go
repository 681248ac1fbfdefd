package battleship

type TurnStarted struct {
	MatchID string
	Player  string
	Turn    int
}

type ShotFired struct {
	MatchID string
	Player  string
	X       int
	Y       int
}

// ShotResolved - Repeat is set when the cell had already been shot, such a shot is a miss.
type ShotResolved struct {
	MatchID  string
	Player   string
	X        int
	Y        int
	Hit      bool
	Sunk     bool
	ShipSize int
	Repeat   bool
}

// OnTurnStarted - subscribers run synchronously in registration order.
func (that *Match) OnTurnStarted(fn func(TurnStarted)) {
	that.turnStarted = append(that.turnStarted, fn)
}

func (that *Match) OnShotFired(fn func(ShotFired)) {
	that.shotFired = append(that.shotFired, fn)
}

func (that *Match) OnShotResult(fn func(ShotResolved)) {
	that.shotResolved = append(that.shotResolved, fn)
}

func (that *Match) emitTurnStarted(event TurnStarted) {
	for _, fn := range that.turnStarted {
		fn(event)
	}
}

func (that *Match) emitShotFired(event ShotFired) {
	for _, fn := range that.shotFired {
		fn(event)
	}
}

func (that *Match) emitShotResult(event ShotResolved) {
	for _, fn := range that.shotResolved {
		fn(event)
	}
}
