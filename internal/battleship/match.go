package battleship

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

type Mode string

const (
	ModeHumanVsComputer    Mode = "human"
	ModeComputerVsComputer Mode = "computer"
)

type State int

const (
	StateSetup State = iota
	StateAwaitingTurn
	StateResolving
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSetup:
		return "setup"
	case StateAwaitingTurn:
		return "awaiting turn"
	case StateResolving:
		return "resolving"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Targeter - picks the next cell to shoot at, either from a human or from a bot.
type Targeter interface {
	NextTarget(ctx context.Context, shooter, opponent *entity.Player) (entity.Coordinate, error)
}

// Contender - a player together with whatever chooses its shots.
type Contender struct {
	Player   *entity.Player
	Targeter Targeter
}

type tally struct {
	shots int
	hits  int
}

type Match struct {
	base   *slog.Logger
	logger *slog.Logger

	id         string
	mode       Mode
	contenders [2]Contender
	turn       int
	turns      int
	state      State
	target     entity.Coordinate
	winner     int
	tallies    [2]tally

	turnStarted  []func(TurnStarted)
	shotFired    []func(ShotFired)
	shotResolved []func(ShotResolved)
}

func NewMatch(logger *slog.Logger, mode Mode, first, second Contender) *Match {
	id := newMatchID()
	base := logger.With("component", "match")

	return &Match{
		base:       base,
		logger:     base.With("matchID", id),
		id:         id,
		mode:       mode,
		contenders: [2]Contender{first, second},
		state:      StateSetup,
		winner:     -1,
	}
}

func (that *Match) ID() string {
	return that.id
}

func (that *Match) Mode() Mode {
	return that.mode
}

func (that *Match) State() State {
	return that.state
}

// Target - the cell being resolved, or the last one resolved.
func (that *Match) Target() entity.Coordinate {
	return that.target
}

// Current - the player entitled to fire.
func (that *Match) Current() *entity.Player {
	return that.contenders[that.turn].Player
}

func (that *Match) Opponent() *entity.Player {
	return that.contenders[1-that.turn].Player
}

func (that *Match) Players() (*entity.Player, *entity.Player) {
	return that.contenders[0].Player, that.contenders[1].Player
}

// Winner - nil until the match is over.
func (that *Match) Winner() *entity.Player {
	if that.winner < 0 {
		return nil
	}

	return that.contenders[that.winner].Player
}

// Start - places the fleet of every player whose board is still empty and hands the first
// turn to the first player.
func (that *Match) Start() error {
	if that.state != StateSetup {
		return nil
	}

	for _, contender := range that.contenders {
		if len(contender.Player.Board().Fleet()) > 0 {
			continue
		}

		if err := contender.Player.PlaceShips(); err != nil {
			return fmt.Errorf("failed to place ships of %s: %w", contender.Player.Name(), err)
		}
	}

	that.turn = 0
	that.state = StateAwaitingTurn
	that.logger.Info("match started", "mode", that.mode,
		"first", that.contenders[0].Player.Name(), "second", that.contenders[1].Player.Name())

	return nil
}

// Rematch - new fleets for both players and a fresh match state.
func (that *Match) Rematch() error {
	for _, contender := range that.contenders {
		if err := contender.Player.ResetShips(); err != nil {
			return fmt.Errorf("failed to reset ships of %s: %w", contender.Player.Name(), err)
		}
	}

	that.id = newMatchID()
	that.logger = that.base.With("matchID", that.id)
	that.turns = 0
	that.winner = -1
	that.tallies = [2]tally{}
	that.state = StateSetup

	return that.Start()
}

// PlayTurn - plays one full turn of the current player. A hit earns another shot, the turn
// passes to the opponent after the first miss.
func (that *Match) PlayTurn(ctx context.Context) error {
	switch that.state {
	case StateSetup:
		return apperror.ErrGameIsNotStarted
	case StateGameOver:
		return apperror.ErrGameFinished
	}

	contender := that.contenders[that.turn]
	shooter, opponent := contender.Player, that.Opponent()

	that.turns++
	that.emitTurnStarted(TurnStarted{MatchID: that.id, Player: shooter.Name(), Turn: that.turns})

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("turn interrupted: %w", err)
		}

		target, err := contender.Targeter.NextTarget(ctx, shooter, opponent)
		if err != nil {
			return fmt.Errorf("failed to get target of %s: %w", shooter.Name(), err)
		}

		hit, err := that.shoot(shooter, opponent, target)
		if err != nil {
			return err
		}

		// the opponent has nothing left to shoot at
		if !hit || opponent.Board().IsLost() {
			break
		}
	}

	if that.finishIfLost() {
		return nil
	}

	that.turn = 1 - that.turn

	return nil
}

// Play - starts the match if needed and plays turns until one fleet is sunk.
func (that *Match) Play(ctx context.Context) (*entity.MatchResult, error) {
	if err := that.Start(); err != nil {
		return nil, err
	}

	for that.state != StateGameOver {
		if err := that.PlayTurn(ctx); err != nil {
			return nil, err
		}
	}

	return that.Result(), nil
}

// Result - nil until the match is over.
func (that *Match) Result() *entity.MatchResult {
	if that.state != StateGameOver {
		return nil
	}

	players := make([]entity.PlayerStats, 0, len(that.contenders))
	for i, contender := range that.contenders {
		players = append(players, entity.NewPlayerStats(contender.Player.Name(), that.tallies[i].shots, that.tallies[i].hits))
	}

	return &entity.MatchResult{
		ID:         that.id,
		Winner:     that.contenders[that.winner].Player.Name(),
		Loser:      that.contenders[1-that.winner].Player.Name(),
		Turns:      that.turns,
		Players:    players,
		FinishedAt: time.Now().UTC(),
	}
}

func (that *Match) shoot(shooter, opponent *entity.Player, target entity.Coordinate) (bool, error) {
	log := that.logger.With("method", "shoot", "player", shooter.Name())

	that.state = StateResolving
	that.target = target
	that.emitShotFired(ShotFired{MatchID: that.id, Player: shooter.Name(), X: target.X, Y: target.Y})

	result, err := shooter.Fire(opponent, target.X, target.Y)
	repeat := errors.Is(err, apperror.ErrCellAlreadyShot)
	if err != nil && !repeat {
		that.state = StateAwaitingTurn
		return false, fmt.Errorf("failed to resolve shot: %w", err)
	}

	if repeat {
		log.Debug("repeat shot counts as a miss", "x", target.X, "y", target.Y)
	}

	score := &that.tallies[that.turn]
	score.shots++
	if result.IsHit() {
		score.hits++
	}

	event := ShotResolved{
		MatchID: that.id,
		Player:  shooter.Name(),
		X:       target.X,
		Y:       target.Y,
		Hit:     result.IsHit(),
		Sunk:    result.Outcome == entity.ShotSunk,
		Repeat:  repeat,
	}
	if result.Ship != nil {
		event.ShipSize = result.Ship.Size()
	}

	that.state = StateAwaitingTurn
	that.emitShotResult(event)

	return event.Hit, nil
}

func (that *Match) finishIfLost() bool {
	for i, contender := range that.contenders {
		if contender.Player.Board().IsLost() {
			that.winner = 1 - i
			that.state = StateGameOver
			that.logger.Info("match finished", "winner", that.contenders[that.winner].Player.Name(), "turns", that.turns)

			return true
		}
	}

	return false
}

func newMatchID() string {
	return uuid.NewString()[:8]
}
