package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/battleship/internal/battleship"
	"github.com/rocketscienceinc/battleship/internal/config"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/internal/repository"
	"github.com/rocketscienceinc/battleship/internal/repository/storage"
	"github.com/rocketscienceinc/battleship/internal/service"
	"github.com/rocketscienceinc/battleship/internal/transport/console"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown match mode")
)

// RunApp - runs the configured number of matches, reading human shots from in and drawing
// the game to out.
func RunApp(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	var results repository.ResultRepository
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		results = repository.NewResultRepository(redisStorage)
	}

	match, viewer, err := newMatch(logger, conf, in, out)
	if err != nil {
		return err
	}

	renderer := console.NewRenderer(out)
	renderer.Subscribe(match, viewer)
	subscribeLogger(logger, match)

	doneCh := make(chan error, 1)
	go func() {
		doneCh <- playRounds(ctx, log, conf.Match.Rounds, match, renderer, results)
	}()

	select {
	case err = <-doneCh:
		return err
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func newMatch(logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) (*battleship.Match, *entity.Player, error) {
	seed := conf.Match.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger.Info("Preparing match", "mode", conf.Match.Mode, "seed", seed)

	// one independent stream per consumer, all derived from the seed
	master := rand.New(rand.NewSource(seed)) //nolint: gosec // game randomness
	stream := func() *rand.Rand {
		return rand.New(rand.NewSource(master.Int63())) //nolint: gosec // game randomness
	}

	opts := []entity.PlayerOption{entity.WithMaxPlacementAttempts(conf.Match.MaxPlacementAttempts)}
	first := entity.NewPlayer(conf.Match.PlayerName, stream(), opts...)
	second := entity.NewPlayer(conf.Match.OpponentName, stream(), opts...)
	opponentBot := service.NewBotService(stream(), conf.Match.ComputerDelay)

	switch mode := battleship.Mode(conf.Match.Mode); mode {
	case battleship.ModeHumanVsComputer:
		match := battleship.NewMatch(logger, mode,
			battleship.Contender{Player: first, Targeter: console.NewInput(logger, in, out)},
			battleship.Contender{Player: second, Targeter: opponentBot})

		return match, first, nil
	case battleship.ModeComputerVsComputer:
		match := battleship.NewMatch(logger, mode,
			battleship.Contender{Player: first, Targeter: service.NewBotService(stream(), conf.Match.ComputerDelay)},
			battleship.Contender{Player: second, Targeter: opponentBot})

		return match, nil, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownMode, conf.Match.Mode)
	}
}

func playRounds(
	ctx context.Context,
	log *slog.Logger,
	rounds int,
	match *battleship.Match,
	renderer *console.Renderer,
	results repository.ResultRepository,
) error {
	rounds = max(rounds, 1)

	for round := 1; round <= rounds; round++ {
		if round > 1 {
			if err := match.Rematch(); err != nil {
				return fmt.Errorf("failed to start rematch: %w", err)
			}
		}

		result, err := match.Play(ctx)
		if err != nil {
			return fmt.Errorf("match %s failed: %w", match.ID(), err)
		}

		first, second := match.Players()
		renderer.RenderBoard("\n"+first.Name()+":", first.Board(), false)
		renderer.RenderBoard("\n"+second.Name()+":", second.Board(), false)
		renderer.RenderResult(result)

		if results == nil {
			continue
		}

		if err = results.Save(ctx, result); err != nil {
			// losing the tally must not spoil the game
			log.Error("could not save match result", "matchID", result.ID, "error", err)
			continue
		}

		standing, err := results.Standing(ctx, result.Winner)
		if err != nil {
			log.Error("could not read standing", "player", result.Winner, "error", err)
			continue
		}

		log.Info("Match result saved", "matchID", result.ID, "winner", result.Winner,
			"wins", standing.Wins, "losses", standing.Losses)
	}

	return nil
}

func subscribeLogger(logger *slog.Logger, match *battleship.Match) {
	log := logger.With("component", "events")

	match.OnTurnStarted(func(event battleship.TurnStarted) {
		log.Debug("turn started", "matchID", event.MatchID, "player", event.Player, "turn", event.Turn)
	})
	match.OnShotFired(func(event battleship.ShotFired) {
		log.Debug("shot fired", "matchID", event.MatchID, "player", event.Player, "x", event.X, "y", event.Y)
	})
	match.OnShotResult(func(event battleship.ShotResolved) {
		log.Debug("shot result", "matchID", event.MatchID, "player", event.Player,
			"hit", event.Hit, "sunk", event.Sunk, "repeat", event.Repeat)
	})
}
