package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rocketscienceinc/battleship/internal/entity"
)

type BotService interface {
	NextTarget(ctx context.Context, shooter, opponent *entity.Player) (entity.Coordinate, error)
}

// botService - fires at uniformly random cells, repeats included.
type botService struct {
	rnd   entity.Random
	delay time.Duration
}

// NewBotService - delay pauses before every shot so a human can follow the computer's turn.
func NewBotService(rnd entity.Random, delay time.Duration) BotService {
	return &botService{
		rnd:   rnd,
		delay: delay,
	}
}

func (that *botService) NextTarget(ctx context.Context, _, _ *entity.Player) (entity.Coordinate, error) {
	if that.delay > 0 {
		timer := time.NewTimer(that.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return entity.Coordinate{}, fmt.Errorf("bot interrupted: %w", ctx.Err())
		case <-timer.C:
		}
	}

	return entity.Coordinate{
		X: that.rnd.Intn(entity.BoardSize),
		Y: that.rnd.Intn(entity.BoardSize),
	}, nil
}
