package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

const (
	recentMatchesKey = "matches:recent"
	recentMatchesCap = 100
)

type ResultRepository interface {
	Save(ctx context.Context, result *entity.MatchResult) error
	GetByID(ctx context.Context, id string) (*entity.MatchResult, error)
	Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error)
	Standing(ctx context.Context, player string) (Standing, error)
}

type Standing struct {
	Wins   int64
	Losses int64
}

type dbResult struct {
	client *redis.Client
}

func NewResultRepository(client *redis.Client) ResultRepository {
	return &dbResult{
		client: client,
	}
}

// Save - stores the result and updates both players' standings in one transaction.
func (that *dbResult) Save(ctx context.Context, result *entity.MatchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal match result: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, matchKey(result.ID), resultJSON, 0)
		pipe.Incr(ctx, winsKey(result.Winner))
		pipe.Incr(ctx, lossesKey(result.Loser))
		pipe.LPush(ctx, recentMatchesKey, result.ID)
		pipe.LTrim(ctx, recentMatchesKey, 0, recentMatchesCap-1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save match result: %w", err)
	}

	return nil
}

func (that *dbResult) GetByID(ctx context.Context, id string) (*entity.MatchResult, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrResultNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get match result by id: %w", err)
	}

	var result entity.MatchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match result: %w", err)
	}

	return &result, nil
}

// Recent - newest first.
func (that *dbResult) Recent(ctx context.Context, limit int64) ([]*entity.MatchResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, recentMatchesKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent matches: %w", err)
	}

	results := make([]*entity.MatchResult, 0, len(ids))
	for _, id := range ids {
		result, err := that.GetByID(ctx, id)
		if errors.Is(err, apperror.ErrResultNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		results = append(results, result)
	}

	return results, nil
}

func (that *dbResult) Standing(ctx context.Context, player string) (Standing, error) {
	wins, err := that.counter(ctx, winsKey(player))
	if err != nil {
		return Standing{}, err
	}

	losses, err := that.counter(ctx, lossesKey(player))
	if err != nil {
		return Standing{}, err
	}

	return Standing{Wins: wins, Losses: losses}, nil
}

func (that *dbResult) counter(ctx context.Context, key string) (int64, error) {
	value, err := that.client.Get(ctx, key).Int64()

	if errors.Is(err, redis.Nil) {
		return 0, nil
	}

	if err != nil {
		return 0, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return value, nil
}

func matchKey(id string) string {
	return "match:" + id
}

func winsKey(player string) string {
	return "wins:" + player
}

func lossesKey(player string) string {
	return "losses:" + player
}
