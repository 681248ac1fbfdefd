package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
	"github.com/rocketscienceinc/battleship/testing/suite"
)

func newResult(id, winner, loser string) *entity.MatchResult {
	return &entity.MatchResult{
		ID:     id,
		Winner: winner,
		Loser:  loser,
		Turns:  12,
		Players: []entity.PlayerStats{
			entity.NewPlayerStats(winner, 40, 18),
			entity.NewPlayerStats(loser, 38, 11),
		},
		FinishedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestResultRepository_SaveAndGet(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := NewResultRepository(st.Storage)

		// Given: a saved match result
		result := newResult("abc123", "alice", "bob")
		require.NoError(t, repo.Save(ctx, result))

		// When: it is read back
		stored, err := repo.GetByID(ctx, result.ID)

		// Then: it matches what was saved
		require.NoError(t, err)
		assert.Equal(t, result, stored)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)
		repo := NewResultRepository(st.Storage)

		stored, err := repo.GetByID(ctx, "missing")

		require.ErrorIs(t, err, apperror.ErrResultNotFound)
		assert.Nil(t, stored)
	})
}

func TestResultRepository_Standing(t *testing.T) {
	ctx, st := suite.New(t)
	repo := NewResultRepository(st.Storage)

	// Given: alice won twice and lost once against bob
	require.NoError(t, repo.Save(ctx, newResult("m1", "alice", "bob")))
	require.NoError(t, repo.Save(ctx, newResult("m2", "bob", "alice")))
	require.NoError(t, repo.Save(ctx, newResult("m3", "alice", "bob")))

	// When: the standings are read
	alice, err := repo.Standing(ctx, "alice")
	require.NoError(t, err)
	bob, err := repo.Standing(ctx, "bob")
	require.NoError(t, err)
	nobody, err := repo.Standing(ctx, "carol")
	require.NoError(t, err)

	// Then: wins and losses are counted per player
	assert.Equal(t, Standing{Wins: 2, Losses: 1}, alice)
	assert.Equal(t, Standing{Wins: 1, Losses: 2}, bob)
	assert.Equal(t, Standing{}, nobody)
}

func TestResultRepository_Recent(t *testing.T) {
	ctx, st := suite.New(t)
	repo := NewResultRepository(st.Storage)

	// Given: more results than the recent list keeps
	for i := range recentMatchesCap + 5 {
		require.NoError(t, repo.Save(ctx, newResult(fmt.Sprintf("m%d", i), "alice", "bob")))
	}

	// When: the three newest are requested
	recent, err := repo.Recent(ctx, 3)

	// Then: they come newest first and the list is capped
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, "m104", recent[0].ID)
	assert.Equal(t, "m102", recent[2].ID)

	size, err := st.Storage.LLen(ctx, recentMatchesKey).Result()
	require.NoError(t, err)
	assert.Equal(t, int64(recentMatchesCap), size)

	empty, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
