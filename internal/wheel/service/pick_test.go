package service

import (
	"context"
	"testing"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/stretchr/testify/require"
)

func TestPickWeighted(t *testing.T) {
	t.Parallel()

	entries := []domain.PoolEntry{
		{Game: domain.Game{ID: "a"}, Weight: 1},
		{Game: domain.Game{ID: "b"}, Weight: 3},
	}

	t.Run("roll lands in proportion to weight", func(t *testing.T) {
		e, err := pickWeighted(entries, 0.0)
		require.NoError(t, err)
		require.Equal(t, "a", e.Game.ID)

		e, err = pickWeighted(entries, 0.24)
		require.NoError(t, err)
		require.Equal(t, "a", e.Game.ID)

		e, err = pickWeighted(entries, 0.25)
		require.NoError(t, err)
		require.Equal(t, "b", e.Game.ID)

		e, err = pickWeighted(entries, 0.99)
		require.NoError(t, err)
		require.Equal(t, "b", e.Game.ID)
	})

	t.Run("zero weight counts as one", func(t *testing.T) {
		weird := []domain.PoolEntry{
			{Game: domain.Game{ID: "x"}, Weight: 0},
			{Game: domain.Game{ID: "y"}, Weight: 0},
		}
		e, err := pickWeighted(weird, 0.6)
		require.NoError(t, err)
		require.Equal(t, "y", e.Game.ID)
	})

	t.Run("empty pool errors", func(t *testing.T) {
		_, err := pickWeighted(nil, 0.5)
		require.ErrorIs(t, err, ErrEmptyPool)
	})
}

func TestPickService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	pools := NewPoolService(st)
	picks := NewPickService(st)
	user := seedUser(t, st, "76561198000000030", "picker")

	pool, err := pools.CreatePool(ctx, user.ID, "friend-1", "weekend")
	require.NoError(t, err)

	t.Run("empty pool cannot be picked from", func(t *testing.T) {
		_, err := picks.Pick(ctx, pool.ID, user.ID, PickModePure, 0)
		require.ErrorIs(t, err, ErrEmptyPool)
	})

	_, err = pools.AddGame(ctx, pool.ID, user.ID, AddGameInput{AppID: 620, Name: "Portal 2"})
	require.NoError(t, err)
	_, err = pools.AddGame(ctx, pool.ID, user.ID, AddGameInput{AppID: 105600, Name: "Terraria"})
	require.NoError(t, err)

	t.Run("pure pick records history", func(t *testing.T) {
		entry, err := picks.Pick(ctx, pool.ID, user.ID, PickModePure, 0)
		require.NoError(t, err)
		require.NotEmpty(t, entry.Game.ID)

		recent, err := picks.RecentPicks(ctx, pool.ID, 10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		require.Equal(t, entry.Game.AppID, recent[0].Game.AppID)
	})

	t.Run("avoid mode skips the last pick", func(t *testing.T) {
		last, err := picks.RecentPicks(ctx, pool.ID, 1)
		require.NoError(t, err)
		require.Len(t, last, 1)

		// With two games and one avoided, the draw is deterministic.
		for range 5 {
			entry, err := picks.Pick(ctx, pool.ID, user.ID, PickModeAvoid, 1)
			require.NoError(t, err)
			require.NotEqual(t, last[0].Game.AppID, entry.Game.AppID)

			last, err = picks.RecentPicks(ctx, pool.ID, 1)
			require.NoError(t, err)
			require.Len(t, last, 1)
		}
	})

	t.Run("avoid with zero count is a pure pick", func(t *testing.T) {
		p2, err := pools.CreatePool(ctx, user.ID, "friend-2", "zero avoid")
		require.NoError(t, err)
		for _, g := range []AddGameInput{
			{AppID: 400, Name: "Portal"},
			{AppID: 620, Name: "Portal 2"},
			{AppID: 105600, Name: "Terraria"},
			{AppID: 413150, Name: "Stardew Valley"},
		} {
			_, err := pools.AddGame(ctx, p2.ID, user.ID, g)
			require.NoError(t, err)
		}

		// With no exclusion the same game can land twice in a row, which an
		// implicit avoid window would forbid.
		var prev int64
		repeated := false
		for range 100 {
			entry, err := picks.Pick(ctx, p2.ID, user.ID, PickModeAvoid, 0)
			require.NoError(t, err)
			if entry.Game.AppID == prev {
				repeated = true
				break
			}
			prev = entry.Game.AppID
		}
		require.True(t, repeated)
	})

	t.Run("avoid falls back to the full pool rather than starve", func(t *testing.T) {
		entry, err := picks.Pick(ctx, pool.ID, user.ID, PickModeAvoid, 10)
		require.NoError(t, err)
		require.NotEmpty(t, entry.Game.ID)
	})

	t.Run("recent picks limit handling", func(t *testing.T) {
		none, err := picks.RecentPicks(ctx, pool.ID, 0)
		require.NoError(t, err)
		require.Empty(t, none)

		capped, err := picks.RecentPicks(ctx, pool.ID, 1000)
		require.NoError(t, err)
		require.LessOrEqual(t, len(capped), MaxRecentPicks)
	})
}

func TestStatsService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	pools := NewPoolService(st)
	picks := NewPickService(st)
	stats := NewStatsService(st)
	alice := seedUser(t, st, "76561198000000040", "alice")
	bob := seedUser(t, st, "76561198000000041", "bob")

	pool, err := pools.CreatePool(ctx, alice.ID, "friend-1", "stats pool")
	require.NoError(t, err)
	_, err = pools.AddGame(ctx, pool.ID, alice.ID, AddGameInput{AppID: 620, Name: "Portal 2"})
	require.NoError(t, err)

	for range 3 {
		_, err := picks.Pick(ctx, pool.ID, alice.ID, PickModePure, 0)
		require.NoError(t, err)
	}
	_, err = picks.Pick(ctx, pool.ID, bob.ID, PickModePure, 0)
	require.NoError(t, err)

	t.Run("leaderboard orders pickers by volume", func(t *testing.T) {
		lb, err := stats.Leaderboard(ctx)
		require.NoError(t, err)
		require.Len(t, lb.TopPickers, 2)
		require.Equal(t, "alice", lb.TopPickers[0].Name)
		require.Equal(t, int64(3), lb.TopPickers[0].Picks)

		require.Len(t, lb.TopGames, 1)
		require.Equal(t, int64(620), lb.TopGames[0].AppID)
		require.Equal(t, int64(4), lb.TopGames[0].Picks)
	})

	t.Run("recommendations surface picked games", func(t *testing.T) {
		games, err := stats.RecommendedGames(ctx)
		require.NoError(t, err)
		require.Len(t, games, 1)
		require.Equal(t, "Portal 2", games[0].Name)
	})
}
