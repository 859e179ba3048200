package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolService(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewPoolService(st)
	owner := seedUser(t, st, "76561198000000020", "owner")
	other := seedUser(t, st, "76561198000000021", "other")

	pool, err := svc.CreatePool(ctx, owner.ID, "friend-1", "friday night")
	require.NoError(t, err)
	require.NotEmpty(t, pool.ID)

	t.Run("listing shows the owner's pools only", func(t *testing.T) {
		pools, err := svc.ListPools(ctx, owner.ID)
		require.NoError(t, err)
		require.Len(t, pools, 1)

		none, err := svc.ListPools(ctx, other.ID)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("foreign pools look like missing pools", func(t *testing.T) {
		_, err := svc.GetOwnedPool(ctx, pool.ID, other.ID)
		require.ErrorIs(t, err, ErrPoolNotFound)

		_, err = svc.ListGames(ctx, pool.ID, other.ID)
		require.ErrorIs(t, err, ErrPoolNotFound)
	})

	t.Run("add game and list it back", func(t *testing.T) {
		res, err := svc.AddGame(ctx, pool.ID, owner.ID, AddGameInput{
			AppID:  620,
			Name:   "Portal 2",
			Tags:   "Co-op,Puzzle",
			Weight: 2,
		})
		require.NoError(t, err)
		require.False(t, res.Skipped)
		require.Equal(t, int64(620), res.Entry.Game.AppID)

		entries, err := svc.ListGames(ctx, pool.ID, owner.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, 2.0, entries[0].Weight)
	})

	t.Run("re-adding updates the weight", func(t *testing.T) {
		_, err := svc.AddGame(ctx, pool.ID, owner.ID, AddGameInput{AppID: 620, Name: "Portal 2", Weight: 5})
		require.NoError(t, err)

		entries, err := svc.ListGames(ctx, pool.ID, owner.ID)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, 5.0, entries[0].Weight)
	})

	t.Run("non-positive weight falls back to 1", func(t *testing.T) {
		res, err := svc.AddGame(ctx, pool.ID, owner.ID, AddGameInput{AppID: 105600, Name: "Terraria"})
		require.NoError(t, err)
		require.Equal(t, 1.0, res.Entry.Weight)
	})

	t.Run("blocked name is skipped, not stored", func(t *testing.T) {
		res, err := svc.AddGame(ctx, pool.ID, owner.ID, AddGameInput{AppID: 999, Name: "Hentai Puzzle Deluxe"})
		require.NoError(t, err)
		require.True(t, res.Skipped)
		require.Equal(t, "Hentai", res.Word)

		entries, err := svc.ListGames(ctx, pool.ID, owner.ID)
		require.NoError(t, err)
		for _, e := range entries {
			require.NotEqual(t, int64(999), e.Game.AppID)
		}
	})

	t.Run("innocent near-miss passes", func(t *testing.T) {
		res, err := svc.AddGame(ctx, pool.ID, owner.ID, AddGameInput{AppID: 268910, Name: "Cuphead Essex"})
		require.NoError(t, err)
		require.False(t, res.Skipped)
	})
}
