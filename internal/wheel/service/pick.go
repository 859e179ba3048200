package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/pkg/idx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

var (
	ErrEmptyPool = errors.New("empty_pool")
)

const (
	// PickModePure samples over every game in the pool.
	PickModePure = "pure"

	// PickModeAvoid excludes the most recently picked games first. The
	// exclusion count comes from the caller; zero or less means no exclusion.
	PickModeAvoid = "avoid"

	// MaxRecentPicks caps how much history a single listing can request.
	MaxRecentPicks = 50
)

// PickService runs the weighted draw and keeps the pick history.
type PickService struct {
	Store store.Store
}

func NewPickService(st store.Store) *PickService {
	return &PickService{Store: st}
}

// Pick draws one game from the pool, weighted by each entry's weight. In
// avoid mode the last avoidCount picked games are excluded, unless doing so
// would leave nothing to draw from, in which case the full pool is used. A
// non-positive avoidCount means avoid mode degrades to a pure pick. The draw
// is recorded in pick history.
func (s *PickService) Pick(ctx context.Context, poolID, userID, mode string, avoidCount int) (domain.PoolEntry, error) {
	l := slogx.FromContext(ctx)

	entries, err := s.Store.Games().ListPoolGames(ctx, poolID)
	if err != nil {
		return domain.PoolEntry{}, err
	}
	if len(entries) == 0 {
		return domain.PoolEntry{}, ErrEmptyPool
	}

	if mode == PickModeAvoid && avoidCount > 0 {
		recent, err := s.Store.Picks().ListRecentPickGameIDs(ctx, poolID, avoidCount)
		if err != nil {
			return domain.PoolEntry{}, err
		}
		if filtered := excludeGames(entries, recent); len(filtered) > 0 {
			entries = filtered
		}
	}

	entry, err := pickWeighted(entries, rand.Float64())
	if err != nil {
		return domain.PoolEntry{}, err
	}

	pick := domain.Pick{
		ID:       idx.New().String(),
		UserID:   userID,
		PoolID:   poolID,
		GameID:   entry.Game.ID,
		PickedAt: time.Now(),
	}
	if err := s.Store.Picks().CreatePick(ctx, pick); err != nil {
		return domain.PoolEntry{}, err
	}

	l.Debug("pick recorded",
		slog.String("pool_id", poolID),
		slog.Int64("app_id", entry.Game.AppID),
	)

	return entry, nil
}

// RecentPicks returns the pool's latest picked games, newest first. The limit
// is capped at MaxRecentPicks; zero or negative limits return nothing.
func (s *PickService) RecentPicks(ctx context.Context, poolID string, limit int) ([]domain.PoolEntry, error) {
	if limit <= 0 {
		return nil, nil
	}
	if limit > MaxRecentPicks {
		limit = MaxRecentPicks
	}

	ids, err := s.Store.Picks().ListRecentPickGameIDs(ctx, poolID, limit)
	if err != nil {
		return nil, err
	}

	out := make([]domain.PoolEntry, 0, len(ids))
	for _, id := range ids {
		g, err := s.Store.Games().GetGameByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		out = append(out, domain.PoolEntry{Game: g, Weight: 1})
	}
	return out, nil
}

// excludeGames drops entries whose game id appears in exclude.
func excludeGames(entries []domain.PoolEntry, exclude []string) []domain.PoolEntry {
	skip := make(map[string]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}
	var out []domain.PoolEntry
	for _, e := range entries {
		if _, ok := skip[e.Game.ID]; ok {
			continue
		}
		out = append(out, e)
	}
	return out
}

// pickWeighted selects an entry given a roll in [0, 1). Entries with
// non-positive weight count as weight 1 so a bad row can never wedge a pool.
func pickWeighted(entries []domain.PoolEntry, roll float64) (domain.PoolEntry, error) {
	if len(entries) == 0 {
		return domain.PoolEntry{}, ErrEmptyPool
	}

	var total float64
	for _, e := range entries {
		total += effectiveWeight(e.Weight)
	}

	target := roll * total
	var cursor float64
	for _, e := range entries {
		cursor += effectiveWeight(e.Weight)
		if target < cursor {
			return e, nil
		}
	}

	// Floating point can leave target == total; hand back the last entry.
	return entries[len(entries)-1], nil
}

func effectiveWeight(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
