package service

import (
	"context"
	"errors"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/pkg/idx"
	"github.com/coopwheel/coopwheel/pkg/wordfilter"
)

var (
	ErrPoolNotFound = errors.New("pool_not_found")
)

// PoolService manages shared game pools and their membership.
type PoolService struct {
	Store  store.Store
	Filter *wordfilter.Filter
}

func NewPoolService(st store.Store) *PoolService {
	return &PoolService{
		Store:  st,
		Filter: wordfilter.New(wordfilter.DefaultWords),
	}
}

// CreatePool creates a pool shared between the owner and one friend.
func (s *PoolService) CreatePool(ctx context.Context, ownerID, friendID, name string) (domain.Pool, error) {
	p := domain.Pool{
		ID:        idx.New().String(),
		OwnerID:   ownerID,
		FriendID:  friendID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.Store.Pools().CreatePool(ctx, p); err != nil {
		return domain.Pool{}, err
	}
	return p, nil
}

// ListPools returns the owner's pools, newest first.
func (s *PoolService) ListPools(ctx context.Context, ownerID string) ([]domain.Pool, error) {
	return s.Store.Pools().ListPoolsByOwner(ctx, ownerID)
}

// GetOwnedPool returns the pool only when ownerID owns it. Pools belonging to
// someone else look identical to pools that do not exist.
func (s *PoolService) GetOwnedPool(ctx context.Context, poolID, ownerID string) (domain.Pool, error) {
	p, err := s.Store.Pools().GetOwnedPool(ctx, poolID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Pool{}, ErrPoolNotFound
		}
		return domain.Pool{}, err
	}
	return p, nil
}

// AddGameInput describes a game to add to a pool.
type AddGameInput struct {
	AppID    int64
	Name     string
	StoreURL string
	Tags     string
	Weight   float64
}

// AddGameResult reports what happened to one add. A game whose name trips the
// forbidden-word filter is skipped rather than rejected, so bulk imports from
// a Steam library keep going.
type AddGameResult struct {
	Skipped bool
	Word    string
	Entry   domain.PoolEntry
}

// AddGame upserts the game by Steam app id and attaches it to the pool with
// the given weight. Weights at or below zero fall back to 1.
func (s *PoolService) AddGame(ctx context.Context, poolID, ownerID string, in AddGameInput) (AddGameResult, error) {
	if _, err := s.GetOwnedPool(ctx, poolID, ownerID); err != nil {
		return AddGameResult{}, err
	}

	if word, matched := s.Filter.Match(in.Name); matched {
		return AddGameResult{Skipped: true, Word: word}, nil
	}

	weight := in.Weight
	if weight <= 0 {
		weight = 1
	}

	now := time.Now()
	game, err := s.Store.Games().UpsertGameByAppID(ctx, domain.Game{
		ID:        idx.New().String(),
		AppID:     in.AppID,
		Name:      in.Name,
		StoreURL:  in.StoreURL,
		Tags:      in.Tags,
		CreatedAt: now,
	})
	if err != nil {
		return AddGameResult{}, err
	}

	pg := domain.PoolGame{
		PoolID:    poolID,
		GameID:    game.ID,
		Weight:    weight,
		Tags:      in.Tags,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Games().UpsertPoolGame(ctx, pg); err != nil {
		return AddGameResult{}, err
	}

	return AddGameResult{
		Entry: domain.PoolEntry{Game: game, Weight: weight, Tags: in.Tags},
	}, nil
}

// ListGames returns the pool's entries with weights, oldest first.
func (s *PoolService) ListGames(ctx context.Context, poolID, ownerID string) ([]domain.PoolEntry, error) {
	if _, err := s.GetOwnedPool(ctx, poolID, ownerID); err != nil {
		return nil, err
	}
	return s.Store.Games().ListPoolGames(ctx, poolID)
}
