package service

import (
	"context"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
)

const (
	leaderboardPickerLimit = 10
	leaderboardGameLimit   = 8
	recommendedGameLimit   = 12
)

// Leaderboard is the site-wide pick tally.
type Leaderboard struct {
	TopPickers []domain.PickerTally `json:"topPickers"`
	TopGames   []domain.GameTally   `json:"topGames"`
}

// StatsService aggregates pick history across all pools.
type StatsService struct {
	Store store.Store
}

func NewStatsService(st store.Store) *StatsService {
	return &StatsService{Store: st}
}

// Leaderboard returns the most active pickers and most-picked games.
func (s *StatsService) Leaderboard(ctx context.Context) (Leaderboard, error) {
	pickers, err := s.Store.Picks().TopPickers(ctx, leaderboardPickerLimit)
	if err != nil {
		return Leaderboard{}, err
	}
	games, err := s.Store.Picks().TopGames(ctx, leaderboardGameLimit)
	if err != nil {
		return Leaderboard{}, err
	}
	return Leaderboard{TopPickers: pickers, TopGames: games}, nil
}

// RecommendedGames returns the most-picked games overall, for the
// recommendations feed.
func (s *StatsService) RecommendedGames(ctx context.Context) ([]domain.GameTally, error) {
	return s.Store.Picks().TopGames(ctx, recommendedGameLimit)
}
