package service

import (
	"context"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/pkg/idx"
)

// FriendService manages a user's saved co-op partners.
type FriendService struct {
	Store store.Store
}

func NewFriendService(st store.Store) *FriendService {
	return &FriendService{Store: st}
}

// List returns the user's friends, newest first.
func (s *FriendService) List(ctx context.Context, userID string) ([]domain.Friend, error) {
	return s.Store.Friends().ListFriends(ctx, userID)
}

// Upsert saves one friend for the user, refreshing the display name when the
// Steam id is already known.
func (s *FriendService) Upsert(ctx context.Context, userID, steamID, displayName string) error {
	now := time.Now()
	return s.Store.Friends().UpsertFriend(ctx, domain.Friend{
		ID:          idx.New().String(),
		UserID:      userID,
		SteamID:     steamID,
		DisplayName: displayName,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// FriendImport is one entry of a bulk friend import.
type FriendImport struct {
	SteamID     string
	DisplayName string
}

// BulkUpsert saves many friends in a single transaction so an interrupted
// import never leaves a partial list.
func (s *FriendService) BulkUpsert(ctx context.Context, userID string, friends []FriendImport) error {
	if len(friends) == 0 {
		return nil
	}

	now := time.Now()
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		for _, f := range friends {
			if f.SteamID == "" {
				continue
			}
			err := tx.Friends().UpsertFriend(ctx, domain.Friend{
				ID:          idx.New().String(),
				UserID:      userID,
				SteamID:     f.SteamID,
				DisplayName: f.DisplayName,
				CreatedAt:   now,
				UpdatedAt:   now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
