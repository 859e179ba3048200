package service

import (
	"context"
	"errors"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/pkg/idx"
)

// UserService manages the account records behind Steam identities.
type UserService struct {
	Store store.Store
}

func NewUserService(st store.Store) *UserService {
	return &UserService{Store: st}
}

// UpsertBySteamID returns the user owning the Steam identity, creating the
// account on first login. Non-empty profile fields refresh the stored record
// so a renamed Steam account shows its current name; empty fields leave the
// stored profile untouched, since callers without Web API access log users in
// with no profile data at all.
func (s *UserService) UpsertBySteamID(ctx context.Context, steamID, displayName, avatarURL string) (domain.User, error) {
	now := time.Now()

	existing, err := s.Store.Users().GetUserBySteamID(ctx, steamID)
	switch {
	case err == nil:
		name := existing.DisplayName
		avatar := existing.AvatarURL
		if displayName != "" {
			name = displayName
		}
		if avatarURL != "" {
			avatar = avatarURL
		}
		if name != existing.DisplayName || avatar != existing.AvatarURL {
			if err := s.Store.Users().UpdateUserProfile(ctx, existing.ID, name, avatar); err != nil {
				return domain.User{}, err
			}
			existing.DisplayName = name
			existing.AvatarURL = avatar
			existing.UpdatedAt = now
		}
		return existing, nil
	case errors.Is(err, store.ErrNotFound):
		u := domain.User{
			ID:          idx.New().String(),
			SteamID:     steamID,
			DisplayName: displayName,
			AvatarURL:   avatarURL,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := s.Store.Users().CreateUser(ctx, u); err != nil {
			return domain.User{}, err
		}
		return u, nil
	default:
		return domain.User{}, err
	}
}

// GetUserByID returns the user record by id.
func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}
