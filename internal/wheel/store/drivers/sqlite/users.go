package sqlite

import (
	"context"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

type usersRepo struct {
	q querier
}

const userColumns = `id, steam_id, display_name, avatar_url, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserBySteamID(ctx context.Context, steamID string) (domain.User, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE steam_id = ?`, steamID)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO users (id, steam_id, display_name, avatar_url, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.SteamID, u.DisplayName, u.AvatarURL, u.CreatedAt, u.UpdatedAt)
	return err
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, userID, displayName, avatarURL string) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE users SET display_name = ?, avatar_url = ?, updated_at = ? WHERE id = ?`,
		displayName, avatarURL, time.Now().UTC(), userID)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.SteamID, &u.DisplayName, &u.AvatarURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}
