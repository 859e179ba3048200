package sqlite

import (
	"context"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

type friendsRepo struct {
	q querier
}

func (r *friendsRepo) ListFriends(ctx context.Context, userID string) ([]domain.Friend, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, user_id, steam_id, display_name, created_at, updated_at
		 FROM friends WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Friend
	for rows.Next() {
		var f domain.Friend
		if err := rows.Scan(&f.ID, &f.UserID, &f.SteamID, &f.DisplayName, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *friendsRepo) UpsertFriend(ctx context.Context, f domain.Friend) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO friends (id, user_id, steam_id, display_name, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, steam_id)
		 DO UPDATE SET display_name = excluded.display_name, updated_at = excluded.updated_at`,
		f.ID, f.UserID, f.SteamID, f.DisplayName, f.CreatedAt, f.UpdatedAt)
	return err
}
