package sqlite

import (
	"context"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

type picksRepo struct {
	q querier
}

func (r *picksRepo) CreatePick(ctx context.Context, p domain.Pick) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO pick_history (id, user_id, pool_id, game_id, picked_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.PoolID, p.GameID, p.PickedAt)
	return err
}

func (r *picksRepo) ListRecentPickGameIDs(ctx context.Context, poolID string, limit int) ([]string, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT game_id FROM pick_history WHERE pool_id = ? ORDER BY picked_at DESC, id DESC LIMIT ?`,
		poolID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func (r *picksRepo) TopGames(ctx context.Context, limit int) ([]domain.GameTally, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT g.app_id, g.name, COUNT(p.id) AS picks
		 FROM pick_history p
		 JOIN games g ON g.id = p.game_id
		 GROUP BY p.game_id
		 ORDER BY picks DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GameTally
	for rows.Next() {
		var t domain.GameTally
		if err := rows.Scan(&t.AppID, &t.Name, &t.Picks); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *picksRepo) TopPickers(ctx context.Context, limit int) ([]domain.PickerTally, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT p.user_id, COALESCE(u.display_name, ''), COALESCE(u.steam_id, ''), COUNT(p.id) AS picks
		 FROM pick_history p
		 LEFT JOIN users u ON u.id = p.user_id
		 GROUP BY p.user_id
		 ORDER BY picks DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PickerTally
	for rows.Next() {
		var t domain.PickerTally
		var displayName, steamID string
		if err := rows.Scan(&t.UserID, &displayName, &steamID, &t.Picks); err != nil {
			return nil, err
		}
		switch {
		case displayName != "":
			t.Name = displayName
		case steamID != "":
			t.Name = steamID
		default:
			t.Name = "Unknown"
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
