package sqlite

import (
	"context"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

type gamesRepo struct {
	q querier
}

func (r *gamesRepo) GetGameByID(ctx context.Context, id string) (domain.Game, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT id, app_id, name, store_url, tags, created_at FROM games WHERE id = ?`, id)

	var g domain.Game
	if err := row.Scan(&g.ID, &g.AppID, &g.Name, &g.StoreURL, &g.Tags, &g.CreatedAt); err != nil {
		return domain.Game{}, mapNotFound(err)
	}
	return g, nil
}

func (r *gamesRepo) UpsertGameByAppID(ctx context.Context, g domain.Game) (domain.Game, error) {
	// Keep the first-seen metadata on conflict, matching "create if missing".
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO games (id, app_id, name, store_url, tags, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (app_id) DO NOTHING`,
		g.ID, g.AppID, g.Name, g.StoreURL, g.Tags, g.CreatedAt)
	if err != nil {
		return domain.Game{}, err
	}

	row := r.q.QueryRowContext(ctx,
		`SELECT id, app_id, name, store_url, tags, created_at FROM games WHERE app_id = ?`, g.AppID)

	var stored domain.Game
	if err := row.Scan(&stored.ID, &stored.AppID, &stored.Name, &stored.StoreURL, &stored.Tags, &stored.CreatedAt); err != nil {
		return domain.Game{}, mapNotFound(err)
	}
	return stored, nil
}

func (r *gamesRepo) UpsertPoolGame(ctx context.Context, pg domain.PoolGame) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO pool_games (pool_id, game_id, weight, tags, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (pool_id, game_id)
		 DO UPDATE SET weight = excluded.weight, tags = excluded.tags, updated_at = excluded.updated_at`,
		pg.PoolID, pg.GameID, pg.Weight, pg.Tags, pg.CreatedAt, pg.UpdatedAt)
	return err
}

func (r *gamesRepo) ListPoolGames(ctx context.Context, poolID string) ([]domain.PoolEntry, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT g.id, g.app_id, g.name, g.store_url, g.tags, g.created_at, pg.weight, pg.tags
		 FROM pool_games pg
		 JOIN games g ON g.id = pg.game_id
		 WHERE pg.pool_id = ?
		 ORDER BY pg.created_at ASC`, poolID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PoolEntry
	for rows.Next() {
		var e domain.PoolEntry
		if err := rows.Scan(
			&e.Game.ID, &e.Game.AppID, &e.Game.Name, &e.Game.StoreURL, &e.Game.Tags, &e.Game.CreatedAt,
			&e.Weight, &e.Tags,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
