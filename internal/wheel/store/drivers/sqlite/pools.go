package sqlite

import (
	"context"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

type poolsRepo struct {
	q querier
}

const poolColumns = `id, owner_id, friend_id, name, created_at`

func (r *poolsRepo) CreatePool(ctx context.Context, p domain.Pool) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO pools (id, owner_id, friend_id, name, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		p.ID, p.OwnerID, p.FriendID, p.Name, p.CreatedAt)
	return err
}

func (r *poolsRepo) GetPoolByID(ctx context.Context, id string) (domain.Pool, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+poolColumns+` FROM pools WHERE id = ?`, id)
	return scanPool(row)
}

func (r *poolsRepo) GetOwnedPool(ctx context.Context, id, ownerID string) (domain.Pool, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+poolColumns+` FROM pools WHERE id = ? AND owner_id = ?`, id, ownerID)
	return scanPool(row)
}

func (r *poolsRepo) ListPoolsByOwner(ctx context.Context, ownerID string) ([]domain.Pool, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+poolColumns+` FROM pools WHERE owner_id = ? ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Pool
	for rows.Next() {
		var p domain.Pool
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.FriendID, &p.Name, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPool(row rowScanner) (domain.Pool, error) {
	var p domain.Pool
	err := row.Scan(&p.ID, &p.OwnerID, &p.FriendID, &p.Name, &p.CreatedAt)
	if err != nil {
		return domain.Pool{}, mapNotFound(err)
	}
	return p, nil
}
