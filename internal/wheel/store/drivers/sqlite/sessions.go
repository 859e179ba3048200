package sqlite

import (
	"context"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

type sessionsRepo struct {
	q querier
}

const sessionColumns = `id, user_id, refresh_token_hash, expires_at, revoked, last_used_at, created_at`

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, refresh_token_hash, expires_at, revoked, last_used_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.RefreshTokenHash, s.ExpiresAt, s.Revoked, s.LastUsedAt, s.CreatedAt)
	return err
}

func (r *sessionsRepo) GetSessionByID(ctx context.Context, id string) (domain.Session, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

func (r *sessionsRepo) GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error) {
	// Revoked rows are excluded here so a stolen-then-revoked token can
	// never resolve to a session, matching the validation contract.
	row := r.q.QueryRowContext(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE refresh_token_hash = ? AND revoked = 0`, hash)
	return scanSession(row)
}

func (r *sessionsRepo) RotateSessionSecret(ctx context.Context, id, tokenHash string, expiresAt, lastUsedAt time.Time) error {
	// Single UPDATE: the old hash stops matching the moment this commits.
	_, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET refresh_token_hash = ?, expires_at = ?, last_used_at = ? WHERE id = ?`,
		tokenHash, expiresAt, lastUsedAt, id)
	return err
}

func (r *sessionsRepo) RevokeSession(ctx context.Context, id string) error {
	// Matching zero rows is fine; revoke is idempotent.
	_, err := r.q.ExecContext(ctx,
		`UPDATE sessions SET revoked = 1 WHERE id = ?`, id)
	return err
}

func scanSession(row rowScanner) (domain.Session, error) {
	var s domain.Session
	err := row.Scan(&s.ID, &s.UserID, &s.RefreshTokenHash, &s.ExpiresAt, &s.Revoked, &s.LastUsedAt, &s.CreatedAt)
	if err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return s, nil
}
