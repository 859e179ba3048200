package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/internal/wheel/store"
	"github.com/coopwheel/coopwheel/pkg/cryptox"
	"github.com/coopwheel/coopwheel/pkg/idx"
	"github.com/coopwheel/coopwheel/pkg/slogx"
)

const (
	// DefaultSessionTTL is how long a session cookie stays valid between
	// refreshes.
	DefaultSessionTTL = time.Hour

	// DefaultRefreshTTL is how long a refresh token stays usable. Each
	// rotation extends the session by this much.
	DefaultRefreshTTL = 30 * 24 * time.Hour
)

// Denial explains why a session check failed. Every rejection path carries a
// distinct reason so callers can log precisely while the HTTP layer collapses
// them all into an anonymous response.
type Denial int

const (
	DenialNone Denial = iota

	// DenialNotPresented means the client sent no credential at all.
	DenialNotPresented

	// DenialNotFound means no session row matched the presented credential.
	// A rotated-away or fabricated refresh token lands here too, since the
	// old fingerprint no longer matches any row.
	DenialNotFound

	// DenialRevoked means the session exists but was explicitly revoked.
	DenialRevoked

	// DenialExpired means the session's expiry has passed.
	DenialExpired

	// DenialOrphaned means the session resolved but its user row is gone.
	DenialOrphaned
)

func (d Denial) String() string {
	switch d {
	case DenialNone:
		return "none"
	case DenialNotPresented:
		return "not_presented"
	case DenialNotFound:
		return "not_found"
	case DenialRevoked:
		return "revoked"
	case DenialExpired:
		return "expired"
	case DenialOrphaned:
		return "orphaned"
	default:
		return "unknown"
	}
}

// SessionValidation is the outcome of checking a single credential. When
// Denial is DenialNone the Session and User fields are populated.
type SessionValidation struct {
	Session domain.Session
	User    domain.User
	Denial  Denial
}

// OK reports whether the credential was accepted.
func (v SessionValidation) OK() bool { return v.Denial == DenialNone }

// AuthResult is the outcome of the full login check. When the session cookie
// was stale but the refresh token was good, Rotated is true and Credentials
// carries the replacement pair the transport must hand back to the client.
type AuthResult struct {
	Authenticated bool
	User          domain.User
	Session       domain.Session
	Rotated       bool
	Credentials   domain.Credentials
	Denial        Denial
}

// SessionService owns the login-session lifecycle: minting sessions at login,
// validating the two cookie credentials, rotating refresh tokens, and
// revocation. Only SHA-256 fingerprints of refresh tokens ever touch the
// database.
type SessionService struct {
	Store      store.Store
	SessionTTL time.Duration
	RefreshTTL time.Duration
}

func NewSessionService(st store.Store) *SessionService {
	return &SessionService{
		Store:      st,
		SessionTTL: DefaultSessionTTL,
		RefreshTTL: DefaultRefreshTTL,
	}
}

// CreateSession mints a new session for the user and returns the one-shot
// credential pair. The raw refresh token exists only in the returned value;
// the store keeps its fingerprint.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (domain.Credentials, error) {
	now := time.Now()

	token, err := cryptox.GenerateToken(cryptox.TokenSize384)
	if err != nil {
		return domain.Credentials{}, err
	}

	sess := domain.Session{
		ID:               idx.New().String(),
		UserID:           userID,
		RefreshTokenHash: cryptox.FingerprintToken(token),
		ExpiresAt:        now.Add(s.RefreshTTL),
		Revoked:          false,
		LastUsedAt:       now,
		CreatedAt:        now,
	}

	if err := s.Store.Sessions().CreateSession(ctx, sess); err != nil {
		return domain.Credentials{}, err
	}

	return domain.Credentials{
		SessionID:    sess.ID,
		RefreshToken: token,
		ExpiresAt:    sess.ExpiresAt,
	}, nil
}

// ValidateSessionByID checks a session-id credential. It performs no writes;
// this is the fast path taken on every authenticated request.
func (s *SessionService) ValidateSessionByID(ctx context.Context, sessionID string) (SessionValidation, error) {
	if sessionID == "" {
		return SessionValidation{Denial: DenialNotPresented}, nil
	}

	sess, err := s.Store.Sessions().GetSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SessionValidation{Denial: DenialNotFound}, nil
		}
		return SessionValidation{}, err
	}

	return s.checkSession(ctx, sess)
}

// ValidateRefreshToken checks a raw refresh token by fingerprint lookup. The
// store query already filters revoked rows, so a replayed pre-rotation or
// pre-revocation token resolves to nothing.
func (s *SessionService) ValidateRefreshToken(ctx context.Context, token string) (SessionValidation, error) {
	if token == "" {
		return SessionValidation{Denial: DenialNotPresented}, nil
	}

	hash := cryptox.FingerprintToken(token)
	sess, err := s.Store.Sessions().GetSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SessionValidation{Denial: DenialNotFound}, nil
		}
		return SessionValidation{}, err
	}

	return s.checkSession(ctx, sess)
}

func (s *SessionService) checkSession(ctx context.Context, sess domain.Session) (SessionValidation, error) {
	now := time.Now()

	if sess.Revoked {
		return SessionValidation{Session: sess, Denial: DenialRevoked}, nil
	}
	if !now.Before(sess.ExpiresAt) {
		return SessionValidation{Session: sess, Denial: DenialExpired}, nil
	}

	user, err := s.Store.Users().GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return SessionValidation{Session: sess, Denial: DenialOrphaned}, nil
		}
		return SessionValidation{}, err
	}

	return SessionValidation{Session: sess, User: user, Denial: DenialNone}, nil
}

// RotateRefreshToken replaces the session's refresh token with a fresh one
// and extends the expiry. The old token stops matching the moment the single
// UPDATE lands; the session id is unchanged. Under concurrent rotation of the
// same session the last writer wins and earlier tokens are dead.
func (s *SessionService) RotateRefreshToken(ctx context.Context, sess domain.Session) (domain.Credentials, error) {
	now := time.Now()

	token, err := cryptox.GenerateToken(cryptox.TokenSize384)
	if err != nil {
		return domain.Credentials{}, err
	}
	hash := cryptox.FingerprintToken(token)
	expiresAt := now.Add(s.RefreshTTL)

	if err := s.Store.Sessions().RotateSessionSecret(ctx, sess.ID, hash, expiresAt, now); err != nil {
		return domain.Credentials{}, err
	}

	return domain.Credentials{
		SessionID:    sess.ID,
		RefreshToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

// RevokeSession marks the session unusable. Empty ids and unknown ids are
// no-ops; revocation is idempotent and permanent.
func (s *SessionService) RevokeSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.Store.Sessions().RevokeSession(ctx, sessionID)
}

// Authenticate runs the full request-time check: try the session id first,
// and when that fails fall back to the refresh token, rotating it on success.
// The refresh fallback is what makes an expired short-lived cookie invisible
// to the user.
func (s *SessionService) Authenticate(ctx context.Context, sessionID, refreshToken string) (AuthResult, error) {
	l := slogx.FromContext(ctx)

	v, err := s.ValidateSessionByID(ctx, sessionID)
	if err != nil {
		return AuthResult{}, err
	}
	if v.OK() {
		return AuthResult{
			Authenticated: true,
			User:          v.User,
			Session:       v.Session,
		}, nil
	}

	rv, err := s.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return AuthResult{}, err
	}
	if !rv.OK() {
		denial := moreSpecificDenial(v.Denial, rv.Denial)
		l.Debug("authentication denied",
			slog.String("session_denial", v.Denial.String()),
			slog.String("refresh_denial", rv.Denial.String()),
		)
		return AuthResult{Denial: denial}, nil
	}

	creds, err := s.RotateRefreshToken(ctx, rv.Session)
	if err != nil {
		return AuthResult{}, err
	}

	l.Debug("session refreshed", slog.String("session_id", rv.Session.ID))

	return AuthResult{
		Authenticated: true,
		User:          rv.User,
		Session:       rv.Session,
		Rotated:       true,
		Credentials:   creds,
	}, nil
}

// moreSpecificDenial picks the reason that says most about what went wrong.
// A revoked session id alongside a filtered-out refresh token should report
// revoked, not not-found; the refresh query cannot tell the two apart.
func moreSpecificDenial(a, b Denial) Denial {
	rank := func(d Denial) int {
		switch d {
		case DenialRevoked:
			return 4
		case DenialExpired:
			return 3
		case DenialOrphaned:
			return 2
		case DenialNotFound:
			return 1
		default:
			return 0
		}
	}
	if rank(a) > rank(b) {
		return a
	}
	return b
}
