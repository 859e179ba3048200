package service

import (
	"context"
	"testing"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
	"github.com/coopwheel/coopwheel/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)
	user := seedUser(t, st, "76561197960287930", "alice")

	creds, err := svc.CreateSession(ctx, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, creds.SessionID)
	require.Len(t, creds.RefreshToken, 96)

	t.Run("session id validates without writes", func(t *testing.T) {
		before, err := st.Sessions().GetSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)

		v, err := svc.ValidateSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)
		require.True(t, v.OK())
		require.Equal(t, user.ID, v.User.ID)

		after, err := st.Sessions().GetSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})

	t.Run("refresh token round-trips", func(t *testing.T) {
		v, err := svc.ValidateRefreshToken(ctx, creds.RefreshToken)
		require.NoError(t, err)
		require.True(t, v.OK())
		require.Equal(t, creds.SessionID, v.Session.ID)
	})

	t.Run("only the fingerprint is stored", func(t *testing.T) {
		sess, err := st.Sessions().GetSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)
		require.NotEqual(t, creds.RefreshToken, sess.RefreshTokenHash)
		require.Len(t, sess.RefreshTokenHash, 64)
		require.Equal(t, cryptox.FingerprintToken(creds.RefreshToken), sess.RefreshTokenHash)
	})
}

func TestRotationInvalidatesOldToken(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)
	user := seedUser(t, st, "76561197960287931", "bob")

	creds, err := svc.CreateSession(ctx, user.ID)
	require.NoError(t, err)

	v, err := svc.ValidateRefreshToken(ctx, creds.RefreshToken)
	require.NoError(t, err)
	require.True(t, v.OK())

	next, err := svc.RotateRefreshToken(ctx, v.Session)
	require.NoError(t, err)
	require.Equal(t, creds.SessionID, next.SessionID)
	require.NotEqual(t, creds.RefreshToken, next.RefreshToken)

	t.Run("old token no longer resolves", func(t *testing.T) {
		v, err := svc.ValidateRefreshToken(ctx, creds.RefreshToken)
		require.NoError(t, err)
		require.False(t, v.OK())
		require.Equal(t, DenialNotFound, v.Denial)
	})

	t.Run("new token is live", func(t *testing.T) {
		v, err := svc.ValidateRefreshToken(ctx, next.RefreshToken)
		require.NoError(t, err)
		require.True(t, v.OK())
		require.Equal(t, creds.SessionID, v.Session.ID)
	})

	t.Run("session id unchanged across rotation", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)
		require.True(t, v.OK())
	})
}

func TestConcurrentRotationLastWriterWins(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)
	user := seedUser(t, st, "76561197960287932", "carol")

	creds, err := svc.CreateSession(ctx, user.ID)
	require.NoError(t, err)

	sess, err := st.Sessions().GetSessionByID(ctx, creds.SessionID)
	require.NoError(t, err)

	// Two racing refreshes both rotate from the same snapshot. Whoever
	// writes last holds the only live token.
	first, err := svc.RotateRefreshToken(ctx, sess)
	require.NoError(t, err)
	second, err := svc.RotateRefreshToken(ctx, sess)
	require.NoError(t, err)

	v, err := svc.ValidateRefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.False(t, v.OK())

	v, err = svc.ValidateRefreshToken(ctx, second.RefreshToken)
	require.NoError(t, err)
	require.True(t, v.OK())
}

func TestRevocation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)
	user := seedUser(t, st, "76561197960287933", "dave")

	creds, err := svc.CreateSession(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeSession(ctx, creds.SessionID))

	t.Run("session id rejected", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)
		require.Equal(t, DenialRevoked, v.Denial)
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		v, err := svc.ValidateRefreshToken(ctx, creds.RefreshToken)
		require.NoError(t, err)
		require.False(t, v.OK())
	})

	t.Run("revoke is idempotent", func(t *testing.T) {
		require.NoError(t, svc.RevokeSession(ctx, creds.SessionID))
		require.NoError(t, svc.RevokeSession(ctx, "no-such-session"))
		require.NoError(t, svc.RevokeSession(ctx, ""))
	})

	t.Run("revocation is permanent", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, creds.SessionID)
		require.NoError(t, err)
		require.Equal(t, DenialRevoked, v.Denial)
	})
}

func TestExpiryBoundary(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)
	user := seedUser(t, st, "76561197960287934", "erin")

	expired := domain.Session{
		ID:               "sess-expired",
		UserID:           user.ID,
		RefreshTokenHash: cryptox.FingerprintToken("expired-token"),
		ExpiresAt:        time.Now().Add(-time.Millisecond),
		LastUsedAt:       time.Now().Add(-time.Hour),
		CreatedAt:        time.Now().Add(-time.Hour),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, expired))

	live := domain.Session{
		ID:               "sess-live",
		UserID:           user.ID,
		RefreshTokenHash: cryptox.FingerprintToken("live-token"),
		ExpiresAt:        time.Now().Add(time.Minute),
		LastUsedAt:       time.Now(),
		CreatedAt:        time.Now(),
	}
	require.NoError(t, st.Sessions().CreateSession(ctx, live))

	t.Run("past expiry is rejected", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, expired.ID)
		require.NoError(t, err)
		require.Equal(t, DenialExpired, v.Denial)

		v, err = svc.ValidateRefreshToken(ctx, "expired-token")
		require.NoError(t, err)
		require.Equal(t, DenialExpired, v.Denial)
	})

	t.Run("future expiry is accepted", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, live.ID)
		require.NoError(t, err)
		require.True(t, v.OK())
	})
}

func TestValidationDenials(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)

	t.Run("missing credential", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, "")
		require.NoError(t, err)
		require.Equal(t, DenialNotPresented, v.Denial)

		v, err = svc.ValidateRefreshToken(ctx, "")
		require.NoError(t, err)
		require.Equal(t, DenialNotPresented, v.Denial)
	})

	t.Run("unknown credential", func(t *testing.T) {
		v, err := svc.ValidateSessionByID(ctx, "nope")
		require.NoError(t, err)
		require.Equal(t, DenialNotFound, v.Denial)

		v, err = svc.ValidateRefreshToken(ctx, "fabricated")
		require.NoError(t, err)
		require.Equal(t, DenialNotFound, v.Denial)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := newTestStore(t)
	svc := NewSessionService(st)
	user := seedUser(t, st, "76561197960287935", "frank")

	t.Run("valid session id skips rotation", func(t *testing.T) {
		creds, err := svc.CreateSession(ctx, user.ID)
		require.NoError(t, err)

		res, err := svc.Authenticate(ctx, creds.SessionID, creds.RefreshToken)
		require.NoError(t, err)
		require.True(t, res.Authenticated)
		require.False(t, res.Rotated)
		require.Equal(t, user.ID, res.User.ID)

		// Token survived because no rotation happened.
		v, err := svc.ValidateRefreshToken(ctx, creds.RefreshToken)
		require.NoError(t, err)
		require.True(t, v.OK())
	})

	t.Run("stale session id falls back to refresh and rotates", func(t *testing.T) {
		creds, err := svc.CreateSession(ctx, user.ID)
		require.NoError(t, err)

		res, err := svc.Authenticate(ctx, "", creds.RefreshToken)
		require.NoError(t, err)
		require.True(t, res.Authenticated)
		require.True(t, res.Rotated)
		require.Equal(t, creds.SessionID, res.Credentials.SessionID)
		require.NotEqual(t, creds.RefreshToken, res.Credentials.RefreshToken)

		v, err := svc.ValidateRefreshToken(ctx, creds.RefreshToken)
		require.NoError(t, err)
		require.False(t, v.OK())
	})

	t.Run("replayed token after refresh is denied", func(t *testing.T) {
		creds, err := svc.CreateSession(ctx, user.ID)
		require.NoError(t, err)

		res, err := svc.Authenticate(ctx, "", creds.RefreshToken)
		require.NoError(t, err)
		require.True(t, res.Authenticated)

		replay, err := svc.Authenticate(ctx, "", creds.RefreshToken)
		require.NoError(t, err)
		require.False(t, replay.Authenticated)
		require.Equal(t, DenialNotFound, replay.Denial)
	})

	t.Run("no credentials at all", func(t *testing.T) {
		res, err := svc.Authenticate(ctx, "", "")
		require.NoError(t, err)
		require.False(t, res.Authenticated)
		require.Equal(t, DenialNotPresented, res.Denial)
	})

	t.Run("revoked session denies both paths", func(t *testing.T) {
		creds, err := svc.CreateSession(ctx, user.ID)
		require.NoError(t, err)
		require.NoError(t, svc.RevokeSession(ctx, creds.SessionID))

		res, err := svc.Authenticate(ctx, creds.SessionID, creds.RefreshToken)
		require.NoError(t, err)
		require.False(t, res.Authenticated)
		require.Equal(t, DenialRevoked, res.Denial)
	})
}
