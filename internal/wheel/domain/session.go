package domain

import "time"

// Session models a stored login session. Only the SHA-256 fingerprint of the
// current refresh token is persisted; the raw token is handed to the client
// exactly once. A session is usable while revoked is false and the expiry has
// not passed. Rows are never hard-deleted, expiry makes stale rows inert.
type Session struct {
	ID               string
	UserID           string
	RefreshTokenHash string
	ExpiresAt        time.Time
	Revoked          bool
	LastUsedAt       time.Time
	CreatedAt        time.Time
}

// Credentials is the transport-level pair minted at login and on every
// rotation. RefreshToken is the raw secret; it is never stored and cannot be
// recovered once lost.
type Credentials struct {
	SessionID    string
	RefreshToken string
	ExpiresAt    time.Time
}
