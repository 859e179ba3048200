package store

import (
	"context"
	"errors"
	"time"

	"github.com/coopwheel/coopwheel/internal/wheel/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable; services receive the interface so tests can run against a
// throwaway database instead of patching package state.
type Store interface {
	Users() Users
	Sessions() Sessions
	Friends() Friends
	Pools() Pools
	Games() Games
	Picks() Picks

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserBySteamID returns the user owning the given Steam identity.
	GetUserBySteamID(ctx context.Context, steamID string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateUserProfile sets display_name and avatar_url and bumps updated_at.
	UpdateUserProfile(ctx context.Context, userID, displayName, avatarURL string) error
}

type Sessions interface {
	// CreateSession inserts a new session row.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID returns a session regardless of its revoked/expired
	// state; callers decide usability.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// GetSessionByTokenHash returns the non-revoked session holding the given
	// refresh-token fingerprint. Revoked rows are filtered in the query so a
	// replayed pre-revocation token cannot resolve.
	GetSessionByTokenHash(ctx context.Context, hash string) (domain.Session, error)

	// RotateSessionSecret replaces the refresh-token hash, expiry and
	// last-used timestamp in a single UPDATE. This is the only write the
	// rotation path performs, which is what makes rotation atomic per row.
	RotateSessionSecret(ctx context.Context, id, tokenHash string, expiresAt, lastUsedAt time.Time) error

	// RevokeSession flips revoked on all rows matching id. Unknown ids are
	// not an error; the operation is idempotent.
	RevokeSession(ctx context.Context, id string) error
}

type Friends interface {
	// ListFriends returns the user's friends newest-first.
	ListFriends(ctx context.Context, userID string) ([]domain.Friend, error)

	// UpsertFriend inserts or updates the (user, steam id) row. The display
	// name is refreshed on conflict.
	UpsertFriend(ctx context.Context, f domain.Friend) error
}

type Pools interface {
	// CreatePool inserts a new pool.
	CreatePool(ctx context.Context, p domain.Pool) error

	// GetPoolByID returns a pool by id.
	GetPoolByID(ctx context.Context, id string) (domain.Pool, error)

	// GetOwnedPool returns the pool only if ownerID owns it.
	GetOwnedPool(ctx context.Context, id, ownerID string) (domain.Pool, error)

	// ListPoolsByOwner returns the owner's pools newest-first.
	ListPoolsByOwner(ctx context.Context, ownerID string) ([]domain.Pool, error)
}

type Games interface {
	// GetGameByID returns a game by id.
	GetGameByID(ctx context.Context, id string) (domain.Game, error)

	// UpsertGameByAppID inserts the game if its app id is unknown and returns
	// the stored row either way.
	UpsertGameByAppID(ctx context.Context, g domain.Game) (domain.Game, error)

	// UpsertPoolGame inserts or updates a pool membership (weight, tags).
	UpsertPoolGame(ctx context.Context, pg domain.PoolGame) error

	// ListPoolGames returns the pool's entries with their games.
	ListPoolGames(ctx context.Context, poolID string) ([]domain.PoolEntry, error)
}

type Picks interface {
	// CreatePick appends a pick history row.
	CreatePick(ctx context.Context, p domain.Pick) error

	// ListRecentPickGameIDs returns the game ids of the pool's most recent
	// picks, newest first.
	ListRecentPickGameIDs(ctx context.Context, poolID string, limit int) ([]string, error)

	// TopGames aggregates the most-picked games across all pools.
	TopGames(ctx context.Context, limit int) ([]domain.GameTally, error)

	// TopPickers aggregates users by number of picks.
	TopPickers(ctx context.Context, limit int) ([]domain.PickerTally, error)
}
