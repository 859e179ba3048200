package domain

import "time"

// Game is a Steam title known to the system, deduplicated by AppID.
type Game struct {
	ID        string
	AppID     int64
	Name      string
	StoreURL  string
	Tags      string // comma-joined category/genre labels
	CreatedAt time.Time
}

// Pool is a shared set of co-op candidates between the owner and one friend.
type Pool struct {
	ID        string
	OwnerID   string
	FriendID  string
	Name      string
	CreatedAt time.Time
}

// PoolGame is a pool membership row carrying the game's pick weight.
type PoolGame struct {
	PoolID    string
	GameID    string
	Weight    float64
	Tags      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PoolEntry joins a membership row with its game for listing and picking.
type PoolEntry struct {
	Game   Game
	Weight float64
	Tags   string
}
