package domain

import "time"

// Friend is another Steam account the user compares libraries against.
// One row per (user, steam id) pair.
type Friend struct {
	ID          string
	UserID      string
	SteamID     string
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
