package domain

import "time"

// User is an account created on first successful Steam sign-in. SteamID is
// the stable external identity and is unique across all users; users are
// never deleted by this service.
type User struct {
	ID          string
	SteamID     string
	DisplayName string // optional, from the Steam player summary
	AvatarURL   string // optional
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
