package domain

import "time"

// Pick records one wheel spin result.
type Pick struct {
	ID       string
	UserID   string
	PoolID   string
	GameID   string
	PickedAt time.Time
}

// GameTally is an aggregate of picks per game, used by the leaderboard and
// recommendation views.
type GameTally struct {
	AppID int64  `json:"appId"`
	Name  string `json:"name"`
	Picks int64  `json:"picks"`
}

// PickerTally is an aggregate of picks per user.
type PickerTally struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Picks  int64  `json:"picks"`
}
