package domain

import "time"

const (
	// DefaultFavoriteStyle is assigned to every new account.
	DefaultFavoriteStyle = "savage"
	// DefaultLevel is the starting level label for new accounts.
	DefaultLevel = "beginner"
)

// User models a registered account. PasswordHash never leaves the server:
// it is excluded from JSON and stripped by the service layer before a user
// is returned to callers.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	JoinDate      time.Time `json:"joinDate"`
	TotalRoasts   int       `json:"totalRoasts"`
	FavoriteStyle string    `json:"favoriteStyle"`
	Level         string    `json:"level"`
}
