package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// Registration and credentials are handled elsewhere; this core only
// needs existence checks and the follow counters in UserStats.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRepository defines the contract for user lookups.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrUserNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)

	Exists(ctx context.Context, id int64) (bool, error)
}
