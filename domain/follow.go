package domain

import (
	"context"
	"time"
)

// Follow is a directed edge, unique per (FollowerID, FolloweeID).
type Follow struct {
	ID         int64      `json:"id"`
	FollowerID int64      `json:"follower_id"`
	FolloweeID int64      `json:"followee_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// FollowEntry is one row of a following or followers list. UserID is the
// other side of the edge; Mutual is set when the reverse edge is active too.
type FollowEntry struct {
	UserID     int64     `json:"user_id"`
	FollowedAt time.Time `json:"followed_at"`
	Mutual     bool      `json:"mutual"`
}

// FollowRepository is the follow ledger. It never touches counters.
type FollowRepository interface {
	// Follow has the same activation rules as LikeRepository.Like and
	// returns ErrAlreadyFollowing for an active edge.
	Follow(ctx context.Context, f *Follow) (LedgerTransition, error)

	// Unfollow returns ErrNotFollowing when there is no active edge.
	Unfollow(ctx context.Context, followerID, followeeID int64) error

	// Get returns ErrFollowNotFound when the edge is absent in scope.
	Get(ctx context.Context, followerID, followeeID int64, scope Scope) (Follow, error)

	// HardDelete returns ErrFollowNotFound without a row and
	// ErrNotSoftDeleted for an active one.
	HardDelete(ctx context.Context, followerID, followeeID int64) error

	FetchFollowing(ctx context.Context, userID int64, cursor string, num int64) ([]FollowEntry, error)
	FetchFollowers(ctx context.Context, userID int64, cursor string, num int64) ([]FollowEntry, error)
}

type FollowUsecase interface {
	Follow(ctx context.Context, followerID, followeeID int64) (Follow, error)
	Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error)
	Get(ctx context.Context, followerID, followeeID int64, scope Scope) (Follow, error)
	HardDelete(ctx context.Context, followerID, followeeID int64) (bool, error)
	FetchFollowing(ctx context.Context, userID int64, cursor string, num int64) ([]FollowEntry, string, error)
	FetchFollowers(ctx context.Context, userID int64, cursor string, num int64) ([]FollowEntry, string, error)
}
