package domain

import "context"

type PostStats struct {
	PostID       int64 `json:"post_id"`
	CommentCount int64 `json:"comment_count"`
	LikeCount    int64 `json:"like_count"`
}

type UserStats struct {
	UserID         int64 `json:"user_id"`
	FollowingCount int64 `json:"following_count"`
	FollowersCount int64 `json:"followers_count"`
}

// CounterStore holds the post and user counters. Every Add is atomic and
// floored at zero; a missing stats row is created on first write.
type CounterStore interface {
	AddPostComments(ctx context.Context, postID int64, step int64) error
	AddPostLikes(ctx context.Context, postID int64, step int64) error
	AddUserFollowing(ctx context.Context, userID int64, step int64) error
	AddUserFollowers(ctx context.Context, userID int64, step int64) error

	// GetPostStats and GetUserStats return zero counters when no row exists.
	GetPostStats(ctx context.Context, postID int64) (PostStats, error)
	GetUserStats(ctx context.Context, userID int64) (UserStats, error)
}

// StatsCache returns ErrCacheMiss for an absent key. expired reports that
// the entry is past its logical expiry and should be rebuilt.
type StatsCache interface {
	GetPostStats(ctx context.Context, postID int64) (res PostStats, expired bool, err error)
	SetPostStats(ctx context.Context, stats PostStats) error
	GetUserStats(ctx context.Context, userID int64) (res UserStats, expired bool, err error)
	SetUserStats(ctx context.Context, stats UserStats) error
	Delete(ctx context.Context, keys []StatsKey) error
}

// StatsRepository 协调缓存和数据库
type StatsRepository interface {
	GetPostStats(ctx context.Context, postID int64) (PostStats, error)
	GetUserStats(ctx context.Context, userID int64) (UserStats, error)
}

type StatsUsecase interface {
	GetPostStats(ctx context.Context, postID int64) (PostStats, error)
	GetUserStats(ctx context.Context, userID int64) (UserStats, error)
}
