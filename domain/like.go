package domain

import (
	"context"
	"strings"
	"time"
)

type TargetType int8

const (
	TargetPost TargetType = iota + 1
	TargetComment
)

func (t TargetType) String() string {
	switch t {
	case TargetPost:
		return "POST"
	case TargetComment:
		return "COMMENT"
	default:
		return "UNKNOWN"
	}
}

func (t TargetType) Valid() bool {
	return t == TargetPost || t == TargetComment
}

func ParseTargetType(v string) (TargetType, error) {
	switch strings.ToUpper(v) {
	case "POST":
		return TargetPost, nil
	case "COMMENT":
		return TargetComment, nil
	}
	return 0, ErrBadParamInput
}

// Like is a ledger row, unique per (UserID, TargetType, TargetID).
type Like struct {
	ID         int64      `json:"id"`
	UserID     int64      `json:"user_id"`
	TargetType TargetType `json:"target_type"`
	TargetID   int64      `json:"target_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// LikeRepository is the like ledger. It never touches counters.
type LikeRepository interface {
	// Like activates the (user, target) row: insert when missing, restore
	// with a fresh CreatedAt when soft-deleted, ErrAlreadyLiked when active.
	// l is filled with the stored row.
	Like(ctx context.Context, l *Like) (LedgerTransition, error)

	// Unlike soft-deletes the active row, ErrNotLiked otherwise.
	Unlike(ctx context.Context, userID int64, targetType TargetType, targetID int64) error

	// FetchByTarget and FetchByUser page by created_at DESC. USER scope only
	// returns active rows, ADMIN returns every row.
	FetchByTarget(ctx context.Context, targetType TargetType, targetID int64, scope Scope, cursor string, num int64) ([]Like, error)
	FetchByUser(ctx context.Context, userID int64, scope Scope, cursor string, num int64) ([]Like, error)
}

type LikeUsecase interface {
	Like(ctx context.Context, userID int64, targetType TargetType, targetID int64) (Like, error)
	Unlike(ctx context.Context, userID int64, targetType TargetType, targetID int64) (bool, error)
	FetchByTarget(ctx context.Context, targetType TargetType, targetID int64, scope Scope, cursor string, num int64) ([]Like, string, error)
	FetchByUser(ctx context.Context, userID int64, scope Scope, cursor string, num int64) ([]Like, string, error)
}
