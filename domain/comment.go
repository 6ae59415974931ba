package domain

import (
	"context"
	"time"
)

// Comment is a node of a comment thread.
// ParentID 0 marks a top-level comment, whose RootID equals its own ID.
// Replies store the RootID of their thread directly.
type Comment struct {
	ID           int64         `json:"id"`
	PostID       int64         `json:"post_id"`
	AuthorID     int64         `json:"author_id"`
	ParentID     int64         `json:"parent_id"`
	RootID       int64         `json:"root_id"`
	Content      string        `json:"content"`
	CommentCount int64         `json:"comment_count"`
	LikeCount    int64         `json:"like_count"`
	Status       CommentStatus `json:"status"`
	ReviewStatus ReviewStatus  `json:"review_status"`
	ReviewedAt   *time.Time    `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
	DeletedAt    *time.Time    `json:"deleted_at,omitempty"`
}

func (c *Comment) IsTopLevel() bool {
	return c.ParentID == 0
}

func (c *Comment) IsSoftDeleted() bool {
	return c.DeletedAt != nil
}

// VisibleIn applies the scope filter to a loaded comment. It must agree with
// the SQL filter the repositories build for the same scope.
func (c *Comment) VisibleIn(scope Scope) bool {
	switch scope {
	case ScopeAdmin:
		return true
	case ScopeReviewer:
		return c.DeletedAt == nil
	default:
		return c.DeletedAt == nil &&
			c.Status == CommentNormal &&
			c.ReviewStatus != ReviewRejected
	}
}

// CommentUsecase is the orchestration contract for comments.
type CommentUsecase interface {
	// Create validates author, post and parent, stores the comment with its
	// content and steps every affected counter in one transaction.
	// On success c carries the assigned id and root, the initial review and
	// display states and the timestamps written by the store.
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64, scope Scope) (Comment, error)
	// GetThread returns every comment sharing the root of id, oldest first.
	GetThread(ctx context.Context, id int64, scope Scope) ([]Comment, error)
	// GetSubtree returns id and its descendants, oldest first.
	GetSubtree(ctx context.Context, id int64, scope Scope) ([]Comment, error)
	FetchByPost(ctx context.Context, postID int64, scope Scope, cursor string, num int64) ([]Comment, string, error)
	Review(ctx context.Context, id int64, status ReviewStatus) (Comment, error)
	SetStatus(ctx context.Context, id int64, status CommentStatus) (Comment, error)
	SoftDelete(ctx context.Context, id int64) (bool, error)
	Restore(ctx context.Context, id int64) (bool, error)
	HardDelete(ctx context.Context, id int64) (bool, error)
}

// CommentRepository persists comment nodes and their content.
type CommentRepository interface {
	// Store inserts the comment row and its content record atomically.
	// ID and RootID must already be assigned.
	Store(ctx context.Context, c *Comment) error

	// GetByID returns ErrCommentNotFound when the comment is absent in scope.
	GetByID(ctx context.Context, id int64, scope Scope) (Comment, error)

	// GetForUpdate loads the ADMIN view and locks the row until the
	// surrounding transaction ends.
	GetForUpdate(ctx context.Context, id int64) (Comment, error)

	// ListByRoot returns the thread, ordered by creation time ascending.
	ListByRoot(ctx context.Context, rootID int64, scope Scope) ([]Comment, error)

	// ListSubtree loads the whole thread of id once and walks parent edges
	// in memory. Returns ErrCommentNotFound when id is not part of any thread.
	ListSubtree(ctx context.Context, id int64, scope Scope) ([]Comment, error)

	// FetchByPost pages through a post's comments by creation time.
	// USER scope only lists top-level comments.
	FetchByPost(ctx context.Context, postID int64, scope Scope, cursor string, num int64) ([]Comment, error)

	// UpdateChildCount and UpdateLikeCount step the materialized counters
	// atomically, never below zero.
	UpdateChildCount(ctx context.Context, id int64, step int64) error
	UpdateLikeCount(ctx context.Context, id int64, step int64) error

	UpdateReview(ctx context.Context, id int64, status ReviewStatus, reviewedAt time.Time) error
	UpdateStatus(ctx context.Context, id int64, status CommentStatus) error

	// SoftDelete sets deleted_at on an active row, Restore clears it on a
	// deleted row. Both return ErrCommentNotFound when no row changed.
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error

	// HardDelete removes the row and its content. It returns ErrNotSoftDeleted
	// unless the row is already soft-deleted.
	HardDelete(ctx context.Context, id int64) error
}
