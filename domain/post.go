package domain

import (
	"context"
	"time"
)

type PostStatus int8

const (
	PostDraft PostStatus = iota
	PostPublished
)

type PostVisibility int8

const (
	VisibilityPublic PostVisibility = iota
	VisibilityPrivate
)

// Post is the subject comments and likes attach to.
type Post struct {
	ID           int64          `json:"id"`
	AuthorID     int64          `json:"author_id"`
	Title        string         `json:"title"`
	Content      string         `json:"content"`
	Status       PostStatus     `json:"status"`
	Visibility   PostVisibility `json:"visibility"`
	ReviewStatus ReviewStatus   `json:"review_status"`
	ReviewedAt   *time.Time     `json:"reviewed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    *time.Time     `json:"deleted_at,omitempty"`
}

// Open reports whether users may comment on or like the post.
func (p *Post) Open() bool {
	return p.DeletedAt == nil &&
		p.Status == PostPublished &&
		p.ReviewStatus == ReviewApproved &&
		p.Visibility == VisibilityPublic
}

// VisibleIn 与 mysql 层的 scope 过滤保持一致
func (p *Post) VisibleIn(scope Scope) bool {
	switch scope {
	case ScopeAdmin:
		return true
	case ScopeReviewer:
		return p.DeletedAt == nil
	default:
		return p.Open()
	}
}

// PostRepository defines the contract for post persistence
type PostRepository interface {
	// Store creates a new post, ID must already be assigned.
	Store(ctx context.Context, p *Post) error

	// GetByID returns ErrPostNotFound if the post is absent in scope.
	GetByID(ctx context.Context, id int64, scope Scope) (Post, error)

	// GetForUpdate loads the ADMIN view and locks the row.
	GetForUpdate(ctx context.Context, id int64) (Post, error)

	// IsOpen reports whether the post exists and accepts comments and likes.
	IsOpen(ctx context.Context, id int64) (bool, error)

	UpdateReview(ctx context.Context, id int64, status ReviewStatus, reviewedAt time.Time) error

	// FetchIDs 按 id 升序分批返回，用于初始化布隆过滤器
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

type PostUsecase interface {
	Store(ctx context.Context, p *Post) error
	GetByID(ctx context.Context, id int64, scope Scope) (Post, error)
	Review(ctx context.Context, id int64, status ReviewStatus) (Post, error)
	InitBloomFilter(ctx context.Context) error
}
