package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Comment struct {
	ID           int64           `gorm:"primaryKey;autoIncrement:false"`
	PostID       int64           `gorm:"column:post_id;not null;index:idx_post_created,priority:1"`
	AuthorID     int64           `gorm:"column:author_id;not null"`
	ParentID     int64           `gorm:"column:parent_id;not null;default:0"`
	RootID       int64           `gorm:"column:root_id;not null;index:idx_root_created,priority:1"`
	CommentCount int64           `gorm:"column:comment_count;not null;default:0"`
	LikeCount    int64           `gorm:"column:like_count;not null;default:0"`
	Status       int8            `gorm:"column:status;not null;default:0"`
	ReviewStatus int8            `gorm:"column:review_status;not null;default:0"`
	ReviewedAt   *time.Time      `gorm:"column:reviewed_at;type:datetime(3)"`
	CreatedAt    time.Time       `gorm:"type:datetime(3);index:idx_post_created,priority:2;index:idx_root_created,priority:2"`
	UpdatedAt    time.Time       `gorm:"type:datetime(3)"`
	DeletedAt    *time.Time      `gorm:"column:deleted_at;type:datetime(3)"`
	Content      *CommentContent `gorm:"foreignKey:CommentID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentContent 评论正文单独存放，与评论一对一
type CommentContent struct {
	CCID      string    `gorm:"column:ccid;primaryKey;type:char(36)"`
	CommentID int64     `gorm:"column:comment_id;not null;uniqueIndex"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:datetime(3)"`
	UpdatedAt time.Time `gorm:"type:datetime(3)"`
}

func (CommentContent) TableName() string {
	return "comment_contents"
}

func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:           c.ID,
		PostID:       c.PostID,
		AuthorID:     c.AuthorID,
		ParentID:     c.ParentID,
		RootID:       c.RootID,
		CommentCount: c.CommentCount,
		LikeCount:    c.LikeCount,
		Status:       int8(c.Status),
		ReviewStatus: int8(c.ReviewStatus),
		ReviewedAt:   c.ReviewedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		DeletedAt:    c.DeletedAt,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	c := domain.Comment{
		ID:           m.ID,
		PostID:       m.PostID,
		AuthorID:     m.AuthorID,
		ParentID:     m.ParentID,
		RootID:       m.RootID,
		CommentCount: m.CommentCount,
		LikeCount:    m.LikeCount,
		Status:       domain.CommentStatus(m.Status),
		ReviewStatus: domain.ReviewStatus(m.ReviewStatus),
		ReviewedAt:   m.ReviewedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
	if m.Content != nil {
		c.Content = m.Content.Content
	}
	return c
}
