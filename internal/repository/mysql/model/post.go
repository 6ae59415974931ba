package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Post struct {
	ID           int64      `gorm:"primaryKey;autoIncrement:false"`
	AuthorID     int64      `gorm:"column:author_id;not null;index"`
	Title        string     `gorm:"type:varchar(128);not null"`
	Content      string     `gorm:"type:longtext;not null"`
	Status       int8       `gorm:"column:status;not null;default:0"`
	Visibility   int8       `gorm:"column:visibility;not null;default:0"`
	ReviewStatus int8       `gorm:"column:review_status;not null;default:0"`
	ReviewedAt   *time.Time `gorm:"column:reviewed_at;type:datetime(3)"`
	CreatedAt    time.Time  `gorm:"type:datetime(3)"`
	UpdatedAt    time.Time  `gorm:"type:datetime(3)"`
	DeletedAt    *time.Time `gorm:"column:deleted_at;type:datetime(3)"`
}

func (Post) TableName() string {
	return "posts"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:           m.ID,
		AuthorID:     m.AuthorID,
		Title:        m.Title,
		Content:      m.Content,
		Status:       domain.PostStatus(m.Status),
		Visibility:   domain.PostVisibility(m.Visibility),
		ReviewStatus: domain.ReviewStatus(m.ReviewStatus),
		ReviewedAt:   m.ReviewedAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
		DeletedAt:    m.DeletedAt,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:           p.ID,
		AuthorID:     p.AuthorID,
		Title:        p.Title,
		Content:      p.Content,
		Status:       int8(p.Status),
		Visibility:   int8(p.Visibility),
		ReviewStatus: int8(p.ReviewStatus),
		ReviewedAt:   p.ReviewedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
		DeletedAt:    p.DeletedAt,
	}
}
