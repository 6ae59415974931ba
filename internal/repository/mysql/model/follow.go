package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type Follow struct {
	ID         int64      `gorm:"primaryKey;autoIncrement:false"`
	FollowerID int64      `gorm:"column:follower_id;not null;uniqueIndex:uk_follower_followee,priority:1"`
	FolloweeID int64      `gorm:"column:followee_id;not null;uniqueIndex:uk_follower_followee,priority:2;index"`
	CreatedAt  time.Time  `gorm:"type:datetime(3)"`
	UpdatedAt  time.Time  `gorm:"type:datetime(3)"`
	DeletedAt  *time.Time `gorm:"column:deleted_at;type:datetime(3)"`
}

func (Follow) TableName() string {
	return "follows"
}

func NewFollowFromDomain(f *domain.Follow) *Follow {
	return &Follow{
		ID:         f.ID,
		FollowerID: f.FollowerID,
		FolloweeID: f.FolloweeID,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
		DeletedAt:  f.DeletedAt,
	}
}

func (m *Follow) ToDomain() domain.Follow {
	return domain.Follow{
		ID:         m.ID,
		FollowerID: m.FollowerID,
		FolloweeID: m.FolloweeID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  m.DeletedAt,
	}
}
