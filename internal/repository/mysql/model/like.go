package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// Like 同一用户对同一目标只有一行，取消点赞只做软删除
type Like struct {
	ID         int64      `gorm:"primaryKey;autoIncrement:false"`
	UserID     int64      `gorm:"column:user_id;not null;uniqueIndex:uk_user_target,priority:1"`
	TargetType int8       `gorm:"column:target_type;not null;uniqueIndex:uk_user_target,priority:2;index:idx_target,priority:1"`
	TargetID   int64      `gorm:"column:target_id;not null;uniqueIndex:uk_user_target,priority:3;index:idx_target,priority:2"`
	CreatedAt  time.Time  `gorm:"type:datetime(3)"`
	UpdatedAt  time.Time  `gorm:"type:datetime(3)"`
	DeletedAt  *time.Time `gorm:"column:deleted_at;type:datetime(3)"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l *domain.Like) *Like {
	return &Like{
		ID:         l.ID,
		UserID:     l.UserID,
		TargetType: int8(l.TargetType),
		TargetID:   l.TargetID,
		CreatedAt:  l.CreatedAt,
		UpdatedAt:  l.UpdatedAt,
		DeletedAt:  l.DeletedAt,
	}
}

func (m *Like) ToDomain() domain.Like {
	return domain.Like{
		ID:         m.ID,
		UserID:     m.UserID,
		TargetType: domain.TargetType(m.TargetType),
		TargetID:   m.TargetID,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  m.DeletedAt,
	}
}
