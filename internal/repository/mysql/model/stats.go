package model

import (
	"time"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type PostStats struct {
	PostID       int64     `gorm:"column:post_id;primaryKey;autoIncrement:false"`
	CommentCount int64     `gorm:"column:comment_count;not null;default:0"`
	LikeCount    int64     `gorm:"column:like_count;not null;default:0"`
	UpdatedAt    time.Time `gorm:"type:datetime(3)"`
}

func (PostStats) TableName() string {
	return "post_stats"
}

func (m *PostStats) ToDomain() domain.PostStats {
	return domain.PostStats{
		PostID:       m.PostID,
		CommentCount: m.CommentCount,
		LikeCount:    m.LikeCount,
	}
}

type UserStats struct {
	UserID         int64     `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	FollowingCount int64     `gorm:"column:following_count;not null;default:0"`
	FollowersCount int64     `gorm:"column:followers_count;not null;default:0"`
	UpdatedAt      time.Time `gorm:"type:datetime(3)"`
}

func (UserStats) TableName() string {
	return "user_stats"
}

func (m *UserStats) ToDomain() domain.UserStats {
	return domain.UserStats{
		UserID:         m.UserID,
		FollowingCount: m.FollowingCount,
		FollowersCount: m.FollowersCount,
	}
}
