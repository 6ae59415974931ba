package stats

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
)

type service struct {
	stats domain.StatsRepository
	posts domain.PostRepository
	users domain.UserRepository
	bloom domain.BloomRepository
}

var _ domain.StatsUsecase = (*service)(nil)

func NewService(stats domain.StatsRepository, posts domain.PostRepository, users domain.UserRepository, bloom domain.BloomRepository) *service {
	return &service{
		stats: stats,
		posts: posts,
		users: users,
		bloom: bloom,
	}
}

// GetPostStats 只对普通用户可见的帖子开放
func (s *service) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, error) {
	exists, err := s.bloom.Exists(ctx, postID)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.PostStats{}, domain.ErrPostNotFound
	}
	if _, err := s.posts.GetByID(ctx, postID, domain.ScopeUser); err != nil {
		return domain.PostStats{}, err
	}
	return s.stats.GetPostStats(ctx, postID)
}

func (s *service) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, error) {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}
	if !ok {
		return domain.UserStats{}, domain.ErrUserNotFound
	}
	return s.stats.GetUserStats(ctx, userID)
}
