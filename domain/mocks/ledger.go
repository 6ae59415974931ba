package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// LikeRepository is a mock of domain.LikeRepository
type LikeRepository struct {
	mock.Mock
}

func (m *LikeRepository) Like(ctx context.Context, l *domain.Like) (domain.LedgerTransition, error) {
	args := m.Called(ctx, l)
	return args.Get(0).(domain.LedgerTransition), args.Error(1)
}

func (m *LikeRepository) Unlike(ctx context.Context, userID int64, targetType domain.TargetType, targetID int64) error {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Error(0)
}

func (m *LikeRepository) FetchByTarget(ctx context.Context, targetType domain.TargetType, targetID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, error) {
	args := m.Called(ctx, targetType, targetID, scope, cursor, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Like), args.Error(1)
}

func (m *LikeRepository) FetchByUser(ctx context.Context, userID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, error) {
	args := m.Called(ctx, userID, scope, cursor, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Like), args.Error(1)
}

// LikeUsecase is a mock of domain.LikeUsecase
type LikeUsecase struct {
	mock.Mock
}

func (m *LikeUsecase) Like(ctx context.Context, userID int64, targetType domain.TargetType, targetID int64) (domain.Like, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Get(0).(domain.Like), args.Error(1)
}

func (m *LikeUsecase) Unlike(ctx context.Context, userID int64, targetType domain.TargetType, targetID int64) (bool, error) {
	args := m.Called(ctx, userID, targetType, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *LikeUsecase) FetchByTarget(ctx context.Context, targetType domain.TargetType, targetID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, string, error) {
	args := m.Called(ctx, targetType, targetID, scope, cursor, num)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Like), args.String(1), args.Error(2)
}

func (m *LikeUsecase) FetchByUser(ctx context.Context, userID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, string, error) {
	args := m.Called(ctx, userID, scope, cursor, num)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Like), args.String(1), args.Error(2)
}

// FollowRepository is a mock of domain.FollowRepository
type FollowRepository struct {
	mock.Mock
}

func (m *FollowRepository) Follow(ctx context.Context, f *domain.Follow) (domain.LedgerTransition, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(domain.LedgerTransition), args.Error(1)
}

func (m *FollowRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *FollowRepository) Get(ctx context.Context, followerID, followeeID int64, scope domain.Scope) (domain.Follow, error) {
	args := m.Called(ctx, followerID, followeeID, scope)
	return args.Get(0).(domain.Follow), args.Error(1)
}

func (m *FollowRepository) HardDelete(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *FollowRepository) FetchFollowing(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, error) {
	args := m.Called(ctx, userID, cursor, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowEntry), args.Error(1)
}

func (m *FollowRepository) FetchFollowers(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, error) {
	args := m.Called(ctx, userID, cursor, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FollowEntry), args.Error(1)
}

// FollowUsecase is a mock of domain.FollowUsecase
type FollowUsecase struct {
	mock.Mock
}

func (m *FollowUsecase) Follow(ctx context.Context, followerID, followeeID int64) (domain.Follow, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Get(0).(domain.Follow), args.Error(1)
}

func (m *FollowUsecase) Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowUsecase) Get(ctx context.Context, followerID, followeeID int64, scope domain.Scope) (domain.Follow, error) {
	args := m.Called(ctx, followerID, followeeID, scope)
	return args.Get(0).(domain.Follow), args.Error(1)
}

func (m *FollowUsecase) HardDelete(ctx context.Context, followerID, followeeID int64) (bool, error) {
	args := m.Called(ctx, followerID, followeeID)
	return args.Bool(0), args.Error(1)
}

func (m *FollowUsecase) FetchFollowing(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, string, error) {
	args := m.Called(ctx, userID, cursor, num)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.FollowEntry), args.String(1), args.Error(2)
}

func (m *FollowUsecase) FetchFollowers(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, string, error) {
	args := m.Called(ctx, userID, cursor, num)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.FollowEntry), args.String(1), args.Error(2)
}
