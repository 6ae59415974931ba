package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// CounterStore is a mock of domain.CounterStore
type CounterStore struct {
	mock.Mock
}

func (m *CounterStore) AddPostComments(ctx context.Context, postID int64, step int64) error {
	args := m.Called(ctx, postID, step)
	return args.Error(0)
}

func (m *CounterStore) AddPostLikes(ctx context.Context, postID int64, step int64) error {
	args := m.Called(ctx, postID, step)
	return args.Error(0)
}

func (m *CounterStore) AddUserFollowing(ctx context.Context, userID int64, step int64) error {
	args := m.Called(ctx, userID, step)
	return args.Error(0)
}

func (m *CounterStore) AddUserFollowers(ctx context.Context, userID int64, step int64) error {
	args := m.Called(ctx, userID, step)
	return args.Error(0)
}

func (m *CounterStore) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.PostStats), args.Error(1)
}

func (m *CounterStore) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserStats), args.Error(1)
}

// StatsCache is a mock of domain.StatsCache
type StatsCache struct {
	mock.Mock
}

func (m *StatsCache) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, bool, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.PostStats), args.Bool(1), args.Error(2)
}

func (m *StatsCache) SetPostStats(ctx context.Context, stats domain.PostStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *StatsCache) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, bool, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserStats), args.Bool(1), args.Error(2)
}

func (m *StatsCache) SetUserStats(ctx context.Context, stats domain.UserStats) error {
	args := m.Called(ctx, stats)
	return args.Error(0)
}

func (m *StatsCache) Delete(ctx context.Context, keys []domain.StatsKey) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

// StatsRepository is a mock of domain.StatsRepository
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.PostStats), args.Error(1)
}

func (m *StatsRepository) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserStats), args.Error(1)
}

// StatsUsecase is a mock of domain.StatsUsecase
type StatsUsecase struct {
	mock.Mock
}

func (m *StatsUsecase) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(domain.PostStats), args.Error(1)
}

func (m *StatsUsecase) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserStats), args.Error(1)
}

// StatsInvalidator is a mock of domain.StatsInvalidator
type StatsInvalidator struct {
	mock.Mock
}

func (m *StatsInvalidator) Start(ctx context.Context) {
	m.Called(ctx)
}

func (m *StatsInvalidator) Send(keys ...domain.StatsKey) {
	m.Called(keys)
}
