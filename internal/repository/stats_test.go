package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

func TestGetPostStats(t *testing.T) {
	ctx := context.Background()
	stats := domain.PostStats{PostID: 1, CommentCount: 3, LikeCount: 1}

	t.Run("fresh cache hit skips the db", func(t *testing.T) {
		db := new(mocks.CounterStore)
		cache := new(mocks.StatsCache)
		cache.On("GetPostStats", ctx, int64(1)).Return(stats, false, nil).Once()

		got, err := repository.NewStatsRepository(db, cache).GetPostStats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
		db.AssertNotCalled(t, "GetPostStats", mock.Anything, mock.Anything)
	})

	t.Run("miss loads and fills the cache", func(t *testing.T) {
		db := new(mocks.CounterStore)
		cache := new(mocks.StatsCache)
		cache.On("GetPostStats", ctx, int64(1)).Return(domain.PostStats{}, false, domain.ErrCacheMiss).Once()
		db.On("GetPostStats", ctx, int64(1)).Return(stats, nil).Once()
		cache.On("SetPostStats", ctx, stats).Return(nil).Once()

		got, err := repository.NewStatsRepository(db, cache).GetPostStats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
		db.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache write failure still serves the value", func(t *testing.T) {
		db := new(mocks.CounterStore)
		cache := new(mocks.StatsCache)
		cache.On("GetPostStats", ctx, int64(1)).Return(domain.PostStats{}, false, errors.New("conn refused")).Once()
		db.On("GetPostStats", ctx, int64(1)).Return(stats, nil).Once()
		cache.On("SetPostStats", ctx, stats).Return(errors.New("conn refused")).Once()

		got, err := repository.NewStatsRepository(db, cache).GetPostStats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("expired entry is served and rebuilt", func(t *testing.T) {
		db := new(mocks.CounterStore)
		cache := new(mocks.StatsCache)
		fresh := domain.PostStats{PostID: 1, CommentCount: 4, LikeCount: 1}
		done := make(chan struct{})

		cache.On("GetPostStats", ctx, int64(1)).Return(stats, true, nil).Once()
		db.On("GetPostStats", mock.Anything, int64(1)).Return(fresh, nil).Once()
		cache.On("SetPostStats", mock.Anything, fresh).Return(nil).Once().
			Run(func(mock.Arguments) { close(done) })

		got, err := repository.NewStatsRepository(db, cache).GetPostStats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, stats, got)

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("cache was not rebuilt")
		}
	})
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()
	db := new(mocks.CounterStore)
	cache := new(mocks.StatsCache)
	stats := domain.UserStats{UserID: 7, FollowingCount: 2, FollowersCount: 5}

	cache.On("GetUserStats", ctx, int64(7)).Return(domain.UserStats{}, false, domain.ErrCacheMiss).Once()
	db.On("GetUserStats", ctx, int64(7)).Return(stats, nil).Once()
	cache.On("SetUserStats", ctx, stats).Return(nil).Once()

	got, err := repository.NewStatsRepository(db, cache).GetUserStats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, stats, got)

	boom := errors.New("db down")
	cache.On("GetUserStats", ctx, int64(8)).Return(domain.UserStats{}, false, domain.ErrCacheMiss).Once()
	db.On("GetUserStats", ctx, int64(8)).Return(domain.UserStats{}, boom).Once()

	_, err = repository.NewStatsRepository(db, cache).GetUserStats(ctx, 8)
	assert.ErrorIs(t, err, boom)
}
