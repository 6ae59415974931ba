package stats_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/stats"
)

func TestGetPostStats(t *testing.T) {
	ctx := context.Background()

	t.Run("visible post", func(t *testing.T) {
		repo := new(mocks.StatsRepository)
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		want := domain.PostStats{PostID: 7, CommentCount: 3, LikeCount: 1}
		bloom.On("Exists", ctx, int64(7)).Return(true, nil).Once()
		posts.On("GetByID", ctx, int64(7), domain.ScopeUser).Return(domain.Post{ID: 7}, nil).Once()
		repo.On("GetPostStats", ctx, int64(7)).Return(want, nil).Once()

		got, err := stats.NewService(repo, posts, new(mocks.UserRepository), bloom).GetPostStats(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("hidden post", func(t *testing.T) {
		repo := new(mocks.StatsRepository)
		posts := new(mocks.PostRepository)
		bloom := new(mocks.BloomRepository)
		bloom.On("Exists", ctx, int64(7)).Return(true, nil).Once()
		posts.On("GetByID", ctx, int64(7), domain.ScopeUser).Return(domain.Post{}, domain.ErrPostNotFound).Once()

		_, err := stats.NewService(repo, posts, new(mocks.UserRepository), bloom).GetPostStats(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrPostNotFound)
		repo.AssertNotCalled(t, "GetPostStats", mock.Anything, mock.Anything)
	})
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()

	t.Run("existing user", func(t *testing.T) {
		repo := new(mocks.StatsRepository)
		users := new(mocks.UserRepository)
		want := domain.UserStats{UserID: 1, FollowingCount: 2}
		users.On("Exists", ctx, int64(1)).Return(true, nil).Once()
		repo.On("GetUserStats", ctx, int64(1)).Return(want, nil).Once()

		got, err := stats.NewService(repo, new(mocks.PostRepository), users, new(mocks.BloomRepository)).GetUserStats(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("unknown user", func(t *testing.T) {
		repo := new(mocks.StatsRepository)
		users := new(mocks.UserRepository)
		users.On("Exists", ctx, int64(1)).Return(false, nil).Once()

		_, err := stats.NewService(repo, new(mocks.PostRepository), users, new(mocks.BloomRepository)).GetUserStats(ctx, 1)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
