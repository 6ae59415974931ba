package like_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/usecase/like"
)

type fixture struct {
	tx          *mocks.Transactor
	likes       *mocks.LikeRepository
	posts       *mocks.PostRepository
	comments    *mocks.CommentRepository
	users       *mocks.UserRepository
	counters    *mocks.CounterStore
	bloom       *mocks.BloomRepository
	invalidator *mocks.StatsInvalidator
}

func newFixture() *fixture {
	return &fixture{
		tx:          &mocks.Transactor{},
		likes:       new(mocks.LikeRepository),
		posts:       new(mocks.PostRepository),
		comments:    new(mocks.CommentRepository),
		users:       new(mocks.UserRepository),
		counters:    new(mocks.CounterStore),
		bloom:       new(mocks.BloomRepository),
		invalidator: new(mocks.StatsInvalidator),
	}
}

func (f *fixture) service() domain.LikeUsecase {
	return like.NewService(like.Deps{
		Tx:          f.tx,
		Likes:       f.likes,
		Posts:       f.posts,
		Comments:    f.comments,
		Users:       f.users,
		Counters:    f.counters,
		Bloom:       f.bloom,
		IDs:         &mocks.IDGenerator{Next: 500},
		Invalidator: f.invalidator,
	})
}

var postKey = []domain.StatsKey{{Kind: domain.StatsPost, ID: 7}}

func TestLikePost(t *testing.T) {
	ctx := context.Background()

	t.Run("like, unlike, like again leaves one like", func(t *testing.T) {
		f := newFixture()
		var likes int64
		f.bloom.On("Exists", ctx, int64(7)).Return(true, nil)
		f.users.On("Exists", ctx, int64(3)).Return(true, nil)
		f.posts.On("IsOpen", ctx, int64(7)).Return(true, nil)
		f.likes.On("Like", ctx, mock.AnythingOfType("*domain.Like")).Return(domain.LedgerInsert, nil).Once()
		f.likes.On("Unlike", ctx, int64(3), domain.TargetPost, int64(7)).Return(nil).Once()
		f.likes.On("Like", ctx, mock.AnythingOfType("*domain.Like")).Return(domain.LedgerRestore, nil).Once()
		f.counters.On("AddPostLikes", ctx, int64(7), mock.AnythingOfType("int64")).
			Run(func(args mock.Arguments) { likes += args.Get(2).(int64) }).
			Return(nil)
		f.invalidator.On("Send", postKey).Return()

		svc := f.service()
		_, err := svc.Like(ctx, 3, domain.TargetPost, 7)
		require.NoError(t, err)
		ok, err := svc.Unlike(ctx, 3, domain.TargetPost, 7)
		require.NoError(t, err)
		assert.True(t, ok)
		_, err = svc.Like(ctx, 3, domain.TargetPost, 7)
		require.NoError(t, err)

		assert.Equal(t, int64(1), likes)
		f.counters.AssertNumberOfCalls(t, "AddPostLikes", 3)
		f.invalidator.AssertNumberOfCalls(t, "Send", 3)
	})

	t.Run("second like is rejected and not counted", func(t *testing.T) {
		f := newFixture()
		var likes int64
		f.bloom.On("Exists", ctx, int64(7)).Return(true, nil)
		f.users.On("Exists", ctx, int64(3)).Return(true, nil)
		f.posts.On("IsOpen", ctx, int64(7)).Return(true, nil)
		f.likes.On("Like", ctx, mock.AnythingOfType("*domain.Like")).Return(domain.LedgerInsert, nil).Once()
		f.likes.On("Like", ctx, mock.AnythingOfType("*domain.Like")).Return(domain.LedgerTransition(0), domain.ErrAlreadyLiked).Once()
		f.counters.On("AddPostLikes", ctx, int64(7), mock.AnythingOfType("int64")).
			Run(func(args mock.Arguments) { likes += args.Get(2).(int64) }).
			Return(nil)
		f.invalidator.On("Send", postKey).Return()

		svc := f.service()
		got, err := svc.Like(ctx, 3, domain.TargetPost, 7)
		require.NoError(t, err)
		assert.Equal(t, int64(500), got.ID)

		_, err = svc.Like(ctx, 3, domain.TargetPost, 7)
		assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
		assert.ErrorIs(t, err, domain.ErrConflict)
		assert.Equal(t, int64(1), likes)
		f.invalidator.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("closed post", func(t *testing.T) {
		f := newFixture()
		f.bloom.On("Exists", ctx, int64(7)).Return(true, nil).Once()
		f.users.On("Exists", ctx, int64(3)).Return(true, nil).Once()
		f.posts.On("IsOpen", ctx, int64(7)).Return(false, nil).Once()

		_, err := f.service().Like(ctx, 3, domain.TargetPost, 7)
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)
		f.likes.AssertNotCalled(t, "Like", mock.Anything, mock.Anything)
	})

	t.Run("bloom filter negative", func(t *testing.T) {
		f := newFixture()
		f.bloom.On("Exists", ctx, int64(7)).Return(false, nil).Once()

		_, err := f.service().Like(ctx, 3, domain.TargetPost, 7)
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)
		assert.Equal(t, 0, f.tx.Calls)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture()
		f.bloom.On("Exists", ctx, int64(7)).Return(true, nil).Once()
		f.users.On("Exists", ctx, int64(3)).Return(false, nil).Once()

		_, err := f.service().Like(ctx, 3, domain.TargetPost, 7)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		f.posts.AssertNotCalled(t, "IsOpen", mock.Anything, mock.Anything)
	})
}

func TestLikeComment(t *testing.T) {
	ctx := context.Background()

	t.Run("steps the comment like count", func(t *testing.T) {
		f := newFixture()
		f.users.On("Exists", ctx, int64(3)).Return(true, nil).Once()
		f.comments.On("GetByID", ctx, int64(40), domain.ScopeUser).Return(domain.Comment{ID: 40}, nil).Once()
		f.likes.On("Like", ctx, mock.AnythingOfType("*domain.Like")).Return(domain.LedgerInsert, nil).Once()
		f.comments.On("UpdateLikeCount", ctx, int64(40), int64(1)).Return(nil).Once()

		got, err := f.service().Like(ctx, 3, domain.TargetComment, 40)
		require.NoError(t, err)
		assert.Equal(t, domain.TargetComment, got.TargetType)
		f.bloom.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
		f.counters.AssertNotCalled(t, "AddPostLikes", mock.Anything, mock.Anything, mock.Anything)
		f.invalidator.AssertNotCalled(t, "Send", mock.Anything)
	})

	t.Run("hidden comment is not a target", func(t *testing.T) {
		f := newFixture()
		f.users.On("Exists", ctx, int64(3)).Return(true, nil).Once()
		f.comments.On("GetByID", ctx, int64(40), domain.ScopeUser).Return(domain.Comment{}, domain.ErrCommentNotFound).Once()

		_, err := f.service().Like(ctx, 3, domain.TargetComment, 40)
		assert.ErrorIs(t, err, domain.ErrTargetNotFound)
	})
}

func TestUnlike(t *testing.T) {
	ctx := context.Background()

	t.Run("not liked", func(t *testing.T) {
		f := newFixture()
		f.users.On("Exists", ctx, int64(3)).Return(true, nil).Once()
		f.likes.On("Unlike", ctx, int64(3), domain.TargetComment, int64(40)).Return(domain.ErrNotLiked).Once()

		ok, err := f.service().Unlike(ctx, 3, domain.TargetComment, 40)
		assert.ErrorIs(t, err, domain.ErrNotLiked)
		assert.False(t, ok)
		f.comments.AssertNotCalled(t, "UpdateLikeCount", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture()
		f.users.On("Exists", ctx, int64(3)).Return(false, nil).Once()

		_, err := f.service().Unlike(ctx, 3, domain.TargetPost, 7)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
		f.likes.AssertNotCalled(t, "Unlike", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("bad target type", func(t *testing.T) {
		f := newFixture()
		_, err := f.service().Unlike(ctx, 3, domain.TargetType(0), 7)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestFetchByTarget(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	list := []domain.Like{{ID: 1, CreatedAt: time.Now()}}
	f.likes.On("FetchByTarget", ctx, domain.TargetPost, int64(7), domain.ScopeAdmin, "", int64(20)).Return(list, nil).Once()

	got, next, err := f.service().FetchByTarget(ctx, domain.TargetPost, 7, domain.ScopeAdmin, "", 20)
	require.NoError(t, err)
	assert.Equal(t, list, got)
	assert.NotEmpty(t, next)
}

func TestFetchByUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.likes.On("FetchByUser", ctx, int64(3), domain.ScopeUser, "", int64(20)).Return([]domain.Like{}, nil).Once()

	got, next, err := f.service().FetchByUser(ctx, 3, domain.ScopeUser, "", 20)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, next)
}
