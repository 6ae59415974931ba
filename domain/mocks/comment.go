package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// CommentRepository is a mock of domain.CommentRepository
type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) Store(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentRepository) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Comment, error) {
	args := m.Called(ctx, id, scope)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentRepository) GetForUpdate(ctx context.Context, id int64) (domain.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentRepository) ListByRoot(ctx context.Context, rootID int64, scope domain.Scope) ([]domain.Comment, error) {
	args := m.Called(ctx, rootID, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) ListSubtree(ctx context.Context, id int64, scope domain.Scope) ([]domain.Comment, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) FetchByPost(ctx context.Context, postID int64, scope domain.Scope, cursor string, num int64) ([]domain.Comment, error) {
	args := m.Called(ctx, postID, scope, cursor, num)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentRepository) UpdateChildCount(ctx context.Context, id int64, step int64) error {
	args := m.Called(ctx, id, step)
	return args.Error(0)
}

func (m *CommentRepository) UpdateLikeCount(ctx context.Context, id int64, step int64) error {
	args := m.Called(ctx, id, step)
	return args.Error(0)
}

func (m *CommentRepository) UpdateReview(ctx context.Context, id int64, status domain.ReviewStatus, reviewedAt time.Time) error {
	args := m.Called(ctx, id, status, reviewedAt)
	return args.Error(0)
}

func (m *CommentRepository) UpdateStatus(ctx context.Context, id int64, status domain.CommentStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *CommentRepository) SoftDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) Restore(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepository) HardDelete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// CommentUsecase is a mock of domain.CommentUsecase
type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) Create(ctx context.Context, c *domain.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *CommentUsecase) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Comment, error) {
	args := m.Called(ctx, id, scope)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentUsecase) GetThread(ctx context.Context, id int64, scope domain.Scope) ([]domain.Comment, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentUsecase) GetSubtree(ctx context.Context, id int64, scope domain.Scope) ([]domain.Comment, error) {
	args := m.Called(ctx, id, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func (m *CommentUsecase) FetchByPost(ctx context.Context, postID int64, scope domain.Scope, cursor string, num int64) ([]domain.Comment, string, error) {
	args := m.Called(ctx, postID, scope, cursor, num)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Comment), args.String(1), args.Error(2)
}

func (m *CommentUsecase) Review(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Comment, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentUsecase) SetStatus(ctx context.Context, id int64, status domain.CommentStatus) (domain.Comment, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *CommentUsecase) SoftDelete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CommentUsecase) Restore(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *CommentUsecase) HardDelete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
