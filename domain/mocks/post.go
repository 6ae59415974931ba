package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// PostRepository is a mock of domain.PostRepository
type PostRepository struct {
	mock.Mock
}

func (m *PostRepository) Store(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostRepository) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Post, error) {
	args := m.Called(ctx, id, scope)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostRepository) GetForUpdate(ctx context.Context, id int64) (domain.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostRepository) IsOpen(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *PostRepository) UpdateReview(ctx context.Context, id int64, status domain.ReviewStatus, reviewedAt time.Time) error {
	args := m.Called(ctx, id, status, reviewedAt)
	return args.Error(0)
}

func (m *PostRepository) FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// PostUsecase is a mock of domain.PostUsecase
type PostUsecase struct {
	mock.Mock
}

func (m *PostUsecase) Store(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *PostUsecase) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Post, error) {
	args := m.Called(ctx, id, scope)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostUsecase) Review(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Post, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Post), args.Error(1)
}

func (m *PostUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// BloomRepository is a mock of domain.BloomRepository
type BloomRepository struct {
	mock.Mock
}

func (m *BloomRepository) Add(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *BloomRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *BloomRepository) BulkAdd(ctx context.Context, ids []int64) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

// UserRepository is a mock of domain.UserRepository
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *UserRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
