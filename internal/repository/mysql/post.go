package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository 创建帖子数据库操作层
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) error {
	row := model.NewPostFromDomain(p)
	if err := conn(ctx, m.DB).Create(row).Error; err != nil {
		return err
	}
	p.CreatedAt = row.CreatedAt
	p.UpdatedAt = row.UpdatedAt
	return nil
}

func (m *postRepository) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Post, error) {
	var row model.Post
	err := conn(ctx, m.DB).Scopes(postScope(scope)).First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Post{}, postErr(err)
	}
	return row.ToDomain(), nil
}

func (m *postRepository) GetForUpdate(ctx context.Context, id int64) (domain.Post, error) {
	var row model.Post
	err := conn(ctx, m.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Post{}, postErr(err)
	}
	return row.ToDomain(), nil
}

func (m *postRepository) IsOpen(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := conn(ctx, m.DB).
		Model(&model.Post{}).
		Scopes(postScope(domain.ScopeUser)).
		Where("id = ?", id).
		Count(&n).Error
	return n > 0, err
}

func (m *postRepository) UpdateReview(ctx context.Context, id int64, status domain.ReviewStatus, reviewedAt time.Time) error {
	return conn(ctx, m.DB).
		Model(&model.Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"review_status": int8(status),
			"reviewed_at":   reviewedAt,
		}).Error
}

func (m *postRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = conn(ctx, m.DB).
		Model(&model.Post{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}

func postErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrPostNotFound
	}
	return err
}
