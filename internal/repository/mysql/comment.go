package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

type commentRepository struct {
	DB *gorm.DB
}

var _ domain.CommentRepository = (*commentRepository)(nil)

func NewCommentRepository(db *gorm.DB) *commentRepository {
	return &commentRepository{
		DB: db,
	}
}

func (c *commentRepository) Store(ctx context.Context, comment *domain.Comment) error {
	row := model.NewCommentFromDomain(comment)
	return runInTx(ctx, c.DB, func(tx *gorm.DB) error {
		if err := tx.Omit("Content").Create(row).Error; err != nil {
			return err
		}
		content := &model.CommentContent{
			CCID:      uuid.New().String(),
			CommentID: row.ID,
			Content:   comment.Content,
		}
		if err := tx.Create(content).Error; err != nil {
			return err
		}
		comment.CreatedAt = row.CreatedAt
		comment.UpdatedAt = row.UpdatedAt
		return nil
	})
}

func (c *commentRepository) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Comment, error) {
	var row model.Comment
	err := conn(ctx, c.DB).
		Scopes(commentScope(scope)).
		Preload("Content").
		First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Comment{}, commentErr(err)
	}
	return row.ToDomain(), nil
}

// GetForUpdate does not load the content.
func (c *commentRepository) GetForUpdate(ctx context.Context, id int64) (domain.Comment, error) {
	var row model.Comment
	err := conn(ctx, c.DB).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Comment{}, commentErr(err)
	}
	return row.ToDomain(), nil
}

func (c *commentRepository) ListByRoot(ctx context.Context, rootID int64, scope domain.Scope) ([]domain.Comment, error) {
	var rows []model.Comment
	err := conn(ctx, c.DB).
		Scopes(commentScope(scope)).
		Preload("Content").
		Where("root_id = ?", rootID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(rows), nil
}

func (c *commentRepository) ListSubtree(ctx context.Context, id int64, scope domain.Scope) ([]domain.Comment, error) {
	var node model.Comment
	err := conn(ctx, c.DB).Select("id", "root_id").First(&node, "id = ?", id).Error
	if err != nil {
		return nil, commentErr(err)
	}

	// 整个线程一次取出，遍历到对 scope 隐藏的节点就停下
	thread, err := c.ListByRoot(ctx, node.RootID, domain.ScopeAdmin)
	if err != nil {
		return nil, err
	}
	return domain.CollectSubtree(thread, id, scope), nil
}

func (c *commentRepository) FetchByPost(ctx context.Context, postID int64, scope domain.Scope, cursor string, num int64) ([]domain.Comment, error) {
	db := conn(ctx, c.DB).
		Scopes(commentScope(scope)).
		Preload("Content").
		Where("post_id = ?", postID)
	if scope == domain.ScopeUser {
		db = db.Where("parent_id = 0")
	}
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		db = db.Where("(created_at > ? OR (created_at = ? AND id > ?))", createdAt, createdAt, id)
	}

	repository.PageVerify(&num)
	var rows []model.Comment
	err := db.Order("created_at ASC, id ASC").Limit(int(num)).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainComments(rows), nil
}

func (c *commentRepository) UpdateChildCount(ctx context.Context, id int64, step int64) error {
	return c.step(ctx, id, "comment_count", step)
}

func (c *commentRepository) UpdateLikeCount(ctx context.Context, id int64, step int64) error {
	return c.step(ctx, id, "like_count", step)
}

// step 原子加减，下限为 0
func (c *commentRepository) step(ctx context.Context, id int64, col string, step int64) error {
	if step == 0 {
		return nil
	}
	return conn(ctx, c.DB).
		Model(&model.Comment{}).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr("GREATEST("+col+" + ?, 0)", step)).Error
}

func (c *commentRepository) UpdateReview(ctx context.Context, id int64, status domain.ReviewStatus, reviewedAt time.Time) error {
	return conn(ctx, c.DB).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"review_status": int8(status),
			"reviewed_at":   reviewedAt,
		}).Error
}

func (c *commentRepository) UpdateStatus(ctx context.Context, id int64, status domain.CommentStatus) error {
	return conn(ctx, c.DB).
		Model(&model.Comment{}).
		Where("id = ?", id).
		Update("status", int8(status)).Error
}

func (c *commentRepository) SoftDelete(ctx context.Context, id int64) error {
	result := conn(ctx, c.DB).
		Model(&model.Comment{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) Restore(ctx context.Context, id int64) error {
	result := conn(ctx, c.DB).
		Model(&model.Comment{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

func (c *commentRepository) HardDelete(ctx context.Context, id int64) error {
	return runInTx(ctx, c.DB, func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND deleted_at IS NOT NULL", id).Delete(&model.Comment{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&model.Comment{}).Where("id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return domain.ErrCommentNotFound
			}
			return domain.ErrNotSoftDeleted
		}
		return tx.Where("comment_id = ?", id).Delete(&model.CommentContent{}).Error
	})
}

func commentErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCommentNotFound
	}
	return err
}

func toDomainComments(rows []model.Comment) []domain.Comment {
	res := make([]domain.Comment, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res
}
