package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{DB: db}
}

// lockRow 不论是否软删除都查出来，并加行锁
func (r *likeRepository) lockRow(tx *gorm.DB, userID int64, targetType domain.TargetType, targetID int64) (model.Like, bool, error) {
	var row model.Like
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND target_type = ? AND target_id = ?", userID, int8(targetType), targetID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	return row, err == nil, err
}

func (r *likeRepository) Like(ctx context.Context, l *domain.Like) (domain.LedgerTransition, error) {
	var tr domain.LedgerTransition
	err := runInTx(ctx, r.DB, func(tx *gorm.DB) error {
		row, exists, err := r.lockRow(tx, l.UserID, l.TargetType, l.TargetID)
		if err != nil {
			return err
		}
		tr, err = domain.PlanActivate(exists, row.DeletedAt != nil, domain.ErrAlreadyLiked)
		if err != nil {
			return err
		}

		now := time.Now()
		switch tr {
		case domain.LedgerInsert:
			row = *model.NewLikeFromDomain(l)
			row.CreatedAt, row.UpdatedAt, row.DeletedAt = now, now, nil
			if err := tx.Create(&row).Error; err != nil {
				if isDuplicate(err) {
					// 并发插入时由唯一索引兜底
					return domain.ErrAlreadyLiked
				}
				return err
			}
		case domain.LedgerRestore:
			err := tx.Model(&model.Like{}).
				Where("id = ?", row.ID).
				Updates(map[string]any{"deleted_at": nil, "created_at": now}).Error
			if err != nil {
				return err
			}
			row.CreatedAt, row.UpdatedAt, row.DeletedAt = now, now, nil
		}
		*l = row.ToDomain()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tr, nil
}

func (r *likeRepository) Unlike(ctx context.Context, userID int64, targetType domain.TargetType, targetID int64) error {
	return runInTx(ctx, r.DB, func(tx *gorm.DB) error {
		row, exists, err := r.lockRow(tx, userID, targetType, targetID)
		if err != nil {
			return err
		}
		if _, err := domain.PlanDeactivate(exists, row.DeletedAt != nil, domain.ErrNotLiked); err != nil {
			return err
		}
		return tx.Model(&model.Like{}).
			Where("id = ?", row.ID).
			Update("deleted_at", time.Now()).Error
	})
}

func (r *likeRepository) FetchByTarget(ctx context.Context, targetType domain.TargetType, targetID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, error) {
	db := conn(ctx, r.DB).Where("target_type = ? AND target_id = ?", int8(targetType), targetID)
	return r.fetch(db, scope, cursor, num)
}

func (r *likeRepository) FetchByUser(ctx context.Context, userID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, error) {
	db := conn(ctx, r.DB).Where("user_id = ?", userID)
	return r.fetch(db, scope, cursor, num)
}

func (r *likeRepository) fetch(db *gorm.DB, scope domain.Scope, cursor string, num int64) ([]domain.Like, error) {
	if cursor != "" {
		createdAt, id, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		db = db.Where("(created_at < ? OR (created_at = ? AND id < ?))", createdAt, createdAt, id)
	}

	repository.PageVerify(&num)
	var rows []model.Like
	err := db.Scopes(activeScope(scope)).
		Order("created_at DESC, id DESC").
		Limit(int(num)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Like, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}
