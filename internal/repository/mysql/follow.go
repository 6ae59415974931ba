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

type followRepository struct {
	DB *gorm.DB
}

var _ domain.FollowRepository = (*followRepository)(nil)

func NewFollowRepository(db *gorm.DB) *followRepository {
	return &followRepository{DB: db}
}

func (r *followRepository) lockRow(tx *gorm.DB, followerID, followeeID int64) (model.Follow, bool, error) {
	var row model.Follow
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	return row, err == nil, err
}

func (r *followRepository) Follow(ctx context.Context, f *domain.Follow) (domain.LedgerTransition, error) {
	var tr domain.LedgerTransition
	err := runInTx(ctx, r.DB, func(tx *gorm.DB) error {
		row, exists, err := r.lockRow(tx, f.FollowerID, f.FolloweeID)
		if err != nil {
			return err
		}
		tr, err = domain.PlanActivate(exists, row.DeletedAt != nil, domain.ErrAlreadyFollowing)
		if err != nil {
			return err
		}

		now := time.Now()
		switch tr {
		case domain.LedgerInsert:
			row = *model.NewFollowFromDomain(f)
			row.CreatedAt, row.UpdatedAt, row.DeletedAt = now, now, nil
			if err := tx.Create(&row).Error; err != nil {
				if isDuplicate(err) {
					return domain.ErrAlreadyFollowing
				}
				return err
			}
		case domain.LedgerRestore:
			err := tx.Model(&model.Follow{}).
				Where("id = ?", row.ID).
				Updates(map[string]any{"deleted_at": nil, "created_at": now}).Error
			if err != nil {
				return err
			}
			row.CreatedAt, row.UpdatedAt, row.DeletedAt = now, now, nil
		}
		*f = row.ToDomain()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return tr, nil
}

func (r *followRepository) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return runInTx(ctx, r.DB, func(tx *gorm.DB) error {
		row, exists, err := r.lockRow(tx, followerID, followeeID)
		if err != nil {
			return err
		}
		if _, err := domain.PlanDeactivate(exists, row.DeletedAt != nil, domain.ErrNotFollowing); err != nil {
			return err
		}
		return tx.Model(&model.Follow{}).
			Where("id = ?", row.ID).
			Update("deleted_at", time.Now()).Error
	})
}

func (r *followRepository) Get(ctx context.Context, followerID, followeeID int64, scope domain.Scope) (domain.Follow, error) {
	var row model.Follow
	err := conn(ctx, r.DB).
		Scopes(activeScope(scope)).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Follow{}, domain.ErrFollowNotFound
		}
		return domain.Follow{}, err
	}
	return row.ToDomain(), nil
}

func (r *followRepository) HardDelete(ctx context.Context, followerID, followeeID int64) error {
	return runInTx(ctx, r.DB, func(tx *gorm.DB) error {
		row, exists, err := r.lockRow(tx, followerID, followeeID)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrFollowNotFound
		}
		if row.DeletedAt == nil {
			return domain.ErrNotSoftDeleted
		}
		return tx.Delete(&model.Follow{}, row.ID).Error
	})
}

// FetchFollowing 列出 userID 关注的人，Mutual 表示对方也关注了 userID
func (r *followRepository) FetchFollowing(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, error) {
	rows, err := r.fetchEdges(ctx, "follower_id", "followee_id", userID, cursor, num)
	if err != nil || len(rows) == 0 {
		return nil, err
	}

	others := make([]int64, len(rows))
	for i := range rows {
		others[i] = rows[i].FolloweeID
	}
	var back []int64
	err = conn(ctx, r.DB).
		Model(&model.Follow{}).
		Where("follower_id IN ? AND followee_id = ? AND deleted_at IS NULL", others, userID).
		Pluck("follower_id", &back).Error
	if err != nil {
		return nil, err
	}
	return toEntries(rows, others, back), nil
}

func (r *followRepository) FetchFollowers(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, error) {
	rows, err := r.fetchEdges(ctx, "followee_id", "follower_id", userID, cursor, num)
	if err != nil || len(rows) == 0 {
		return nil, err
	}

	others := make([]int64, len(rows))
	for i := range rows {
		others[i] = rows[i].FollowerID
	}
	var back []int64
	err = conn(ctx, r.DB).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id IN ? AND deleted_at IS NULL", userID, others).
		Pluck("followee_id", &back).Error
	if err != nil {
		return nil, err
	}
	return toEntries(rows, others, back), nil
}

// fetchEdges 按 (created_at, 对方 id) 倒序分页，对方 id 在同一个 userID 下唯一
func (r *followRepository) fetchEdges(ctx context.Context, col, otherCol string, userID int64, cursor string, num int64) ([]model.Follow, error) {
	db := conn(ctx, r.DB).Where(col+" = ? AND deleted_at IS NULL", userID)
	if cursor != "" {
		createdAt, otherID, err := repository.DecodeCursor(cursor)
		if err != nil {
			return nil, domain.ErrBadParamInput
		}
		db = db.Where("(created_at < ? OR (created_at = ? AND "+otherCol+" < ?))", createdAt, createdAt, otherID)
	}

	repository.PageVerify(&num)
	var rows []model.Follow
	err := db.Order("created_at DESC, " + otherCol + " DESC").Limit(int(num)).Find(&rows).Error
	return rows, err
}

func toEntries(rows []model.Follow, others, back []int64) []domain.FollowEntry {
	mutual := make(map[int64]bool, len(back))
	for _, id := range back {
		mutual[id] = true
	}
	res := make([]domain.FollowEntry, len(rows))
	for i := range rows {
		res[i] = domain.FollowEntry{
			UserID:     others[i],
			FollowedAt: rows[i].CreatedAt,
			Mutual:     mutual[others[i]],
		}
	}
	return res
}
