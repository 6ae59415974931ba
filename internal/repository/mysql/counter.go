package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository/mysql/model"
)

type counterRepository struct {
	DB *gorm.DB
}

var _ domain.CounterStore = (*counterRepository)(nil)

func NewCounterRepository(db *gorm.DB) *counterRepository {
	return &counterRepository{DB: db}
}

func (r *counterRepository) AddPostComments(ctx context.Context, postID int64, step int64) error {
	return r.upsert(ctx, &model.PostStats{PostID: postID, CommentCount: floor(step)}, "comment_count", step)
}

func (r *counterRepository) AddPostLikes(ctx context.Context, postID int64, step int64) error {
	return r.upsert(ctx, &model.PostStats{PostID: postID, LikeCount: floor(step)}, "like_count", step)
}

func (r *counterRepository) AddUserFollowing(ctx context.Context, userID int64, step int64) error {
	return r.upsert(ctx, &model.UserStats{UserID: userID, FollowingCount: floor(step)}, "following_count", step)
}

func (r *counterRepository) AddUserFollowers(ctx context.Context, userID int64, step int64) error {
	return r.upsert(ctx, &model.UserStats{UserID: userID, FollowersCount: floor(step)}, "followers_count", step)
}

// upsert: INSERT ... ON DUPLICATE KEY UPDATE col = GREATEST(col + step, 0)
func (r *counterRepository) upsert(ctx context.Context, row any, col string, step int64) error {
	if step == 0 {
		return nil
	}
	return conn(ctx, r.DB).Clauses(clause.OnConflict{
		DoUpdates: clause.Assignments(map[string]any{
			col: gorm.Expr("GREATEST("+col+" + ?, 0)", step),
		}),
	}).Create(row).Error
}

func (r *counterRepository) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, error) {
	var row model.PostStats
	err := conn(ctx, r.DB).Take(&row, "post_id = ?", postID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PostStats{PostID: postID}, nil
	}
	if err != nil {
		return domain.PostStats{}, err
	}
	return row.ToDomain(), nil
}

func (r *counterRepository) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, error) {
	var row model.UserStats
	err := conn(ctx, r.DB).Take(&row, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserStats{UserID: userID}, nil
	}
	if err != nil {
		return domain.UserStats{}, err
	}
	return row.ToDomain(), nil
}

func floor(step int64) int64 {
	if step < 0 {
		return 0
	}
	return step
}
