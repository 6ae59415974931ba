package comment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/metrics"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

// errNoop aborts a transaction whose target is already in the requested state.
var errNoop = errors.New("comment already in requested state")

type service struct {
	tx          domain.Transactor
	comments    domain.CommentRepository
	posts       domain.PostRepository
	users       domain.UserRepository
	counters    domain.CounterStore
	bloom       domain.BloomRepository
	ids         domain.IDGenerator
	invalidator domain.StatsInvalidator
	metrics     *metrics.Collector
	now         func() time.Time
}

var _ domain.CommentUsecase = (*service)(nil)

type Deps struct {
	Tx          domain.Transactor
	Comments    domain.CommentRepository
	Posts       domain.PostRepository
	Users       domain.UserRepository
	Counters    domain.CounterStore
	Bloom       domain.BloomRepository
	IDs         domain.IDGenerator
	Invalidator domain.StatsInvalidator
	Metrics     *metrics.Collector
}

func NewService(d Deps) *service {
	return &service{
		tx:          d.Tx,
		comments:    d.Comments,
		posts:       d.Posts,
		users:       d.Users,
		counters:    d.Counters,
		bloom:       d.Bloom,
		ids:         d.IDs,
		invalidator: d.Invalidator,
		metrics:     d.Metrics,
		now:         time.Now,
	}
}

// mustExists 布隆过滤器只用于快速否定，出错时放行交给数据库判断
func (s *service) mustExists(ctx context.Context, postID int64) error {
	exists, err := s.bloom.Exists(ctx, postID)
	if err != nil {
		logrus.Warnf("bloom filter check for post %d failed: %v", postID, err)
		return nil
	}
	if !exists {
		logrus.Warnf("bloom filter says post %d does not exist", postID)
		return domain.ErrPostNotFound
	}
	return nil
}

func (s *service) Create(ctx context.Context, c *domain.Comment) error {
	if c.PostID <= 0 || c.AuthorID <= 0 || c.ParentID < 0 || strings.TrimSpace(c.Content) == "" {
		return domain.ErrBadParamInput
	}
	if err := s.mustExists(ctx, c.PostID); err != nil {
		s.metrics.RecordRejection("create_comment", err)
		return err
	}

	var steps domain.CounterSteps
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		ok, err := s.users.Exists(ctx, c.AuthorID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrUserNotFound
		}

		open, err := s.posts.IsOpen(ctx, c.PostID)
		if err != nil {
			return err
		}
		if !open {
			return domain.ErrPostNotFound
		}

		c.ID = s.ids.NextID()
		if c.ParentID == 0 {
			c.RootID = c.ID
		} else {
			// 锁住父评论，和并发的删除/恢复串行
			parent, err := s.comments.GetForUpdate(ctx, c.ParentID)
			if err != nil {
				return err
			}
			if !parent.VisibleIn(domain.ScopeUser) {
				return domain.ErrCommentNotFound
			}
			if parent.PostID != c.PostID {
				return domain.ErrBadParamInput
			}
			if c.RootID != 0 && c.RootID != parent.RootID {
				return domain.ErrBadParamInput
			}
			c.RootID = parent.RootID
		}

		c.CommentCount, c.LikeCount = 0, 0
		c.Status = domain.CommentNormal
		c.ReviewStatus = domain.ReviewPending
		c.ReviewedAt, c.DeletedAt = nil, nil
		if err := s.comments.Store(ctx, c); err != nil {
			return err
		}

		steps = domain.CreateSteps(*c)
		return s.applySteps(ctx, *c, steps)
	})
	if err != nil {
		s.metrics.RecordRejection("create_comment", err)
		return err
	}

	s.afterSteps(*c, steps)
	logrus.Infof("created comment %d on post %d by user %d", c.ID, c.PostID, c.AuthorID)
	return nil
}

// applySteps must run inside the transaction that changed c.
func (s *service) applySteps(ctx context.Context, c domain.Comment, steps domain.CounterSteps) error {
	if steps.Post != 0 {
		if err := s.counters.AddPostComments(ctx, c.PostID, steps.Post); err != nil {
			return err
		}
	}
	if steps.Parent != 0 {
		if err := s.comments.UpdateChildCount(ctx, c.ParentID, steps.Parent); err != nil {
			return err
		}
	}
	if steps.Root != 0 {
		if err := s.comments.UpdateChildCount(ctx, c.RootID, steps.Root); err != nil {
			return err
		}
	}
	return nil
}

// afterSteps runs once the transaction committed.
func (s *service) afterSteps(c domain.Comment, steps domain.CounterSteps) {
	s.metrics.RecordCounterStep("post_comments", steps.Post)
	s.metrics.RecordCounterStep("comment_children", steps.Parent+steps.Root)
	if steps.Post != 0 {
		s.invalidator.Send(domain.StatsKey{Kind: domain.StatsPost, ID: c.PostID})
	}
}

func (s *service) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Comment, error) {
	return s.comments.GetByID(ctx, id, scope)
}

func (s *service) GetThread(ctx context.Context, id int64, scope domain.Scope) ([]domain.Comment, error) {
	c, err := s.comments.GetByID(ctx, id, scope)
	if err != nil {
		return nil, err
	}
	return s.comments.ListByRoot(ctx, c.RootID, scope)
}

func (s *service) GetSubtree(ctx context.Context, id int64, scope domain.Scope) ([]domain.Comment, error) {
	if _, err := s.comments.GetByID(ctx, id, scope); err != nil {
		return nil, err
	}
	return s.comments.ListSubtree(ctx, id, scope)
}

func (s *service) FetchByPost(ctx context.Context, postID int64, scope domain.Scope, cursor string, num int64) ([]domain.Comment, string, error) {
	if err := s.mustExists(ctx, postID); err != nil {
		return nil, "", err
	}
	if _, err := s.posts.GetByID(ctx, postID, scope); err != nil {
		return nil, "", err
	}

	res, err := s.comments.FetchByPost(ctx, postID, scope, cursor, num)
	if err != nil {
		return nil, "", err
	}
	if len(res) == 0 {
		return []domain.Comment{}, "", nil
	}
	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt, res[len(res)-1].ID), nil
}

func (s *service) Review(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Comment, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.comments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := domain.CheckReviewTransition(c.ReviewStatus, status); err != nil {
			return err
		}
		return s.comments.UpdateReview(ctx, id, status, s.now())
	})
	if err != nil {
		s.metrics.RecordRejection("review_comment", err)
		return domain.Comment{}, err
	}

	logrus.Infof("reviewed comment %d as %s", id, status)
	return s.comments.GetByID(ctx, id, domain.ScopeAdmin)
}

func (s *service) SetStatus(ctx context.Context, id int64, status domain.CommentStatus) (domain.Comment, error) {
	if !status.Valid() {
		return domain.Comment{}, domain.ErrBadParamInput
	}
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.comments.GetForUpdate(ctx, id); err != nil {
			return err
		}
		return s.comments.UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return domain.Comment{}, err
	}

	logrus.Infof("set comment %d display status to %s", id, status)
	return s.comments.GetByID(ctx, id, domain.ScopeAdmin)
}

// SoftDelete 不级联到子评论，只按层级调整计数
// 评论不存在或已删除时返回 false，计数不变
func (s *service) SoftDelete(ctx context.Context, id int64) (bool, error) {
	return s.toggle(ctx, id, true)
}

func (s *service) Restore(ctx context.Context, id int64) (bool, error) {
	return s.toggle(ctx, id, false)
}

func (s *service) toggle(ctx context.Context, id int64, remove bool) (bool, error) {
	var (
		target domain.Comment
		steps  domain.CounterSteps
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.comments.GetForUpdate(ctx, id)
		if errors.Is(err, domain.ErrCommentNotFound) {
			return errNoop
		}
		if err != nil {
			return err
		}
		if c.IsSoftDeleted() == remove {
			return errNoop
		}

		if remove {
			err = s.comments.SoftDelete(ctx, id)
			steps = domain.RemovalSteps(c)
		} else {
			err = s.comments.Restore(ctx, id)
			steps = domain.RestoreSteps(c)
		}
		if err != nil {
			return err
		}
		target = c
		return s.applySteps(ctx, c, steps)
	})
	if errors.Is(err, errNoop) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	s.afterSteps(target, steps)
	if remove {
		logrus.Infof("soft-deleted comment %d (%s), post %d steps %d", id, target.Depth(), target.PostID, steps.Post)
	} else {
		logrus.Infof("restored comment %d (%s), post %d steps %d", id, target.Depth(), target.PostID, steps.Post)
	}
	return true, nil
}

// HardDelete only removes rows that were soft-deleted before, so the counters
// already reflect the removal.
func (s *service) HardDelete(ctx context.Context, id int64) (bool, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.comments.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if !c.IsSoftDeleted() {
			return domain.ErrNotSoftDeleted
		}
		return s.comments.HardDelete(ctx, id)
	})
	if err != nil {
		s.metrics.RecordRejection("hard_delete_comment", err)
		return false, err
	}

	logrus.Infof("hard-deleted comment %d", id)
	return true, nil
}
