package like

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/metrics"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

type service struct {
	tx          domain.Transactor
	likes       domain.LikeRepository
	posts       domain.PostRepository
	comments    domain.CommentRepository
	users       domain.UserRepository
	counters    domain.CounterStore
	bloom       domain.BloomRepository
	ids         domain.IDGenerator
	invalidator domain.StatsInvalidator
	metrics     *metrics.Collector
}

var _ domain.LikeUsecase = (*service)(nil)

type Deps struct {
	Tx          domain.Transactor
	Likes       domain.LikeRepository
	Posts       domain.PostRepository
	Comments    domain.CommentRepository
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
		likes:       d.Likes,
		posts:       d.Posts,
		comments:    d.Comments,
		users:       d.Users,
		counters:    d.Counters,
		bloom:       d.Bloom,
		ids:         d.IDs,
		invalidator: d.Invalidator,
		metrics:     d.Metrics,
	}
}

func (s *service) Like(ctx context.Context, userID int64, targetType domain.TargetType, targetID int64) (domain.Like, error) {
	if userID <= 0 || targetID <= 0 || !targetType.Valid() {
		return domain.Like{}, domain.ErrBadParamInput
	}
	if targetType == domain.TargetPost {
		if exists, err := s.bloom.Exists(ctx, targetID); err == nil && !exists {
			s.metrics.RecordRejection("like", domain.ErrTargetNotFound)
			return domain.Like{}, domain.ErrTargetNotFound
		}
	}

	l := domain.Like{
		ID:         s.ids.NextID(),
		UserID:     userID,
		TargetType: targetType,
		TargetID:   targetID,
	}
	var tr domain.LedgerTransition
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.mustUser(ctx, userID); err != nil {
			return err
		}
		if err := s.mustTarget(ctx, targetType, targetID); err != nil {
			return err
		}

		var err error
		tr, err = s.likes.Like(ctx, &l)
		if err != nil {
			return err
		}
		return s.step(ctx, targetType, targetID, tr.Step())
	})
	if err != nil {
		s.metrics.RecordRejection("like", err)
		return domain.Like{}, err
	}

	s.after(targetType, targetID, tr)
	logrus.Infof("user %d liked %s %d (%s)", userID, targetType, targetID, tr)
	return l, nil
}

func (s *service) Unlike(ctx context.Context, userID int64, targetType domain.TargetType, targetID int64) (bool, error) {
	if !targetType.Valid() {
		return false, domain.ErrBadParamInput
	}

	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.mustUser(ctx, userID); err != nil {
			return err
		}
		if err := s.likes.Unlike(ctx, userID, targetType, targetID); err != nil {
			return err
		}
		return s.step(ctx, targetType, targetID, domain.LedgerSoftDelete.Step())
	})
	if err != nil {
		s.metrics.RecordRejection("unlike", err)
		return false, err
	}

	s.after(targetType, targetID, domain.LedgerSoftDelete)
	logrus.Infof("user %d unliked %s %d", userID, targetType, targetID)
	return true, nil
}

func (s *service) mustUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrUserNotFound
	}
	return nil
}

// mustTarget 目标必须对普通用户可见
func (s *service) mustTarget(ctx context.Context, targetType domain.TargetType, targetID int64) error {
	switch targetType {
	case domain.TargetPost:
		open, err := s.posts.IsOpen(ctx, targetID)
		if err != nil {
			return err
		}
		if !open {
			return domain.ErrTargetNotFound
		}
		return nil
	case domain.TargetComment:
		_, err := s.comments.GetByID(ctx, targetID, domain.ScopeUser)
		if errors.Is(err, domain.ErrCommentNotFound) {
			return domain.ErrTargetNotFound
		}
		return err
	default:
		return domain.ErrBadParamInput
	}
}

func (s *service) step(ctx context.Context, targetType domain.TargetType, targetID, step int64) error {
	if targetType == domain.TargetPost {
		return s.counters.AddPostLikes(ctx, targetID, step)
	}
	return s.comments.UpdateLikeCount(ctx, targetID, step)
}

func (s *service) after(targetType domain.TargetType, targetID int64, tr domain.LedgerTransition) {
	s.metrics.RecordLedger("like", tr)
	if targetType == domain.TargetPost {
		s.metrics.RecordCounterStep("post_likes", tr.Step())
		s.invalidator.Send(domain.StatsKey{Kind: domain.StatsPost, ID: targetID})
		return
	}
	s.metrics.RecordCounterStep("comment_likes", tr.Step())
}

func (s *service) FetchByTarget(ctx context.Context, targetType domain.TargetType, targetID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, string, error) {
	if !targetType.Valid() {
		return nil, "", domain.ErrBadParamInput
	}
	res, err := s.likes.FetchByTarget(ctx, targetType, targetID, scope, cursor, num)
	if err != nil {
		return nil, "", err
	}
	return page(res)
}

func (s *service) FetchByUser(ctx context.Context, userID int64, scope domain.Scope, cursor string, num int64) ([]domain.Like, string, error) {
	res, err := s.likes.FetchByUser(ctx, userID, scope, cursor, num)
	if err != nil {
		return nil, "", err
	}
	return page(res)
}

func page(res []domain.Like) ([]domain.Like, string, error) {
	if len(res) == 0 {
		return []domain.Like{}, "", nil
	}
	return res, repository.EncodeCursor(res[len(res)-1].CreatedAt, res[len(res)-1].ID), nil
}
