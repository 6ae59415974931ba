package follow

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/metrics"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

type service struct {
	tx          domain.Transactor
	follows     domain.FollowRepository
	users       domain.UserRepository
	counters    domain.CounterStore
	ids         domain.IDGenerator
	invalidator domain.StatsInvalidator
	metrics     *metrics.Collector
}

var _ domain.FollowUsecase = (*service)(nil)

type Deps struct {
	Tx          domain.Transactor
	Follows     domain.FollowRepository
	Users       domain.UserRepository
	Counters    domain.CounterStore
	IDs         domain.IDGenerator
	Invalidator domain.StatsInvalidator
	Metrics     *metrics.Collector
}

func NewService(d Deps) *service {
	return &service{
		tx:          d.Tx,
		follows:     d.Follows,
		users:       d.Users,
		counters:    d.Counters,
		ids:         d.IDs,
		invalidator: d.Invalidator,
		metrics:     d.Metrics,
	}
}

func (s *service) Follow(ctx context.Context, followerID, followeeID int64) (domain.Follow, error) {
	if followerID <= 0 || followeeID <= 0 {
		return domain.Follow{}, domain.ErrBadParamInput
	}
	// 关注自己直接拒绝，不查库
	if followerID == followeeID {
		s.metrics.RecordRejection("follow", domain.ErrFollowSelf)
		return domain.Follow{}, domain.ErrFollowSelf
	}

	f := domain.Follow{
		ID:         s.ids.NextID(),
		FollowerID: followerID,
		FolloweeID: followeeID,
	}
	var tr domain.LedgerTransition
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		for _, id := range []int64{followerID, followeeID} {
			ok, err := s.users.Exists(ctx, id)
			if err != nil {
				return err
			}
			if !ok {
				return domain.ErrUserNotFound
			}
		}

		var err error
		tr, err = s.follows.Follow(ctx, &f)
		if err != nil {
			return err
		}
		return s.step(ctx, followerID, followeeID, tr.Step())
	})
	if err != nil {
		s.metrics.RecordRejection("follow", err)
		return domain.Follow{}, err
	}

	s.after(followerID, followeeID, tr)
	logrus.Infof("user %d followed user %d (%s)", followerID, followeeID, tr)
	return f, nil
}

func (s *service) Unfollow(ctx context.Context, followerID, followeeID int64) (bool, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.follows.Unfollow(ctx, followerID, followeeID); err != nil {
			return err
		}
		return s.step(ctx, followerID, followeeID, domain.LedgerSoftDelete.Step())
	})
	if err != nil {
		s.metrics.RecordRejection("unfollow", err)
		return false, err
	}

	s.after(followerID, followeeID, domain.LedgerSoftDelete)
	logrus.Infof("user %d unfollowed user %d", followerID, followeeID)
	return true, nil
}

func (s *service) step(ctx context.Context, followerID, followeeID, step int64) error {
	if err := s.counters.AddUserFollowing(ctx, followerID, step); err != nil {
		return err
	}
	return s.counters.AddUserFollowers(ctx, followeeID, step)
}

func (s *service) after(followerID, followeeID int64, tr domain.LedgerTransition) {
	s.metrics.RecordLedger("follow", tr)
	s.metrics.RecordCounterStep("user_following", tr.Step())
	s.metrics.RecordCounterStep("user_followers", tr.Step())
	s.invalidator.Send(
		domain.StatsKey{Kind: domain.StatsUser, ID: followerID},
		domain.StatsKey{Kind: domain.StatsUser, ID: followeeID},
	)
}

func (s *service) Get(ctx context.Context, followerID, followeeID int64, scope domain.Scope) (domain.Follow, error) {
	return s.follows.Get(ctx, followerID, followeeID, scope)
}

// HardDelete 只能删除已取消的关注，计数在取消时已经调整过
func (s *service) HardDelete(ctx context.Context, followerID, followeeID int64) (bool, error) {
	if err := s.follows.HardDelete(ctx, followerID, followeeID); err != nil {
		s.metrics.RecordRejection("hard_delete_follow", err)
		return false, err
	}
	logrus.Infof("hard-deleted follow %d -> %d", followerID, followeeID)
	return true, nil
}

func (s *service) FetchFollowing(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, string, error) {
	if err := s.mustUser(ctx, userID); err != nil {
		return nil, "", err
	}
	res, err := s.follows.FetchFollowing(ctx, userID, cursor, num)
	if err != nil {
		return nil, "", err
	}
	return page(res)
}

func (s *service) FetchFollowers(ctx context.Context, userID int64, cursor string, num int64) ([]domain.FollowEntry, string, error) {
	if err := s.mustUser(ctx, userID); err != nil {
		return nil, "", err
	}
	res, err := s.follows.FetchFollowers(ctx, userID, cursor, num)
	if err != nil {
		return nil, "", err
	}
	return page(res)
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

func page(res []domain.FollowEntry) ([]domain.FollowEntry, string, error) {
	if len(res) == 0 {
		return []domain.FollowEntry{}, "", nil
	}
	return res, repository.EncodeCursor(res[len(res)-1].FollowedAt, res[len(res)-1].UserID), nil
}
