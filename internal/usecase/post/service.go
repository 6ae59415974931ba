package post

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/metrics"
)

// bloomBatch 初始化布隆过滤器时每批读取的 id 数
const bloomBatch = 1000

type service struct {
	tx      domain.Transactor
	posts   domain.PostRepository
	users   domain.UserRepository
	bloom   domain.BloomRepository
	ids     domain.IDGenerator
	metrics *metrics.Collector
	now     func() time.Time
}

var _ domain.PostUsecase = (*service)(nil)

type Deps struct {
	Tx      domain.Transactor
	Posts   domain.PostRepository
	Users   domain.UserRepository
	Bloom   domain.BloomRepository
	IDs     domain.IDGenerator
	Metrics *metrics.Collector
}

func NewService(d Deps) *service {
	return &service{
		tx:      d.Tx,
		posts:   d.Posts,
		users:   d.Users,
		bloom:   d.Bloom,
		ids:     d.IDs,
		metrics: d.Metrics,
		now:     time.Now,
	}
}

// Store 新帖子进入待审核状态，写库成功后加入布隆过滤器
func (s *service) Store(ctx context.Context, p *domain.Post) error {
	if p.AuthorID <= 0 || strings.TrimSpace(p.Title) == "" {
		return domain.ErrBadParamInput
	}
	ok, err := s.users.Exists(ctx, p.AuthorID)
	if err != nil {
		return err
	}
	if !ok {
		s.metrics.RecordRejection("create_post", domain.ErrUserNotFound)
		return domain.ErrUserNotFound
	}

	p.ID = s.ids.NextID()
	p.ReviewStatus = domain.ReviewPending
	p.ReviewedAt, p.DeletedAt = nil, nil
	if err := s.posts.Store(ctx, p); err != nil {
		return err
	}

	if err := s.bloom.Add(ctx, p.ID); err != nil {
		// 漏加会让后续请求被误判为不存在，只能靠重启时全量重建
		logrus.Errorf("failed to add post %d to bloom filter: %v", p.ID, err)
	}
	logrus.Infof("created post %d by user %d", p.ID, p.AuthorID)
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64, scope domain.Scope) (domain.Post, error) {
	exists, err := s.bloom.Exists(ctx, id)
	if err == nil && !exists {
		logrus.Warnf("bloom filter says post %d does not exist", id)
		return domain.Post{}, domain.ErrPostNotFound
	}
	return s.posts.GetByID(ctx, id, scope)
}

func (s *service) Review(ctx context.Context, id int64, status domain.ReviewStatus) (domain.Post, error) {
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.posts.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := domain.CheckReviewTransition(p.ReviewStatus, status); err != nil {
			return err
		}
		return s.posts.UpdateReview(ctx, id, status, s.now())
	})
	if err != nil {
		s.metrics.RecordRejection("review_post", err)
		return domain.Post{}, err
	}

	logrus.Infof("reviewed post %d as %s", id, status)
	return s.posts.GetByID(ctx, id, domain.ScopeAdmin)
}

// InitBloomFilter 启动时把所有帖子 id 写入布隆过滤器
func (s *service) InitBloomFilter(ctx context.Context) error {
	var (
		cursor int64
		total  int
	)
	for {
		ids, err := s.posts.FetchIDs(ctx, cursor, bloomBatch)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			break
		}
		if err := s.bloom.BulkAdd(ctx, ids); err != nil {
			return err
		}
		total += len(ids)
		cursor = ids[len(ids)-1]
		if len(ids) < bloomBatch {
			break
		}
	}
	logrus.Infof("bloom filter initialized with %d posts", total)
	return nil
}
