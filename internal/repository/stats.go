package repository

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-clean-forum/domain"
)

// statsRepository 协调层，协调缓存和数据库
type statsRepository struct {
	db            domain.CounterStore
	cache         domain.StatsCache
	loadGroup     singleflight.Group
	mu            sync.Mutex
	rebuildingMap map[domain.StatsKey]bool // 正在重建的 key
}

var _ domain.StatsRepository = (*statsRepository)(nil)

// NewStatsRepository 创建协调层repository
func NewStatsRepository(db domain.CounterStore, cache domain.StatsCache) *statsRepository {
	return &statsRepository{
		db:            db,
		cache:         cache,
		rebuildingMap: make(map[domain.StatsKey]bool),
	}
}

// GetPostStats 逻辑过期的缓存直接返回旧值并异步重建，未命中时用 singleflight 回源
func (r *statsRepository) GetPostStats(ctx context.Context, postID int64) (domain.PostStats, error) {
	stats, expired, err := r.cache.GetPostStats(ctx, postID)
	if err == nil {
		if expired {
			go r.rebuild(context.Background(), domain.StatsKey{Kind: domain.StatsPost, ID: postID})
		}
		return stats, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("post stats cache read failed for %d: %v", postID, err)
	}

	res, err, _ := r.loadGroup.Do("post:"+strconv.FormatInt(postID, 10), func() (any, error) {
		return r.loadPost(ctx, postID)
	})
	if err != nil {
		return domain.PostStats{}, err
	}
	return res.(domain.PostStats), nil
}

func (r *statsRepository) GetUserStats(ctx context.Context, userID int64) (domain.UserStats, error) {
	stats, expired, err := r.cache.GetUserStats(ctx, userID)
	if err == nil {
		if expired {
			go r.rebuild(context.Background(), domain.StatsKey{Kind: domain.StatsUser, ID: userID})
		}
		return stats, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("user stats cache read failed for %d: %v", userID, err)
	}

	res, err, _ := r.loadGroup.Do("user:"+strconv.FormatInt(userID, 10), func() (any, error) {
		return r.loadUser(ctx, userID)
	})
	if err != nil {
		return domain.UserStats{}, err
	}
	return res.(domain.UserStats), nil
}

func (r *statsRepository) loadPost(ctx context.Context, postID int64) (domain.PostStats, error) {
	stats, err := r.db.GetPostStats(ctx, postID)
	if err != nil {
		return domain.PostStats{}, err
	}
	if err := r.cache.SetPostStats(ctx, stats); err != nil {
		logrus.Warnf("failed to cache post stats %d: %v", postID, err)
	}
	return stats, nil
}

func (r *statsRepository) loadUser(ctx context.Context, userID int64) (domain.UserStats, error) {
	stats, err := r.db.GetUserStats(ctx, userID)
	if err != nil {
		return domain.UserStats{}, err
	}
	if err := r.cache.SetUserStats(ctx, stats); err != nil {
		logrus.Warnf("failed to cache user stats %d: %v", userID, err)
	}
	return stats, nil
}

// rebuild 异步重建缓存，同一个 key 同时只有一个在跑
func (r *statsRepository) rebuild(ctx context.Context, key domain.StatsKey) {
	r.mu.Lock()
	if r.rebuildingMap[key] {
		r.mu.Unlock()
		return
	}
	r.rebuildingMap[key] = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		delete(r.rebuildingMap, key)
		r.mu.Unlock()
	}()

	var err error
	switch key.Kind {
	case domain.StatsPost:
		_, err = r.loadPost(ctx, key.ID)
	case domain.StatsUser:
		_, err = r.loadUser(ctx, key.ID)
	}
	if err != nil {
		logrus.Errorf("rebuild %s failed: %v", key, err)
	}
}
