package workers

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	DefaultFlushInterval = time.Second
	DefaultBatchSize     = 100

	queueSize = 1024
)

type statsInvalidator struct {
	cache     domain.StatsCache
	ch        chan domain.StatsKey
	interval  time.Duration
	batchSize int
}

var _ domain.StatsInvalidator = (*statsInvalidator)(nil)

func NewStatsInvalidator(cache domain.StatsCache, interval time.Duration, batchSize int) *statsInvalidator {
	if interval <= 0 {
		interval = DefaultFlushInterval
	}
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &statsInvalidator{
		cache:     cache,
		ch:        make(chan domain.StatsKey, queueSize),
		interval:  interval,
		batchSize: batchSize,
	}
}

// Send 队列满时丢弃，缓存会在逻辑过期后自行重建
func (s *statsInvalidator) Send(keys ...domain.StatsKey) {
	for _, key := range keys {
		select {
		case s.ch <- key:
		default:
			logrus.Warnf("StatsInvalidator's channel is full, key %s dropped", key)
		}
	}
}

// Start blocks until ctx is done, then flushes whatever is still queued.
func (s *statsInvalidator) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	batch := make([]domain.StatsKey, 0, s.batchSize)
	for {
		select {
		case key := <-s.ch:
			batch = append(batch, key)
			if len(batch) == s.batchSize {
				s.flush(ctx, batch)
				batch = make([]domain.StatsKey, 0, s.batchSize)
			}
		case <-ticker.C:
			s.flush(ctx, batch)
			batch = make([]domain.StatsKey, 0, s.batchSize)
		case <-ctx.Done():
			logrus.Info("shutting down StatsInvalidator, flushing remain keys...")
		drain:
			for {
				select {
				case key := <-s.ch:
					batch = append(batch, key)
				default:
					break drain
				}
			}
			// ctx 已取消，换一个带超时的 ctx 完成最后一次删除
			flushCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			s.flush(flushCtx, batch)
			cancel()
			return
		}
	}
}

func (s *statsInvalidator) flush(ctx context.Context, batch []domain.StatsKey) {
	if len(batch) == 0 {
		return
	}
	seen := make(map[domain.StatsKey]bool, len(batch))
	keys := make([]domain.StatsKey, 0, len(batch))
	for _, key := range batch {
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	if err := s.cache.Delete(ctx, keys); err != nil {
		logrus.Warnf("failed to invalidate %d stats keys: %v", len(keys), err)
	}
}
