package workers_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/domain/mocks"
	"github.com/Guyuepp/go-clean-forum/internal/workers"
)

var (
	keyA = domain.StatsKey{Kind: domain.StatsPost, ID: 1}
	keyB = domain.StatsKey{Kind: domain.StatsUser, ID: 2}
)

func TestStatsInvalidatorTickerFlush(t *testing.T) {
	cache := new(mocks.StatsCache)
	done := make(chan struct{})
	cache.On("Delete", mock.Anything, []domain.StatsKey{keyA, keyB}).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	w := workers.NewStatsInvalidator(cache, 10*time.Millisecond, 100)
	w.Send(keyA, keyA, keyB)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(stopped)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("keys were not flushed")
	}
	cancel()
	<-stopped
	cache.AssertExpectations(t)
}

func TestStatsInvalidatorBatchFull(t *testing.T) {
	cache := new(mocks.StatsCache)
	done := make(chan struct{})
	cache.On("Delete", mock.Anything, []domain.StatsKey{keyA, keyB}).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil).Once()

	w := workers.NewStatsInvalidator(cache, time.Hour, 2)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)
	w.Send(keyA, keyB)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("full batch was not flushed")
	}
}

func TestStatsInvalidatorFlushOnShutdown(t *testing.T) {
	cache := new(mocks.StatsCache)
	cache.On("Delete", mock.Anything, []domain.StatsKey{keyA, keyB}).
		Return(errors.New("redis down")).Once()

	w := workers.NewStatsInvalidator(cache, time.Hour, 100)
	w.Send(keyA, keyB, keyA)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.Start(ctx)

	cache.AssertExpectations(t)
}

func TestStatsInvalidatorIdle(t *testing.T) {
	cache := new(mocks.StatsCache)
	w := workers.NewStatsInvalidator(cache, 5*time.Millisecond, 100)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	w.Start(ctx)

	assert.True(t, cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything))
}
