package mysql

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-clean-forum/domain"
)

const (
	errDuplicateEntry  = 1062
	errLockWaitTimeout = 1205
	errDeadlock        = 1213
)

type txKey struct{}

type transactor struct {
	DB          *gorm.DB
	maxAttempts uint
}

var _ domain.Transactor = (*transactor)(nil)

// NewTransactor 整个闭包在死锁或锁等待超时时重试，其他错误直接返回
func NewTransactor(db *gorm.DB, maxAttempts uint) *transactor {
	if maxAttempts == 0 {
		maxAttempts = 1
	}
	return &transactor{DB: db, maxAttempts: maxAttempts}
}

func (t *transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	return retry.Do(
		func() error {
			return t.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
				return fn(context.WithValue(ctx, txKey{}, tx))
			})
		},
		retry.Attempts(t.maxAttempts),
		retry.Delay(20*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			logrus.Warnf("transaction attempt %d failed, retrying: %v", n+1, err)
		}),
	)
}

// conn returns the transaction carried by ctx, or db bound to ctx.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// runInTx joins the transaction carried by ctx or opens a new one.
func runInTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(tx)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func mysqlErrNumber(err error) uint16 {
	var me *mysqldrv.MySQLError
	if errors.As(err, &me) {
		return me.Number
	}
	return 0
}

func isRetryable(err error) bool {
	n := mysqlErrNumber(err)
	return n == errDeadlock || n == errLockWaitTimeout
}

func isDuplicate(err error) bool {
	return mysqlErrNumber(err) == errDuplicateEntry
}
