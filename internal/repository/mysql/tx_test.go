package mysql

import (
	"context"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-clean-forum/domain"
)

func TestWithTransaction(t *testing.T) {
	t.Run("repositories join the transaction", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := NewTransactor(db, 3)
		comments := NewCommentRepository(db)
		counters := NewCounterRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `comments` SET `comment_count`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `post_stats`.*ON DUPLICATE KEY UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tx.WithTransaction(context.Background(), func(ctx context.Context) error {
			if err := comments.UpdateChildCount(ctx, 1, 1); err != nil {
				return err
			}
			// nested calls reuse the outer transaction
			return tx.WithTransaction(ctx, func(ctx context.Context) error {
				return counters.AddPostComments(ctx, 9, 1)
			})
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("business errors roll back and are not retried", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := NewTransactor(db, 3)

		mock.ExpectBegin()
		mock.ExpectRollback()

		calls := 0
		err := tx.WithTransaction(context.Background(), func(ctx context.Context) error {
			calls++
			return domain.ErrAlreadyLiked
		})
		assert.ErrorIs(t, err, domain.ErrAlreadyLiked)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("deadlocks are retried", func(t *testing.T) {
		db, mock := newMockDB(t)
		tx := NewTransactor(db, 3)
		comments := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `comments`").WillReturnError(&mysqldrv.MySQLError{Number: 1213, Message: "Deadlock found"})
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE `comments`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		calls := 0
		err := tx.WithTransaction(context.Background(), func(ctx context.Context) error {
			calls++
			return comments.UpdateLikeCount(ctx, 1, 1)
		})
		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestErrorClassification(t *testing.T) {
	assert.True(t, isRetryable(&mysqldrv.MySQLError{Number: 1205}))
	assert.True(t, isRetryable(&mysqldrv.MySQLError{Number: 1213}))
	assert.False(t, isRetryable(&mysqldrv.MySQLError{Number: 1062}))
	assert.True(t, isDuplicate(&mysqldrv.MySQLError{Number: 1062}))
	assert.False(t, isDuplicate(domain.ErrConflict))
}
