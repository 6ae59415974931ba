package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

var followColumns = []string{"id", "follower_id", "followee_id", "created_at", "updated_at", "deleted_at"}

const lockFollowQuery = "SELECT \\* FROM `follows` WHERE follower_id = \\? AND followee_id = \\? .*FOR UPDATE"

func TestFollowLedger(t *testing.T) {
	earlier := time.Now().Add(-time.Hour)

	t.Run("insert", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockFollowQuery).WillReturnRows(sqlmock.NewRows(followColumns))
		mock.ExpectExec("INSERT INTO `follows`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		f := &domain.Follow{ID: 8, FollowerID: 1, FolloweeID: 2}
		tr, err := repo.Follow(context.Background(), f)
		require.NoError(t, err)
		assert.Equal(t, domain.LedgerInsert, tr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already following", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockFollowQuery).WillReturnRows(sqlmock.NewRows(followColumns).
			AddRow(8, 1, 2, earlier, earlier, nil))
		mock.ExpectRollback()

		_, err := repo.Follow(context.Background(), &domain.Follow{FollowerID: 1, FolloweeID: 2})
		assert.ErrorIs(t, err, domain.ErrAlreadyFollowing)
	})

	t.Run("unfollow without edge", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockFollowQuery).WillReturnRows(sqlmock.NewRows(followColumns))
		mock.ExpectRollback()

		err := repo.Unfollow(context.Background(), 1, 2)
		assert.ErrorIs(t, err, domain.ErrNotFollowing)
	})
}

func TestFollowHardDelete(t *testing.T) {
	earlier := time.Now().Add(-time.Hour)

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockFollowQuery).WillReturnRows(sqlmock.NewRows(followColumns))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.HardDelete(context.Background(), 1, 2), domain.ErrFollowNotFound)
	})

	t.Run("active", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockFollowQuery).WillReturnRows(sqlmock.NewRows(followColumns).
			AddRow(8, 1, 2, earlier, earlier, nil))
		mock.ExpectRollback()

		assert.ErrorIs(t, repo.HardDelete(context.Background(), 1, 2), domain.ErrNotSoftDeleted)
	})

	t.Run("soft-deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewFollowRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery(lockFollowQuery).WillReturnRows(sqlmock.NewRows(followColumns).
			AddRow(8, 1, 2, earlier, earlier, earlier))
		mock.ExpectExec("DELETE FROM `follows` WHERE `follows`.`id` = \\?").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.HardDelete(context.Background(), 1, 2))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFollowGet(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `follows` WHERE \\(follower_id = \\? AND followee_id = \\?\\) AND deleted_at IS NULL").
		WillReturnRows(sqlmock.NewRows(followColumns))

	_, err := repo.Get(context.Background(), 1, 2, domain.ScopeUser)
	assert.ErrorIs(t, err, domain.ErrFollowNotFound)
}

func TestFetchFollowingMarksMutual(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `follows` WHERE follower_id = \\? AND deleted_at IS NULL ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(followColumns).
			AddRow(1, 7, 2, now, now, nil).
			AddRow(2, 7, 3, now.Add(-time.Minute), now, nil))
	mock.ExpectQuery("SELECT `follower_id` FROM `follows` WHERE follower_id IN \\(\\?,\\?\\) AND followee_id = \\? AND deleted_at IS NULL").
		WillReturnRows(sqlmock.NewRows([]string{"follower_id"}).AddRow(3))

	res, err := repo.FetchFollowing(context.Background(), 7, "", 10)
	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.EqualValues(t, 2, res[0].UserID)
	assert.False(t, res[0].Mutual)
	assert.EqualValues(t, 3, res[1].UserID)
	assert.True(t, res[1].Mutual)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFollowersEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)

	mock.ExpectQuery("SELECT \\* FROM `follows` WHERE followee_id = \\? AND deleted_at IS NULL").
		WillReturnRows(sqlmock.NewRows(followColumns))

	res, err := repo.FetchFollowers(context.Background(), 7, "", 10)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchFollowersCursor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFollowRepository(db)
	at := time.Date(2024, 5, 1, 12, 0, 0, 5000000, time.UTC)

	mock.ExpectQuery("SELECT \\* FROM `follows` WHERE \\(followee_id = \\? AND deleted_at IS NULL\\) AND \\(+created_at < \\? OR \\(created_at = \\? AND follower_id < \\?\\)\\)+ ORDER BY created_at DESC, follower_id DESC").
		WithArgs(int64(7), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(4)).
		WillReturnRows(sqlmock.NewRows(followColumns))

	res, err := repo.FetchFollowers(context.Background(), 7, repository.EncodeCursor(at, 4), 10)
	require.NoError(t, err)
	assert.Empty(t, res)
	assert.NoError(t, mock.ExpectationsWereMet())
}
