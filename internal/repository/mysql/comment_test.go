package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/go-clean-forum/domain"
	"github.com/Guyuepp/go-clean-forum/internal/repository"
)

var commentColumns = []string{"id", "post_id", "author_id", "parent_id", "root_id", "comment_count", "like_count", "status", "review_status", "created_at", "updated_at", "deleted_at"}

func TestCommentStore(t *testing.T) {
	t.Run("row and content are inserted together", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comments`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `comment_contents`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		c := &domain.Comment{ID: 11, PostID: 1, AuthorID: 2, RootID: 11, Content: faker.Sentence()}
		err := repo.Store(context.Background(), c)
		require.NoError(t, err)
		assert.False(t, c.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("content failure rolls back the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO `comments`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO `comment_contents`").WillReturnError(errors.New("disk full"))
		mock.ExpectRollback()

		err := repo.Store(context.Background(), &domain.Comment{ID: 11, RootID: 11, Content: "x"})
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentGetByID(t *testing.T) {
	now := time.Now()

	t.Run("found with content", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		rows := sqlmock.NewRows(commentColumns).
			AddRow(5, 1, 2, 0, 5, 3, 4, 0, 1, now, now, nil)
		mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = \\? AND \\(deleted_at IS NULL AND status = \\?").WillReturnRows(rows)
		mock.ExpectQuery("SELECT \\* FROM `comment_contents`").WillReturnRows(
			sqlmock.NewRows([]string{"ccid", "comment_id", "content"}).AddRow("c-1", 5, "hello"))

		c, err := repo.GetByID(context.Background(), 5, domain.ScopeUser)
		require.NoError(t, err)
		assert.EqualValues(t, 5, c.RootID)
		assert.EqualValues(t, 3, c.CommentCount)
		assert.Equal(t, domain.ReviewApproved, c.ReviewStatus)
		assert.Equal(t, "hello", c.Content)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT \\* FROM `comments`").WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := repo.GetByID(context.Background(), 5, domain.ScopeAdmin)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})
}

func TestCommentGetForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = \\? .* FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(commentColumns).AddRow(7, 1, 2, 5, 5, 0, 0, 0, 0, now, now, now))

	c, err := repo.GetForUpdate(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, c.IsSoftDeleted())
	assert.Equal(t, domain.DepthSecondLevel, c.Depth())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentListSubtree(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)
	now := time.Now()

	mock.ExpectQuery("SELECT `id`,`root_id` FROM `comments`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "root_id"}).AddRow(2, 1))
	mock.ExpectQuery("SELECT \\* FROM `comments` WHERE root_id = \\? ORDER BY created_at ASC, id ASC").
		WillReturnRows(sqlmock.NewRows(commentColumns).
			AddRow(1, 9, 2, 0, 1, 3, 0, 0, 0, now, now, nil).
			AddRow(2, 9, 2, 1, 1, 1, 0, 0, 0, now.Add(time.Second), now, nil).
			AddRow(3, 9, 2, 1, 1, 0, 0, 0, 0, now.Add(2*time.Second), now, nil).
			AddRow(4, 9, 2, 2, 1, 0, 0, 1, 0, now.Add(3*time.Second), now, nil).
			AddRow(5, 9, 2, 4, 1, 0, 0, 0, 0, now.Add(4*time.Second), now, nil))
	mock.ExpectQuery("SELECT \\* FROM `comment_contents`").
		WillReturnRows(sqlmock.NewRows([]string{"ccid", "comment_id", "content"}))

	res, err := repo.ListSubtree(context.Background(), 2, domain.ScopeUser)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.EqualValues(t, 2, res[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentFetchByPost(t *testing.T) {
	t.Run("bad cursor", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewCommentRepository(db)

		_, err := repo.FetchByPost(context.Background(), 1, domain.ScopeUser, "!!", 10)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})

	t.Run("user scope lists top-level comments", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectQuery("SELECT \\* FROM `comments` WHERE post_id = \\? AND parent_id = 0").
			WillReturnRows(sqlmock.NewRows(commentColumns))

		res, err := repo.FetchByPost(context.Background(), 1, domain.ScopeUser, "", 0)
		require.NoError(t, err)
		assert.Empty(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cursor breaks created_at ties by id", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)
		at := time.Date(2024, 5, 1, 12, 0, 0, 5000000, time.UTC)

		mock.ExpectQuery("SELECT \\* FROM `comments` WHERE post_id = \\? AND \\(+created_at > \\? OR \\(created_at = \\? AND id > \\?\\)\\)+ ORDER BY created_at ASC, id ASC").
			WithArgs(int64(1), sqlmock.AnyArg(), sqlmock.AnyArg(), int64(5)).
			WillReturnRows(sqlmock.NewRows(commentColumns))

		_, err := repo.FetchByPost(context.Background(), 1, domain.ScopeAdmin, repository.EncodeCursor(at, 5), 10)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCommentCounters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec("UPDATE `comments` SET `comment_count`=GREATEST\\(comment_count \\+ \\?, 0\\) WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `comments` SET `like_count`=GREATEST\\(like_count \\+ \\?, 0\\) WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateChildCount(context.Background(), 1, -1))
	require.NoError(t, repo.UpdateLikeCount(context.Background(), 1, 1))
	// zero steps never reach the store
	require.NoError(t, repo.UpdateChildCount(context.Background(), 1, 0))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentSoftDeleteRestore(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCommentRepository(db)

	mock.ExpectExec("UPDATE `comments` SET `deleted_at`=.* WHERE id = \\? AND deleted_at IS NULL").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `comments` SET `deleted_at`=.* WHERE id = \\? AND deleted_at IS NULL").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("UPDATE `comments` SET `deleted_at`=.* WHERE id = \\? AND deleted_at IS NOT NULL").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.SoftDelete(context.Background(), 3))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), 3), domain.ErrCommentNotFound)
	assert.ErrorIs(t, repo.Restore(context.Background(), 4), domain.ErrCommentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentHardDelete(t *testing.T) {
	t.Run("active row is kept", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comments` WHERE id = \\? AND deleted_at IS NOT NULL").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(1))
		mock.ExpectRollback()

		err := repo.HardDelete(context.Background(), 3)
		assert.ErrorIs(t, err, domain.ErrNotSoftDeleted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comments`").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `comments`").
			WillReturnRows(sqlmock.NewRows([]string{"count(*)"}).AddRow(0))
		mock.ExpectRollback()

		err := repo.HardDelete(context.Background(), 3)
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})

	t.Run("soft-deleted row goes with its content", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewCommentRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM `comments`").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("DELETE FROM `comment_contents` WHERE comment_id = \\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.HardDelete(context.Background(), 3))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
