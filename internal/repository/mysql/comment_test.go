package mysql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	mysqlRepo "github.com/Guyuepp/Go-Blog-Moderation/internal/repository/mysql"
)

func setupDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)
	return gdb, mock
}

func commentRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "post_id", "author_id", "content", "parent_id", "status", "is_active", "created_at", "updated_at",
	})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, 1, 7, "a comment body long enough", nil, "APPROVED", true, now, now)
	}
	return rows
}

func TestCommentGetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE")).
			WillReturnRows(commentRows(1))

		c, err := repo.GetByID(context.TODO(), 1)

		require.NoError(t, err)
		assert.Equal(t, int64(1), c.ID)
		assert.Equal(t, domain.CommentStatusApproved, c.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not-found", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment` WHERE")).
			WillReturnRows(commentRows())

		_, err := repo.GetByID(context.TODO(), 404)

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentStore(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `comment`")).
		WillReturnResult(sqlmock.NewResult(12, 1))

	c := &domain.Comment{
		PostID:   1,
		AuthorID: 7,
		Content:  "a comment body long enough",
		Status:   domain.CommentStatusPending,
		IsActive: true,
	}
	err := repo.Store(context.TODO(), c)

	require.NoError(t, err)
	assert.Equal(t, int64(12), c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `comment` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.TODO(), &domain.Comment{ID: 1, Content: "a comment body long enough", Status: domain.CommentStatusApproved, IsActive: true})

		assert.NoError(t, err)
	})

	t.Run("missing-row", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCommentRepository(gdb)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `comment` SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.TODO(), &domain.Comment{ID: 404, Status: domain.CommentStatusApproved})

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCommentSoftDeleteReplies(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comment` SET")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.SoftDeleteReplies(context.TODO(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
}

func TestCommentFetchByPost(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `comment`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment`")).
		WillReturnRows(commentRows(1, 2))

	q := domain.Query{Page: 1, Limit: 20}
	q.Normalize()
	res, total, err := repo.FetchByPost(context.TODO(), 1, q)

	require.NoError(t, err)
	assert.Len(t, res, 2)
	assert.Equal(t, int64(2), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentFetchReplies(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	parent := int64(1)
	rows := sqlmock.NewRows([]string{
		"id", "post_id", "author_id", "content", "parent_id", "status", "is_active", "created_at", "updated_at",
	})
	now := time.Now()
	// Three replies under one parent with a per-parent cap of two.
	for _, id := range []int64{10, 11, 12} {
		rows.AddRow(id, 1, 7, "a reply body long enough", parent, "APPROVED", true, now, now)
	}
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `comment`")).
		WillReturnRows(rows)

	res, err := repo.FetchReplies(context.TODO(), []int64{parent}, 2)

	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestCommentCountByStatus(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT status, COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("PENDING", 3).
			AddRow("APPROVED", 10))

	res, err := repo.CountByStatus(context.TODO())

	require.NoError(t, err)
	assert.Equal(t, int64(3), res[domain.CommentStatusPending])
	assert.Equal(t, int64(10), res[domain.CommentStatusApproved])
	assert.Zero(t, res[domain.CommentStatusRejected])
}

func TestCommentSoftDeleteRejectedBefore(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE `comment` SET")).
		WillReturnResult(sqlmock.NewResult(0, 7))

	affected, err := repo.SoftDeleteRejectedBefore(context.TODO(), time.Now().AddDate(0, 0, -30))

	require.NoError(t, err)
	assert.Equal(t, int64(7), affected)
}

func TestCommentFetchOrphaned(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT comment\\..* FROM `comment`").
		WillReturnRows(commentRows(9))

	res, err := repo.FetchOrphaned(context.TODO())

	require.NoError(t, err)
	assert.Len(t, res, 1)
}

func TestCommentTrendCounts(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCommentRepository(gdb)

	mock.ExpectQuery("SELECT DATE_FORMAT").
		WillReturnRows(sqlmock.NewRows([]string{"date", "count"}).
			AddRow("2026-08-20", 5).
			AddRow("2026-08-21", 3))

	res, err := repo.TrendCounts(context.TODO(), time.Now().AddDate(0, 0, -7))

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "2026-08-20", res[0].Date)
	assert.Equal(t, int64(5), res[0].Count)
}
