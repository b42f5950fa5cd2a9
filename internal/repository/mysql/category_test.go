package mysql_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	mysqlRepo "github.com/Guyuepp/Go-Blog-Moderation/internal/repository/mysql"
)

func categoryRows(slugs ...string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "color", "icon", "is_active", "sort_order", "created_at", "updated_at",
	})
	now := time.Now()
	for i, slug := range slugs {
		rows.AddRow(int64(i+1), slug, slug, "", "#ff8800", "", true, i, now, now)
	}
	return rows
}

func TestCategoryStoreDuplicateSlug(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCategoryRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `category`")).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'technology' for key 'slug'"})

	err := repo.Store(context.TODO(), &domain.Category{Name: "Technology", Slug: "technology", IsActive: true})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCategoryStore(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCategoryRepository(gdb)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `category`")).
		WillReturnResult(sqlmock.NewResult(3, 1))

	c := &domain.Category{Name: "Technology", Slug: "technology", IsActive: true}
	err := repo.Store(context.TODO(), c)

	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)
}

func TestCategoryGetBySlug(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCategoryRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `category` WHERE")).
			WillReturnRows(categoryRows("technology"))

		c, err := repo.GetBySlug(context.TODO(), "technology")

		require.NoError(t, err)
		assert.Equal(t, "technology", c.Slug)
	})

	t.Run("not-found", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCategoryRepository(gdb)

		mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `category` WHERE")).
			WillReturnRows(categoryRows())

		_, err := repo.GetBySlug(context.TODO(), "missing")

		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCategoryMaxSortOrder(t *testing.T) {
	t.Run("with-rows", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCategoryRepository(gdb)

		mock.ExpectQuery("SELECT MAX\\(sort_order\\)").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(4))

		max, err := repo.MaxSortOrder(context.TODO())

		require.NoError(t, err)
		assert.Equal(t, 4, max)
	})

	t.Run("empty-table", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCategoryRepository(gdb)

		mock.ExpectQuery("SELECT MAX\\(sort_order\\)").
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		max, err := repo.MaxSortOrder(context.TODO())

		require.NoError(t, err)
		assert.Zero(t, max)
	})
}

func TestCategoryExistsByIDs(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCategoryRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT `id` FROM `category`")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(3))

	res, err := repo.ExistsByIDs(context.TODO(), []int64{1, 2, 3})

	require.NoError(t, err)
	assert.True(t, res[1])
	assert.False(t, res[2])
	assert.True(t, res[3])
}

func TestCategoryUpdateSortOrder(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCategoryRepository(gdb)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `category` SET")).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.UpdateSortOrder(context.TODO(), 1, 3))
	})

	t.Run("missing-row", func(t *testing.T) {
		gdb, mock := setupDB(t)
		repo := mysqlRepo.NewCategoryRepository(gdb)

		mock.ExpectExec(regexp.QuoteMeta("UPDATE `category` SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.UpdateSortOrder(context.TODO(), 404, 3), domain.ErrNotFound)
	})
}

func TestCategoryCountPosts(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCategoryRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `post`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountPosts(context.TODO(), 1)

	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}

func TestCategoryFetchPopular(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCategoryRepository(gdb)

	rows := sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "color", "icon", "is_active", "sort_order", "created_at", "updated_at", "posts_count",
	})
	now := time.Now()
	rows.AddRow(1, "Technology", "technology", "", "", "", true, 0, now, now, 12)
	rows.AddRow(2, "Science", "science", "", "", "", true, 1, now, now, 7)

	mock.ExpectQuery("SELECT category\\..*posts_count").
		WillReturnRows(rows)

	res, err := repo.FetchPopular(context.TODO(), 5)

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, int64(12), res[0].PostsCount)
}

func TestCategoryStats(t *testing.T) {
	gdb, mock := setupDB(t)
	repo := mysqlRepo.NewCategoryRepository(gdb)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `category`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM `category`")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{
		"id", "name", "slug", "description", "color", "icon", "is_active", "sort_order", "created_at", "updated_at", "posts_count",
	})
	now := time.Now()
	rows.AddRow(1, "Technology", "technology", "", "", "", true, 0, now, now, 12)
	mock.ExpectQuery("SELECT category\\..*posts_count").
		WillReturnRows(rows)

	stats, err := repo.Stats(context.TODO())

	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(2), stats.Active)
	assert.Equal(t, int64(1), stats.Inactive)
	require.Len(t, stats.Categories, 1)
	assert.Equal(t, int64(12), stats.Categories[0].PostsCount)
	assert.True(t, stats.Categories[0].Available)
}
