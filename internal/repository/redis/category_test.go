package redis_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	redisCache "github.com/Guyuepp/Go-Blog-Moderation/internal/repository/redis"
)

func TestGetActive(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := redisCache.NewCategoryCache(db)

		categories := []domain.Category{{ID: 1, Slug: "technology", IsActive: true}}
		data, err := json.Marshal(categories)
		require.NoError(t, err)

		mock.ExpectGet(redisCache.KeyActiveCategories).SetVal(string(data))

		res, err := cache.GetActive(context.TODO())

		require.NoError(t, err)
		assert.Equal(t, categories, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := redisCache.NewCategoryCache(db)

		mock.ExpectGet(redisCache.KeyActiveCategories).RedisNil()

		_, err := cache.GetActive(context.TODO())

		assert.ErrorIs(t, err, domain.ErrCacheMiss)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("corrupt-payload", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := redisCache.NewCategoryCache(db)

		mock.ExpectGet(redisCache.KeyActiveCategories).SetVal("not json")

		_, err := cache.GetActive(context.TODO())

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestSetActive(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := redisCache.NewCategoryCache(db)

	categories := []domain.Category{{ID: 1, Slug: "technology", IsActive: true}}
	data, err := json.Marshal(categories)
	require.NoError(t, err)

	mock.ExpectSet(redisCache.KeyActiveCategories, data, 5*time.Minute).SetVal("OK")

	err = cache.SetActive(context.TODO(), categories)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPopular(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := redisCache.NewCategoryCache(db)

	categories := []domain.Category{{ID: 1, Slug: "technology", PostsCount: 12}}
	data, err := json.Marshal(categories)
	require.NoError(t, err)

	mock.ExpectGet("category:popular:5").SetVal(string(data))

	res, err := cache.GetPopular(context.TODO(), 5)

	require.NoError(t, err)
	assert.Equal(t, categories, res)
}

func TestSetPopular(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := redisCache.NewCategoryCache(db)

	categories := []domain.Category{{ID: 1, Slug: "technology", PostsCount: 12}}
	data, err := json.Marshal(categories)
	require.NoError(t, err)

	mock.ExpectSet("category:popular:5", data, 5*time.Minute).SetVal("OK")

	err = cache.SetPopular(context.TODO(), 5, categories)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidate(t *testing.T) {
	db, mock := redismock.NewClientMock()
	cache := redisCache.NewCategoryCache(db)

	mock.ExpectScan(0, "category:popular:*", 0).SetVal([]string{"category:popular:5", "category:popular:10"}, 0)
	mock.ExpectDel(redisCache.KeyActiveCategories, "category:popular:5", "category:popular:10").SetVal(3)

	err := cache.Invalidate(context.TODO())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
