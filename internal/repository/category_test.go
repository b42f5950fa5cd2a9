package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/Go-Blog-Moderation/domain"
	"github.com/Guyuepp/Go-Blog-Moderation/domain/mocks"
	"github.com/Guyuepp/Go-Blog-Moderation/internal/repository"
)

func TestFetchActive(t *testing.T) {
	t.Run("cache-hit-skips-db", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		cached := []domain.Category{{ID: 1, Slug: "technology", IsActive: true}}
		mockCache.On("GetActive", mock.Anything).Return(cached, nil).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		res, err := repo.FetchActive(context.TODO())

		require.NoError(t, err)
		assert.Equal(t, cached, res)
		mockDB.AssertNotCalled(t, "FetchActive", mock.Anything)
	})

	t.Run("cache-miss-rebuilds", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		fresh := []domain.Category{{ID: 2, Slug: "science", IsActive: true}}
		mockCache.On("GetActive", mock.Anything).Return(nil, domain.ErrCacheMiss).Once()
		mockDB.On("FetchActive", mock.Anything).Return(fresh, nil).Once()
		mockCache.On("SetActive", mock.Anything, fresh).Return(nil).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		res, err := repo.FetchActive(context.TODO())

		require.NoError(t, err)
		assert.Equal(t, fresh, res)
		mockCache.AssertExpectations(t)
		mockDB.AssertExpectations(t)
	})

	t.Run("cache-set-failure-still-serves", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		fresh := []domain.Category{{ID: 2, Slug: "science", IsActive: true}}
		mockCache.On("GetActive", mock.Anything).Return(nil, domain.ErrCacheMiss).Once()
		mockDB.On("FetchActive", mock.Anything).Return(fresh, nil).Once()
		mockCache.On("SetActive", mock.Anything, fresh).Return(errors.New("cache down")).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		res, err := repo.FetchActive(context.TODO())

		require.NoError(t, err)
		assert.Equal(t, fresh, res)
	})

	t.Run("db-failure-propagates", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		mockCache.On("GetActive", mock.Anything).Return(nil, domain.ErrCacheMiss).Once()
		mockDB.On("FetchActive", mock.Anything).Return(nil, errors.New("db down")).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		_, err := repo.FetchActive(context.TODO())

		assert.Error(t, err)
	})
}

func TestFetchPopular(t *testing.T) {
	t.Run("per-limit-cache-keys", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		fresh := []domain.Category{{ID: 1, Slug: "technology"}}
		mockCache.On("GetPopular", mock.Anything, 5).Return(nil, domain.ErrCacheMiss).Once()
		mockDB.On("FetchPopular", mock.Anything, 5).Return(fresh, nil).Once()
		mockCache.On("SetPopular", mock.Anything, 5, fresh).Return(nil).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		res, err := repo.FetchPopular(context.TODO(), 5)

		require.NoError(t, err)
		assert.Equal(t, fresh, res)
		mockCache.AssertExpectations(t)
	})
}

func TestWriteThroughInvalidation(t *testing.T) {
	t.Run("store", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		mockDB.On("Store", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything).Return(nil).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		err := repo.Store(context.TODO(), &domain.Category{Name: "Technology"})

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("store-failure-keeps-cache", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		mockDB.On("Store", mock.Anything, mock.AnythingOfType("*domain.Category")).Return(errors.New("db down")).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		err := repo.Store(context.TODO(), &domain.Category{Name: "Technology"})

		assert.Error(t, err)
		mockCache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("sort-order-update", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		mockDB.On("UpdateSortOrder", mock.Anything, int64(1), 3).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything).Return(nil).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		err := repo.UpdateSortOrder(context.TODO(), 1, 3)

		assert.NoError(t, err)
		mockCache.AssertExpectations(t)
	})

	t.Run("invalidate-failure-is-swallowed", func(t *testing.T) {
		mockDB := new(mocks.CategoryRepository)
		mockCache := new(mocks.CategoryCache)

		mockDB.On("Delete", mock.Anything, int64(1)).Return(nil).Once()
		mockCache.On("Invalidate", mock.Anything).Return(errors.New("cache down")).Once()

		repo := repository.NewCategoryRepository(mockDB, mockCache)
		err := repo.Delete(context.TODO(), 1)

		assert.NoError(t, err)
	})
}

func TestPassThroughReads(t *testing.T) {
	mockDB := new(mocks.CategoryRepository)
	mockCache := new(mocks.CategoryCache)

	mockDB.On("GetBySlug", mock.Anything, "technology").
		Return(&domain.Category{ID: 1, Slug: "technology"}, nil).Once()

	repo := repository.NewCategoryRepository(mockDB, mockCache)
	c, err := repo.GetBySlug(context.TODO(), "technology")

	require.NoError(t, err)
	assert.Equal(t, int64(1), c.ID)
	mockCache.AssertNotCalled(t, "GetActive", mock.Anything)
}
