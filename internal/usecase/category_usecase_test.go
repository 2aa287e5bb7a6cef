package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/entity"
	"github.com/mihretabn/taskhub/internal/usecase"
)

// fakeCategoryCache records cache traffic so tests can assert the
// cache-first read path and write-path invalidation.
type fakeCategoryCache struct {
	stored      []entity.Category
	warm        bool
	hits        int
	invalidated int
}

func (c *fakeCategoryCache) GetCategories(ctx context.Context) ([]entity.Category, bool, error) {
	if !c.warm {
		return nil, false, nil
	}
	c.hits++
	return c.stored, true, nil
}

func (c *fakeCategoryCache) SetCategories(ctx context.Context, categories []entity.Category) error {
	c.stored = categories
	c.warm = true
	return nil
}

func (c *fakeCategoryCache) InvalidateCategories(ctx context.Context) error {
	c.stored = nil
	c.warm = false
	c.invalidated++
	return nil
}

func TestCategoryAddAndGet(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUsecase(repo, nopLogger{})

	created, err := uc.AddCategory(context.Background(), "Plumbing", "uploads/plumbing.png")
	require.NoError(t, err)
	assert.Equal(t, "Plumbing", created.Name)

	_, err = uc.AddCategory(context.Background(), "Plumbing", "uploads/other.png")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	assert.EqualError(t, err, "Category already exists")

	fetched, err := uc.GetCategoryByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = uc.GetCategoryByID(context.Background(), "missing")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCategoryUpdate(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUsecase(repo, nopLogger{})

	created, err := uc.AddCategory(context.Background(), "Plumbing", "uploads/plumbing.png")
	require.NoError(t, err)

	// empty image keeps the stored one
	updated, err := uc.UpdateCategory(context.Background(), created.ID, "Pipework", "")
	require.NoError(t, err)
	assert.Equal(t, "Pipework", updated.Name)
	assert.Equal(t, "uploads/plumbing.png", updated.Image)

	updated, err = uc.UpdateCategory(context.Background(), created.ID, "", "uploads/pipes.png")
	require.NoError(t, err)
	assert.Equal(t, "Pipework", updated.Name)
	assert.Equal(t, "uploads/pipes.png", updated.Image)
}

func TestCategoryDelete(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUsecase(repo, nopLogger{})

	created, err := uc.AddCategory(context.Background(), "Plumbing", "uploads/plumbing.png")
	require.NoError(t, err)

	deleted, err := uc.DeleteCategory(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = uc.DeleteCategory(context.Background(), created.ID)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestCategoryListUsesCache(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUsecase(repo, nopLogger{})
	cache := &fakeCategoryCache{}
	uc.SetCategoryCache(cache)

	_, err := uc.AddCategory(context.Background(), "Plumbing", "uploads/plumbing.png")
	require.NoError(t, err)

	// first read warms the cache, second is served from it
	first, err := uc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Equal(t, 0, cache.hits)

	second, err := uc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, 1, cache.hits)

	// any write drops the cached listing
	_, err = uc.AddCategory(context.Background(), "Electrical", "uploads/electrical.png")
	require.NoError(t, err)
	assert.False(t, cache.warm)

	third, err := uc.GetCategories(context.Background())
	require.NoError(t, err)
	assert.Len(t, third, 2)
}
