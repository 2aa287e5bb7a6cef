package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// CategoryUsecase implements the ICategoryUseCase interface.
type CategoryUsecase struct {
	categoryRepo contract.ICategoryRepository
	cache        contract.ICategoryCache
	logger       usecasecontract.IAppLogger
}

// NewCategoryUsecase creates a new CategoryUsecase instance.
func NewCategoryUsecase(categoryRepo contract.ICategoryRepository, logger usecasecontract.IAppLogger) *CategoryUsecase {
	return &CategoryUsecase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

var _ usecasecontract.ICategoryUseCase = (*CategoryUsecase)(nil)

// SetCategoryCache wires an optional cache for the public listing.
func (uc *CategoryUsecase) SetCategoryCache(cache contract.ICategoryCache) {
	uc.cache = cache
}

// AddCategory creates a category with a unique name.
func (uc *CategoryUsecase) AddCategory(ctx context.Context, name, image string) (*entity.Category, error) {
	existing, err := uc.categoryRepo.GetCategoryByName(ctx, name)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing category: %v", err)
		return nil, apperror.Internal("failed to add category", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Category already exists")
	}

	now := time.Now()
	category := &entity.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.categoryRepo.CreateCategory(ctx, category); err != nil {
		uc.logger.Errorf("failed to create category: %v", err)
		return nil, apperror.Internal("failed to add category", err)
	}
	uc.invalidateCache(ctx)
	return category, nil
}

// GetCategoryByID fetches a single category.
func (uc *CategoryUsecase) GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal("failed to fetch category", err)
	}
	return category, nil
}

// GetCategories returns all categories, served from the cache when
// one is wired and warm.
func (uc *CategoryUsecase) GetCategories(ctx context.Context) ([]entity.Category, error) {
	if uc.cache != nil {
		if categories, ok, err := uc.cache.GetCategories(ctx); err == nil && ok {
			return categories, nil
		}
	}

	categories, err := uc.categoryRepo.ListCategories(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list categories: %v", err)
		return nil, apperror.Internal("failed to fetch categories", err)
	}

	if uc.cache != nil {
		if err := uc.cache.SetCategories(ctx, categories); err != nil {
			uc.logger.Warnf("failed to cache categories: %v", err)
		}
	}
	return categories, nil
}

// UpdateCategory renames a category and optionally replaces its image.
func (uc *CategoryUsecase) UpdateCategory(ctx context.Context, categoryID, name, image string) (*entity.Category, error) {
	category, err := uc.categoryRepo.GetCategoryByID(ctx, categoryID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		return nil, apperror.Internal("failed to update category", err)
	}

	if name != "" {
		category.Name = name
	}
	if image != "" {
		category.Image = image
	}
	updated, err := uc.categoryRepo.UpdateCategory(ctx, category)
	if err != nil {
		uc.logger.Errorf("failed to update category: %v", err)
		return nil, apperror.Internal("failed to update category", err)
	}
	uc.invalidateCache(ctx)
	return updated, nil
}

// DeleteCategory removes a category and returns the deleted record.
func (uc *CategoryUsecase) DeleteCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	category, err := uc.categoryRepo.DeleteCategory(ctx, categoryID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Category not found")
		}
		uc.logger.Errorf("failed to delete category: %v", err)
		return nil, apperror.Internal("failed to delete category", err)
	}
	uc.invalidateCache(ctx)
	return category, nil
}

func (uc *CategoryUsecase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateCategories(ctx); err != nil {
		uc.logger.Warnf("failed to invalidate category cache: %v", err)
	}
}
