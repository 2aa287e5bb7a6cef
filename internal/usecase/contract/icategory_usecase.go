package usecasecontract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// ICategoryUseCase defines the interface for category management.
type ICategoryUseCase interface {
	AddCategory(ctx context.Context, name, image string) (*entity.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error)
	GetCategories(ctx context.Context) ([]entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID, name, image string) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) (*entity.Category, error)
}
