package contract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// ICategoryCache caches the public category listing.
type ICategoryCache interface {
	GetCategories(ctx context.Context) ([]entity.Category, bool, error)
	SetCategories(ctx context.Context, categories []entity.Category) error
	InvalidateCategories(ctx context.Context) error
}
