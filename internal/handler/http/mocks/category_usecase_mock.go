package mocks

import (
	"context"
	"errors"

	"github.com/mihretabn/taskhub/internal/domain/entity"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// MockCategoryUsecase is a mock implementation of the category usecase interface
type MockCategoryUsecase struct {
	// Control mock behavior
	ShouldFailAdd     bool
	ShouldFailGetByID bool
	ShouldFailList    bool
	ShouldFailUpdate  bool
	ShouldFailDelete  bool

	// Return values
	MockCategory entity.Category
}

// Ensure MockCategoryUsecase implements the correct interface for handler constructors
var _ usecasecontract.ICategoryUseCase = (*MockCategoryUsecase)(nil)

func NewMockCategoryUsecase() *MockCategoryUsecase {
	return &MockCategoryUsecase{
		MockCategory: entity.Category{
			ID:    "mock-category-id",
			Name:  "Plumbing",
			Image: "uploads/plumbing.png",
		},
	}
}

func (m *MockCategoryUsecase) AddCategory(ctx context.Context, name, image string) (*entity.Category, error) {
	if m.ShouldFailAdd {
		return nil, errors.New("add category failed")
	}
	return &m.MockCategory, nil
}

func (m *MockCategoryUsecase) GetCategoryByID(ctx context.Context, categoryID string) (*entity.Category, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("category not found")
	}
	return &m.MockCategory, nil
}

func (m *MockCategoryUsecase) GetCategories(ctx context.Context) ([]entity.Category, error) {
	if m.ShouldFailList {
		return nil, errors.New("list categories failed")
	}
	return []entity.Category{m.MockCategory}, nil
}

func (m *MockCategoryUsecase) UpdateCategory(ctx context.Context, categoryID, name, image string) (*entity.Category, error) {
	if m.ShouldFailUpdate {
		return nil, errors.New("update category failed")
	}
	return &m.MockCategory, nil
}

func (m *MockCategoryUsecase) DeleteCategory(ctx context.Context, categoryID string) (*entity.Category, error) {
	if m.ShouldFailDelete {
		return nil, errors.New("delete category failed")
	}
	return &m.MockCategory, nil
}
