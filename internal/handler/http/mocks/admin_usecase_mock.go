package mocks

import (
	"context"
	"errors"

	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// MockAdminUsecase is a mock implementation of the admin usecase interface
type MockAdminUsecase struct {
	// Control mock behavior
	ShouldFailSignup        bool
	ShouldFailLogin         bool
	ShouldFailGetByID       bool
	ShouldFailUpdateDetail  bool
	ShouldFailResetPassword bool
	ShouldFailListUsers     bool

	// Return values
	MockAdmin entity.Admin
	MockToken string
	MockUsers []entity.User

	// Captured arguments
	LastFilter contract.UserListFilter
}

// Ensure MockAdminUsecase implements the correct interface for handler.NewAdminHandler
var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{
		MockAdmin: entity.Admin{
			ID:    "mock-admin-id",
			Name:  "Test Admin",
			Email: "admin@example.com",
		},
		MockToken: "mock_token",
		MockUsers: []entity.User{{ID: "mock-user-id", Name: "Test User"}},
	}
}

func (m *MockAdminUsecase) Signup(ctx context.Context, name, email, password string) (string, error) {
	if m.ShouldFailSignup {
		return "", errors.New("admin signup failed")
	}
	return m.MockToken, nil
}

func (m *MockAdminUsecase) Login(ctx context.Context, email, password string) (*entity.Admin, string, error) {
	if m.ShouldFailLogin {
		return nil, "", errors.New("login failed")
	}
	return &m.MockAdmin, m.MockToken, nil
}

func (m *MockAdminUsecase) GetAdminByID(ctx context.Context, adminID string) (*entity.Admin, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("admin not found")
	}
	return &m.MockAdmin, nil
}

func (m *MockAdminUsecase) UpdateDetail(ctx context.Context, adminID, name, email string) (*entity.Admin, error) {
	if m.ShouldFailUpdateDetail {
		return nil, errors.New("update failed")
	}
	admin := m.MockAdmin
	admin.Name = name
	admin.Email = email
	return &admin, nil
}

func (m *MockAdminUsecase) ResetPassword(ctx context.Context, adminID, newPassword string) error {
	if m.ShouldFailResetPassword {
		return errors.New("reset failed")
	}
	return nil
}

func (m *MockAdminUsecase) ListUsers(ctx context.Context, filter contract.UserListFilter) (*usecasecontract.UserPage, error) {
	m.LastFilter = filter
	if m.ShouldFailListUsers {
		return nil, errors.New("list failed")
	}
	return &usecasecontract.UserPage{
		Users:       m.MockUsers,
		TotalUsers:  int64(len(m.MockUsers)),
		TotalPages:  1,
		CurrentPage: filter.Page,
	}, nil
}
