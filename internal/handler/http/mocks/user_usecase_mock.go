package mocks

import (
	"context"
	"errors"

	"github.com/mihretabn/taskhub/internal/domain/entity"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// MockUserUsecase is a mock implementation of the user usecase interface
type MockUserUsecase struct {
	// Control mock behavior
	ShouldFailRegisterByEmail bool
	ShouldFailRequestOTP      bool
	ShouldFailVerifyOTP       bool
	ShouldFailLogin           bool
	ShouldFailGetByID         bool

	// Return values
	MockUser  entity.User
	MockToken string
	MockOTP   string
}

// Ensure MockUserUsecase implements the correct interface for handler.NewUserHandler
var _ usecasecontract.IUserUseCase = (*MockUserUsecase)(nil)

func NewMockUserUsecase() *MockUserUsecase {
	return &MockUserUsecase{
		MockUser: entity.User{
			ID:           "mock-user-id",
			Name:         "Test User",
			Email:        "test@example.com",
			IsRegistered: true,
		},
		MockToken: "mock_token",
		MockOTP:   "1234",
	}
}

func (m *MockUserUsecase) RegisterByEmail(ctx context.Context, in usecasecontract.RegisterUserByEmailInput) (*entity.User, string, error) {
	if m.ShouldFailRegisterByEmail {
		return nil, "", errors.New("user registration failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) RequestOTP(ctx context.Context, phone, countryCode, purpose string) (string, error) {
	if m.ShouldFailRequestOTP {
		return "", errors.New("otp request failed")
	}
	return m.MockOTP, nil
}

func (m *MockUserUsecase) VerifyOTP(ctx context.Context, in usecasecontract.VerifyUserOTPInput) (string, error) {
	if m.ShouldFailVerifyOTP {
		return "", errors.New("otp verification failed")
	}
	return m.MockToken, nil
}

func (m *MockUserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if m.ShouldFailLogin {
		return nil, "", errors.New("login failed")
	}
	return &m.MockUser, m.MockToken, nil
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("user not found")
	}
	return &m.MockUser, nil
}
