package mocks

import (
	"context"
	"errors"

	"github.com/mihretabn/taskhub/internal/domain/entity"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// MockVendorUsecase is a mock implementation of the vendor usecase interface
type MockVendorUsecase struct {
	// Control mock behavior
	ShouldFailRegisterByEmail bool
	ShouldFailRequestOTP      bool
	ShouldFailVerifyOTP       bool
	ShouldFailLogin           bool
	ShouldFailGetByID         bool
	ShouldFailAddReview       bool

	// Return values
	MockVendor entity.Vendor
	MockToken  string
	MockOTP    string
}

// Ensure MockVendorUsecase implements the correct interface for handler.NewVendorHandler
var _ usecasecontract.IVendorUseCase = (*MockVendorUsecase)(nil)

func NewMockVendorUsecase() *MockVendorUsecase {
	return &MockVendorUsecase{
		MockVendor: entity.Vendor{
			ID:           "mock-vendor-id",
			Name:         "Test Vendor",
			Email:        "vendor@example.com",
			IsActive:     true,
			IsRegistered: true,
		},
		MockToken: "mock_token",
		MockOTP:   "1234",
	}
}

func (m *MockVendorUsecase) RegisterByEmail(ctx context.Context, in usecasecontract.RegisterVendorByEmailInput) (*entity.Vendor, string, error) {
	if m.ShouldFailRegisterByEmail {
		return nil, "", errors.New("vendor registration failed")
	}
	return &m.MockVendor, m.MockToken, nil
}

func (m *MockVendorUsecase) RequestOTP(ctx context.Context, phone, countryCode, purpose string) (string, error) {
	if m.ShouldFailRequestOTP {
		return "", errors.New("otp request failed")
	}
	return m.MockOTP, nil
}

func (m *MockVendorUsecase) VerifyOTP(ctx context.Context, in usecasecontract.VerifyVendorOTPInput) (string, error) {
	if m.ShouldFailVerifyOTP {
		return "", errors.New("otp verification failed")
	}
	return m.MockToken, nil
}

func (m *MockVendorUsecase) Login(ctx context.Context, email, password string) (*entity.Vendor, string, error) {
	if m.ShouldFailLogin {
		return nil, "", errors.New("login failed")
	}
	return &m.MockVendor, m.MockToken, nil
}

func (m *MockVendorUsecase) GetVendorByID(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	if m.ShouldFailGetByID {
		return nil, errors.New("vendor not found")
	}
	return &m.MockVendor, nil
}

func (m *MockVendorUsecase) AddReview(ctx context.Context, vendorID, userID string, rating int, comment string) (*entity.Vendor, error) {
	if m.ShouldFailAddReview {
		return nil, errors.New("review failed")
	}
	vendor := m.MockVendor
	vendor.AddReview(entity.Review{UserID: userID, Rating: rating, Comment: comment})
	return &vendor, nil
}
