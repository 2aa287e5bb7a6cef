package usecasecontract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// RegisterUserByEmailInput is the tagged request for the email
// registration path.
type RegisterUserByEmailInput struct {
	Name         string
	Email        string
	Password     string
	Location     string
	Language     string
	ProfileImage string
}

// VerifyUserOTPInput is the tagged request for consuming a pending
// user OTP. Profile is only applied when Purpose is register.
type VerifyUserOTPInput struct {
	Phone       string
	CountryCode string
	OTP         string
	Purpose     string
	Profile     entity.UserProfile
}

// IUserUseCase defines the interface for user identity operations.
type IUserUseCase interface {
	RegisterByEmail(ctx context.Context, in RegisterUserByEmailInput) (*entity.User, string, error)
	RequestOTP(ctx context.Context, phone, countryCode, purpose string) (string, error)
	VerifyOTP(ctx context.Context, in VerifyUserOTPInput) (string, error)
	Login(ctx context.Context, email, password string) (*entity.User, string, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
}
