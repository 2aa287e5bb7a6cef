package usecasecontract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// RegisterVendorByEmailInput is the tagged request for the vendor
// email registration path.
type RegisterVendorByEmailInput struct {
	Email    string
	Password string
	Profile  entity.VendorProfile
}

// VerifyVendorOTPInput is the tagged request for consuming a pending
// vendor OTP. Profile is only applied when Purpose is register.
type VerifyVendorOTPInput struct {
	Phone       string
	CountryCode string
	OTP         string
	Purpose     string
	Profile     entity.VendorProfile
}

// IVendorUseCase defines the interface for vendor identity and
// review operations.
type IVendorUseCase interface {
	RegisterByEmail(ctx context.Context, in RegisterVendorByEmailInput) (*entity.Vendor, string, error)
	RequestOTP(ctx context.Context, phone, countryCode, purpose string) (string, error)
	VerifyOTP(ctx context.Context, in VerifyVendorOTPInput) (string, error)
	Login(ctx context.Context, email, password string) (*entity.Vendor, string, error)
	GetVendorByID(ctx context.Context, vendorID string) (*entity.Vendor, error)
	AddReview(ctx context.Context, vendorID, userID string, rating int, comment string) (*entity.Vendor, error)
}
