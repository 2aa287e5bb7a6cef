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

// VendorUsecase implements the IVendorUseCase interface.
type VendorUsecase struct {
	vendorRepo   contract.IVendorRepository
	userRepo     contract.IUserRepository
	hasher       contract.IHasher
	tokenService TokenService
	logger       usecasecontract.IAppLogger
	validator    usecasecontract.IValidator
	otp          otpFlow
}

// NewVendorUsecase creates a new VendorUsecase instance. The user
// repository is needed to resolve review authors.
func NewVendorUsecase(
	vendorRepo contract.IVendorRepository,
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokenService TokenService,
	otpGen contract.IOTPGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *VendorUsecase {
	return &VendorUsecase{
		vendorRepo:   vendorRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		validator:    validator,
		otp:          newOTPFlow(otpGen, cfg.GetOTPTTL()),
	}
}

var _ usecasecontract.IVendorUseCase = (*VendorUsecase)(nil)

// RegisterByEmail creates a fully-formed, already-registered vendor
// and issues a bearer token.
func (uc *VendorUsecase) RegisterByEmail(ctx context.Context, in usecasecontract.RegisterVendorByEmailInput) (*entity.Vendor, string, error) {
	if err := uc.validator.ValidateEmail(in.Email); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}
	if err := uc.validator.ValidatePassword(in.Password); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}

	existing, err := uc.vendorRepo.GetVendorByEmail(ctx, in.Email)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing vendor by email: %v", err)
		return nil, "", apperror.Internal("failed to register vendor", err)
	}
	if existing != nil {
		return nil, "", apperror.Conflict("Vendor already exists")
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperror.Internal("failed to process password", err)
	}

	now := time.Now()
	vendor := &entity.Vendor{
		ID:           uuid.NewString(),
		Email:        in.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	vendor.CompleteRegistration(in.Profile)
	vendor.OTPVerified = true

	if err := uc.vendorRepo.CreateVendor(ctx, vendor); err != nil {
		uc.logger.Errorf("failed to create vendor: %v", err)
		return nil, "", apperror.Internal("failed to register vendor", err)
	}

	token, err := uc.tokenService.GenerateToken(vendor.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return nil, "", apperror.Internal("failed to generate token", err)
	}
	return vendor, token, nil
}

// RequestOTP starts an OTP cycle for the given purpose, mirroring the
// user flow on the vendor collection.
func (uc *VendorUsecase) RequestOTP(ctx context.Context, phone, countryCode, purpose string) (string, error) {
	if err := uc.validator.ValidatePhone(phone, countryCode); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	existing, err := uc.vendorRepo.GetVendorByPhone(ctx, phone, countryCode)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to look up vendor by phone: %v", err)
		return "", apperror.Internal("failed to request OTP", err)
	}

	switch purpose {
	case entity.OTPPurposeRegister:
		if existing != nil {
			return "", apperror.Conflict("Vendor already exists")
		}
		now := time.Now()
		stub := &entity.Vendor{
			ID:        uuid.NewString(),
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		stub.Phone = phone
		stub.CountryCode = countryCode
		code, err := uc.otp.Issue(&stub.PhoneCredential)
		if err != nil {
			return "", err
		}
		if err := uc.vendorRepo.CreateVendor(ctx, stub); err != nil {
			uc.logger.Errorf("failed to create vendor stub: %v", err)
			return "", apperror.Internal("failed to request OTP", err)
		}
		return code, nil

	case entity.OTPPurposeLogin:
		if existing == nil {
			return "", apperror.NotFound("Vendor not registered")
		}
		code, err := uc.otp.Issue(&existing.PhoneCredential)
		if err != nil {
			return "", err
		}
		if _, err := uc.vendorRepo.UpdateVendor(ctx, existing); err != nil {
			uc.logger.Errorf("failed to store OTP: %v", err)
			return "", apperror.Internal("failed to request OTP", err)
		}
		return code, nil

	default:
		return "", apperror.BadRequest("Invalid login type")
	}
}

// VerifyOTP consumes a pending vendor code, stamping the profile on
// the register purpose.
func (uc *VendorUsecase) VerifyOTP(ctx context.Context, in usecasecontract.VerifyVendorOTPInput) (string, error) {
	vendor, err := uc.vendorRepo.GetVendorByPhone(ctx, in.Phone, in.CountryCode)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return "", apperror.NotFound("Vendor not found")
		}
		uc.logger.Errorf("failed to look up vendor by phone: %v", err)
		return "", apperror.Internal("failed to verify OTP", err)
	}

	if err := uc.otp.Consume(&vendor.PhoneCredential, in.OTP); err != nil {
		return "", err
	}

	if in.Purpose == entity.OTPPurposeRegister {
		vendor.CompleteRegistration(in.Profile)
	}

	if _, err := uc.vendorRepo.UpdateVendor(ctx, vendor); err != nil {
		uc.logger.Errorf("failed to persist OTP verification: %v", err)
		return "", apperror.Internal("failed to verify OTP", err)
	}

	token, err := uc.tokenService.GenerateToken(vendor.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return "", apperror.Internal("failed to generate token", err)
	}
	return token, nil
}

// Login verifies an email credential. Unlike the user flow, the
// failure reason distinguishes unknown email from wrong password.
func (uc *VendorUsecase) Login(ctx context.Context, email, password string) (*entity.Vendor, string, error) {
	vendor, err := uc.vendorRepo.GetVendorByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.NotFound("Invalid email")
		}
		uc.logger.Errorf("failed to retrieve vendor for login: %v", err)
		return nil, "", apperror.Internal("failed to login", err)
	}

	if err := uc.hasher.ComparePasswordHash(password, vendor.PasswordHash); err != nil {
		return nil, "", apperror.Unauthorized("Invalid password")
	}

	token, err := uc.tokenService.GenerateToken(vendor.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return nil, "", apperror.Internal("failed to generate token", err)
	}
	return vendor, token, nil
}

// GetVendorByID retrieves a vendor for the profile endpoint.
func (uc *VendorUsecase) GetVendorByID(ctx context.Context, vendorID string) (*entity.Vendor, error) {
	vendor, err := uc.vendorRepo.GetVendorByID(ctx, vendorID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Vendor not found")
		}
		return nil, apperror.Internal("failed to fetch vendor", err)
	}
	return vendor, nil
}

// AddReview appends a user review to a vendor and persists the
// recomputed rating aggregates.
func (uc *VendorUsecase) AddReview(ctx context.Context, vendorID, userID string, rating int, comment string) (*entity.Vendor, error) {
	if rating < 1 || rating > 5 {
		return nil, apperror.BadRequest("Rating must be between 1 and 5")
	}

	if _, err := uc.userRepo.GetUserByID(ctx, userID); err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("failed to add review", err)
	}

	vendor, err := uc.vendorRepo.GetVendorByID(ctx, vendorID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Vendor not found")
		}
		return nil, apperror.Internal("failed to add review", err)
	}

	vendor.AddReview(entity.Review{
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now(),
	})

	updated, err := uc.vendorRepo.UpdateVendor(ctx, vendor)
	if err != nil {
		uc.logger.Errorf("failed to persist review: %v", err)
		return nil, apperror.Internal("failed to add review", err)
	}
	return updated, nil
}
