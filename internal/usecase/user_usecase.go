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

// UserUsecase implements the IUserUseCase interface.
type UserUsecase struct {
	userRepo     contract.IUserRepository
	hasher       contract.IHasher
	tokenService TokenService
	logger       usecasecontract.IAppLogger
	validator    usecasecontract.IValidator
	otp          otpFlow
}

// NewUserUsecase creates a new UserUsecase instance.
func NewUserUsecase(
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokenService TokenService,
	otpGen contract.IOTPGenerator,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
	validator usecasecontract.IValidator,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		validator:    validator,
		otp:          newOTPFlow(otpGen, cfg.GetOTPTTL()),
	}
}

// check if UserUsecase implements the IUserUseCase
var _ usecasecontract.IUserUseCase = (*UserUsecase)(nil)

// RegisterByEmail creates a fully-formed, already-registered user and
// issues a bearer token.
func (uc *UserUsecase) RegisterByEmail(ctx context.Context, in usecasecontract.RegisterUserByEmailInput) (*entity.User, string, error) {
	if err := uc.validator.ValidateEmail(in.Email); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}
	if err := uc.validator.ValidatePassword(in.Password); err != nil {
		return nil, "", apperror.BadRequest(err.Error())
	}

	existing, err := uc.userRepo.GetUserByEmail(ctx, in.Email)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing user by email: %v", err)
		return nil, "", apperror.Internal("failed to register user", err)
	}
	if existing != nil {
		return nil, "", apperror.Conflict("User already exists")
	}

	hashedPassword, err := uc.hasher.HashPassword(in.Password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return nil, "", apperror.Internal("failed to process password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hashedPassword,
		Location:     in.Location,
		Language:     in.Language,
		ProfileImage: in.ProfileImage,
		IsRegistered: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to create user: %v", err)
		return nil, "", apperror.Internal("failed to register user", err)
	}

	token, err := uc.tokenService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return nil, "", apperror.Internal("failed to generate token", err)
	}
	return user, token, nil
}

// RequestOTP starts an OTP cycle for the given purpose. For register
// it creates a phone stub; for login it replaces the pending code on
// the existing account. The code is returned to the caller; delivery
// belongs to an external collaborator.
func (uc *UserUsecase) RequestOTP(ctx context.Context, phone, countryCode, purpose string) (string, error) {
	if err := uc.validator.ValidatePhone(phone, countryCode); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	existing, err := uc.userRepo.GetUserByPhone(ctx, phone, countryCode)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to look up user by phone: %v", err)
		return "", apperror.Internal("failed to request OTP", err)
	}

	switch purpose {
	case entity.OTPPurposeRegister:
		if existing != nil {
			return "", apperror.Conflict("User already exists")
		}
		now := time.Now()
		stub := &entity.User{
			ID:        uuid.NewString(),
			CreatedAt: now,
			UpdatedAt: now,
		}
		stub.Phone = phone
		stub.CountryCode = countryCode
		code, err := uc.otp.Issue(&stub.PhoneCredential)
		if err != nil {
			return "", err
		}
		if err := uc.userRepo.CreateUser(ctx, stub); err != nil {
			uc.logger.Errorf("failed to create user stub: %v", err)
			return "", apperror.Internal("failed to request OTP", err)
		}
		return code, nil

	case entity.OTPPurposeLogin:
		if existing == nil {
			return "", apperror.NotFound("User not registered please register first")
		}
		code, err := uc.otp.Issue(&existing.PhoneCredential)
		if err != nil {
			return "", err
		}
		if _, err := uc.userRepo.UpdateUser(ctx, existing); err != nil {
			uc.logger.Errorf("failed to store OTP: %v", err)
			return "", apperror.Internal("failed to request OTP", err)
		}
		return code, nil

	default:
		return "", apperror.BadRequest("Invalid login type")
	}
}

// VerifyOTP consumes a pending code. On the register purpose the
// supplied profile is stamped and the account becomes registered.
func (uc *UserUsecase) VerifyOTP(ctx context.Context, in usecasecontract.VerifyUserOTPInput) (string, error) {
	user, err := uc.userRepo.GetUserByPhone(ctx, in.Phone, in.CountryCode)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return "", apperror.NotFound("User not found")
		}
		uc.logger.Errorf("failed to look up user by phone: %v", err)
		return "", apperror.Internal("failed to verify OTP", err)
	}

	if err := uc.otp.Consume(&user.PhoneCredential, in.OTP); err != nil {
		return "", err
	}

	if in.Purpose == entity.OTPPurposeRegister {
		user.CompleteRegistration(in.Profile)
	}

	if _, err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		uc.logger.Errorf("failed to persist OTP verification: %v", err)
		return "", apperror.Internal("failed to verify OTP", err)
	}

	token, err := uc.tokenService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return "", apperror.Internal("failed to generate token", err)
	}
	return token, nil
}

// Login verifies an email credential and issues a bearer token.
func (uc *UserUsecase) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.NotFound("User not found")
		}
		uc.logger.Errorf("failed to retrieve user for login: %v", err)
		return nil, "", apperror.Internal("failed to login", err)
	}

	if !user.IsRegistered {
		return nil, "", apperror.BadRequest("User not registered")
	}

	if err := uc.hasher.ComparePasswordHash(password, user.PasswordHash); err != nil {
		return nil, "", apperror.Unauthorized("Invalid credentials")
	}

	token, err := uc.tokenService.GenerateToken(user.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return nil, "", apperror.Internal("failed to generate token", err)
	}
	return user, token, nil
}

// GetUserByID retrieves a user for the profile endpoint.
func (uc *UserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("User not found")
		}
		return nil, apperror.Internal("failed to fetch user", err)
	}
	return user, nil
}
