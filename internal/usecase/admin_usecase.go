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

// AdminUsecase implements the IAdminUseCase interface.
type AdminUsecase struct {
	adminRepo    contract.IAdminRepository
	userRepo     contract.IUserRepository
	hasher       contract.IHasher
	tokenService TokenService
	logger       usecasecontract.IAppLogger
	validator    usecasecontract.IValidator
}

// NewAdminUsecase creates a new AdminUsecase instance.
func NewAdminUsecase(
	adminRepo contract.IAdminRepository,
	userRepo contract.IUserRepository,
	hasher contract.IHasher,
	tokenService TokenService,
	logger usecasecontract.IAppLogger,
	validator usecasecontract.IValidator,
) *AdminUsecase {
	return &AdminUsecase{
		adminRepo:    adminRepo,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		logger:       logger,
		validator:    validator,
	}
}

var _ usecasecontract.IAdminUseCase = (*AdminUsecase)(nil)

// Signup creates an admin account and issues a bearer token.
func (uc *AdminUsecase) Signup(ctx context.Context, name, email, password string) (string, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return "", apperror.BadRequest(err.Error())
	}
	if err := uc.validator.ValidatePassword(password); err != nil {
		return "", apperror.BadRequest(err.Error())
	}

	existing, err := uc.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing admin: %v", err)
		return "", apperror.Internal("failed to register admin", err)
	}
	if existing != nil {
		return "", apperror.Conflict("Admin already exists")
	}

	hashedPassword, err := uc.hasher.HashPassword(password)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return "", apperror.Internal("failed to process password", err)
	}

	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.CreateAdmin(ctx, admin); err != nil {
		uc.logger.Errorf("failed to create admin: %v", err)
		return "", apperror.Internal("failed to register admin", err)
	}

	token, err := uc.tokenService.GenerateToken(admin.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return "", apperror.Internal("failed to generate token", err)
	}
	return token, nil
}

// Login verifies an admin credential. Both failure modes share one
// generic message so callers cannot probe which check failed.
func (uc *AdminUsecase) Login(ctx context.Context, email, password string) (*entity.Admin, string, error) {
	admin, err := uc.adminRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, "", apperror.BadRequest("Invalid email or password")
		}
		uc.logger.Errorf("failed to retrieve admin for login: %v", err)
		return nil, "", apperror.Internal("failed to login", err)
	}

	if err := uc.hasher.ComparePasswordHash(password, admin.PasswordHash); err != nil {
		return nil, "", apperror.BadRequest("Invalid email or password")
	}

	token, err := uc.tokenService.GenerateToken(admin.ID)
	if err != nil {
		uc.logger.Errorf("failed to generate token: %v", err)
		return nil, "", apperror.Internal("failed to generate token", err)
	}
	return admin, token, nil
}

// GetAdminByID retrieves an admin for the detail endpoint.
func (uc *AdminUsecase) GetAdminByID(ctx context.Context, adminID string) (*entity.Admin, error) {
	admin, err := uc.adminRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Admin not found")
		}
		return nil, apperror.Internal("failed to fetch admin", err)
	}
	return admin, nil
}

// UpdateDetail updates the admin's name and email.
func (uc *AdminUsecase) UpdateDetail(ctx context.Context, adminID, name, email string) (*entity.Admin, error) {
	if err := uc.validator.ValidateEmail(email); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	admin, err := uc.adminRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Admin not found")
		}
		return nil, apperror.Internal("failed to update admin", err)
	}

	admin.Name = name
	admin.Email = email
	updated, err := uc.adminRepo.UpdateAdmin(ctx, admin)
	if err != nil {
		uc.logger.Errorf("failed to update admin: %v", err)
		return nil, apperror.Internal("failed to update admin", err)
	}
	return updated, nil
}

// ResetPassword replaces the admin's credential. The new secret must
// differ from the current one; rehashing happens only here, on the
// write path where the plaintext changed.
func (uc *AdminUsecase) ResetPassword(ctx context.Context, adminID, newPassword string) error {
	if err := uc.validator.ValidatePassword(newPassword); err != nil {
		return apperror.BadRequest(err.Error())
	}

	admin, err := uc.adminRepo.GetAdminByID(ctx, adminID)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return apperror.NotFound("Admin not found")
		}
		return apperror.Internal("failed to reset password", err)
	}

	if err := uc.hasher.ComparePasswordHash(newPassword, admin.PasswordHash); err == nil {
		return apperror.BadRequest("New password cannot be same as old password")
	}

	hashedPassword, err := uc.hasher.HashPassword(newPassword)
	if err != nil {
		uc.logger.Errorf("failed to hash password: %v", err)
		return apperror.Internal("failed to process password", err)
	}

	if err := uc.adminRepo.UpdateAdminPassword(ctx, admin.ID, hashedPassword); err != nil {
		uc.logger.Errorf("failed to update admin password: %v", err)
		return apperror.Internal("failed to reset password", err)
	}
	return nil
}

// ListUsers returns a filtered, paged listing of user accounts.
func (uc *AdminUsecase) ListUsers(ctx context.Context, filter contract.UserListFilter) (*usecasecontract.UserPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	users, total, err := uc.userRepo.ListUsers(ctx, filter)
	if err != nil {
		uc.logger.Errorf("failed to list users: %v", err)
		return nil, apperror.Internal("failed to fetch users", err)
	}

	limit := int64(filter.Limit)
	totalPages := (total + limit - 1) / limit
	return &usecasecontract.UserPage{
		Users:       users,
		TotalUsers:  total,
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
	}, nil
}
