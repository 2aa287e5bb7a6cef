package usecasecontract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// UserPage is the admin user listing result.
type UserPage struct {
	Users       []entity.User `json:"users"`
	TotalUsers  int64         `json:"totalUsers"`
	TotalPages  int64         `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
}

// IAdminUseCase defines the interface for admin account and user
// management operations.
type IAdminUseCase interface {
	Signup(ctx context.Context, name, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (*entity.Admin, string, error)
	GetAdminByID(ctx context.Context, adminID string) (*entity.Admin, error)
	UpdateDetail(ctx context.Context, adminID, name, email string) (*entity.Admin, error)
	ResetPassword(ctx context.Context, adminID, newPassword string) error
	ListUsers(ctx context.Context, filter contract.UserListFilter) (*UserPage, error)
}
