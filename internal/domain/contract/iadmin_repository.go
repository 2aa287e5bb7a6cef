package contract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

type IAdminRepository interface {
	CreateAdmin(ctx context.Context, admin *entity.Admin) error
	GetAdminByID(ctx context.Context, id string) (*entity.Admin, error)
	GetAdminByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// UpdateAdmin updates an existing admin and returns the updated admin.
	UpdateAdmin(ctx context.Context, admin *entity.Admin) (*entity.Admin, error)
	// UpdateAdminPassword replaces the stored credential hash by ID.
	UpdateAdminPassword(ctx context.Context, id string, hashedPassword string) error
}
