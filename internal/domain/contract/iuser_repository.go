package contract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// UserListFilter narrows and pages the admin user listing.
type UserListFilter struct {
	Page       int
	Limit      int
	Search     string
	Registered *bool
}

type IUserRepository interface {
	CreateUser(ctx context.Context, user *entity.User) error
	GetUserByID(ctx context.Context, id string) (*entity.User, error)
	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetUserByPhone retrieves a user by its (phone, countryCode) identity.
	GetUserByPhone(ctx context.Context, phone, countryCode string) (*entity.User, error)
	// UpdateUser updates an existing user and returns the updated user.
	UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	// ListUsers returns a page of users plus the total match count.
	ListUsers(ctx context.Context, filter UserListFilter) ([]entity.User, int64, error)
}
