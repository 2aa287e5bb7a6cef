package contract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

type IVendorRepository interface {
	CreateVendor(ctx context.Context, vendor *entity.Vendor) error
	GetVendorByID(ctx context.Context, id string) (*entity.Vendor, error)
	// GetVendorByEmail retrieves a vendor by email.
	GetVendorByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	// GetVendorByPhone retrieves a vendor by its (phone, countryCode) identity.
	GetVendorByPhone(ctx context.Context, phone, countryCode string) (*entity.Vendor, error)
	// UpdateVendor updates an existing vendor and returns the updated vendor.
	UpdateVendor(ctx context.Context, vendor *entity.Vendor) (*entity.Vendor, error)
}
