package usecasecontract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// IContentUseCase defines the interface for the static content
// surface: policies, FAQs and contact info.
type IContentUseCase interface {
	SavePolicy(ctx context.Context, policyType, content, image string) (*entity.Policy, error)
	GetPolicy(ctx context.Context, policyType string) (*entity.Policy, error)

	AddFAQ(ctx context.Context, question, answer string) (*entity.FAQ, error)
	UpdateFAQ(ctx context.Context, id, question, answer string, isActive *bool) (*entity.FAQ, error)
	GetFAQs(ctx context.Context) ([]entity.FAQ, error)
	GetFAQByID(ctx context.Context, id string) (*entity.FAQ, error)

	SaveContact(ctx context.Context, id, officeLocation, email, phone string) (*entity.ContactInfo, error)
	GetContact(ctx context.Context) (*entity.ContactInfo, error)
}
