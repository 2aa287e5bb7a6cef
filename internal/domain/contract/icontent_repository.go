package contract

import (
	"context"

	"github.com/mihretabn/taskhub/internal/domain/entity"
)

// IContentRepository persists the static content surface: policies,
// FAQs and the single contact-us record.
type IContentRepository interface {
	// SavePolicy upserts the policy for its type.
	SavePolicy(ctx context.Context, policy *entity.Policy) (*entity.Policy, error)
	GetPolicyByType(ctx context.Context, policyType string) (*entity.Policy, error)

	CreateFAQ(ctx context.Context, faq *entity.FAQ) error
	UpdateFAQ(ctx context.Context, faq *entity.FAQ) (*entity.FAQ, error)
	GetFAQByID(ctx context.Context, id string) (*entity.FAQ, error)
	// ListFAQs returns all FAQs, newest first.
	ListFAQs(ctx context.Context) ([]entity.FAQ, error)

	GetContact(ctx context.Context) (*entity.ContactInfo, error)
	CreateContact(ctx context.Context, contact *entity.ContactInfo) error
	UpdateContact(ctx context.Context, contact *entity.ContactInfo) (*entity.ContactInfo, error)
}
