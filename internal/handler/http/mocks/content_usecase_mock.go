package mocks

import (
	"context"
	"errors"

	"github.com/mihretabn/taskhub/internal/domain/entity"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// MockContentUsecase is a mock implementation of the content usecase interface
type MockContentUsecase struct {
	// Control mock behavior
	ShouldFailSavePolicy  bool
	ShouldFailGetPolicy   bool
	ShouldFailAddFAQ      bool
	ShouldFailUpdateFAQ   bool
	ShouldFailGetFAQs     bool
	ShouldFailGetFAQ      bool
	ShouldFailSaveContact bool
	ShouldFailGetContact  bool

	// Return values
	MockPolicy  entity.Policy
	MockFAQ     entity.FAQ
	MockContact entity.ContactInfo
	NoContact   bool
}

// Ensure MockContentUsecase implements the correct interface for handler.NewAdminHandler
var _ usecasecontract.IContentUseCase = (*MockContentUsecase)(nil)

func NewMockContentUsecase() *MockContentUsecase {
	return &MockContentUsecase{
		MockPolicy: entity.Policy{
			ID:      "mock-policy-id",
			Type:    entity.PolicyTypePrivacy,
			Content: "We respect your privacy.",
		},
		MockFAQ: entity.FAQ{
			ID:       "mock-faq-id",
			Question: "How do I register?",
			Answer:   "Use the register endpoint.",
			IsActive: true,
		},
		MockContact: entity.ContactInfo{
			ID:             "mock-contact-id",
			OfficeLocation: "Addis Ababa",
			Email:          "contact@example.com",
			Phone:          "911223344",
		},
	}
}

func (m *MockContentUsecase) SavePolicy(ctx context.Context, policyType, content, image string) (*entity.Policy, error) {
	if m.ShouldFailSavePolicy {
		return nil, errors.New("save policy failed")
	}
	return &m.MockPolicy, nil
}

func (m *MockContentUsecase) GetPolicy(ctx context.Context, policyType string) (*entity.Policy, error) {
	if m.ShouldFailGetPolicy {
		return nil, errors.New("policy not found")
	}
	return &m.MockPolicy, nil
}

func (m *MockContentUsecase) AddFAQ(ctx context.Context, question, answer string) (*entity.FAQ, error) {
	if m.ShouldFailAddFAQ {
		return nil, errors.New("add faq failed")
	}
	return &m.MockFAQ, nil
}

func (m *MockContentUsecase) UpdateFAQ(ctx context.Context, id, question, answer string, isActive *bool) (*entity.FAQ, error) {
	if m.ShouldFailUpdateFAQ {
		return nil, errors.New("update faq failed")
	}
	return &m.MockFAQ, nil
}

func (m *MockContentUsecase) GetFAQs(ctx context.Context) ([]entity.FAQ, error) {
	if m.ShouldFailGetFAQs {
		return nil, errors.New("list faqs failed")
	}
	return []entity.FAQ{m.MockFAQ}, nil
}

func (m *MockContentUsecase) GetFAQByID(ctx context.Context, id string) (*entity.FAQ, error) {
	if m.ShouldFailGetFAQ {
		return nil, errors.New("faq not found")
	}
	return &m.MockFAQ, nil
}

func (m *MockContentUsecase) SaveContact(ctx context.Context, id, officeLocation, email, phone string) (*entity.ContactInfo, error) {
	if m.ShouldFailSaveContact {
		return nil, errors.New("save contact failed")
	}
	return &m.MockContact, nil
}

func (m *MockContentUsecase) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	if m.ShouldFailGetContact {
		return nil, errors.New("get contact failed")
	}
	if m.NoContact {
		return nil, nil
	}
	return &m.MockContact, nil
}
