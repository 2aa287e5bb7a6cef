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

// ContentUsecase implements the IContentUseCase interface.
type ContentUsecase struct {
	contentRepo contract.IContentRepository
	logger      usecasecontract.IAppLogger
}

// NewContentUsecase creates a new ContentUsecase instance.
func NewContentUsecase(contentRepo contract.IContentRepository, logger usecasecontract.IAppLogger) *ContentUsecase {
	return &ContentUsecase{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

var _ usecasecontract.IContentUseCase = (*ContentUsecase)(nil)

// SavePolicy upserts the policy for its type, keeping the stored
// image when none is supplied.
func (uc *ContentUsecase) SavePolicy(ctx context.Context, policyType, content, image string) (*entity.Policy, error) {
	if policyType != entity.PolicyTypePrivacy && policyType != entity.PolicyTypeTerms {
		return nil, apperror.BadRequest("Unknown policy type")
	}

	now := time.Now()
	policy := &entity.Policy{
		ID:        uuid.NewString(),
		Type:      policyType,
		Content:   content,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
	saved, err := uc.contentRepo.SavePolicy(ctx, policy)
	if err != nil {
		uc.logger.Errorf("failed to save policy: %v", err)
		return nil, apperror.Internal("failed to save policy", err)
	}
	return saved, nil
}

// GetPolicy fetches the policy of the given type.
func (uc *ContentUsecase) GetPolicy(ctx context.Context, policyType string) (*entity.Policy, error) {
	policy, err := uc.contentRepo.GetPolicyByType(ctx, policyType)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("Policy not found")
		}
		return nil, apperror.Internal("failed to fetch policy", err)
	}
	return policy, nil
}

// AddFAQ creates a new FAQ entry, active by default.
func (uc *ContentUsecase) AddFAQ(ctx context.Context, question, answer string) (*entity.FAQ, error) {
	now := time.Now()
	faq := &entity.FAQ{
		ID:        uuid.NewString(),
		Question:  question,
		Answer:    answer,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.contentRepo.CreateFAQ(ctx, faq); err != nil {
		uc.logger.Errorf("failed to create FAQ: %v", err)
		return nil, apperror.Internal("failed to add FAQ", err)
	}
	return faq, nil
}

// UpdateFAQ updates an FAQ; empty fields keep their stored value.
func (uc *ContentUsecase) UpdateFAQ(ctx context.Context, id, question, answer string, isActive *bool) (*entity.FAQ, error) {
	faq, err := uc.contentRepo.GetFAQByID(ctx, id)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("FAQ not found")
		}
		return nil, apperror.Internal("failed to update FAQ", err)
	}

	if question != "" {
		faq.Question = question
	}
	if answer != "" {
		faq.Answer = answer
	}
	if isActive != nil {
		faq.IsActive = *isActive
	}
	updated, err := uc.contentRepo.UpdateFAQ(ctx, faq)
	if err != nil {
		uc.logger.Errorf("failed to update FAQ: %v", err)
		return nil, apperror.Internal("failed to update FAQ", err)
	}
	return updated, nil
}

// GetFAQs returns all FAQ entries, newest first.
func (uc *ContentUsecase) GetFAQs(ctx context.Context) ([]entity.FAQ, error) {
	faqs, err := uc.contentRepo.ListFAQs(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list FAQs: %v", err)
		return nil, apperror.Internal("failed to fetch FAQs", err)
	}
	return faqs, nil
}

// GetFAQByID fetches a single FAQ entry.
func (uc *ContentUsecase) GetFAQByID(ctx context.Context, id string) (*entity.FAQ, error) {
	faq, err := uc.contentRepo.GetFAQByID(ctx, id)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, apperror.NotFound("FAQ not found")
		}
		return nil, apperror.Internal("failed to fetch FAQ", err)
	}
	return faq, nil
}

// SaveContact creates or updates the single contact-us record. With an
// ID it updates that record; without one it creates the record only if
// none exists yet.
func (uc *ContentUsecase) SaveContact(ctx context.Context, id, officeLocation, email, phone string) (*entity.ContactInfo, error) {
	now := time.Now()

	if id != "" {
		contact := &entity.ContactInfo{
			ID:             id,
			OfficeLocation: officeLocation,
			Email:          email,
			Phone:          phone,
			UpdatedAt:      now,
		}
		updated, err := uc.contentRepo.UpdateContact(ctx, contact)
		if err != nil {
			if apperror.IsKind(err, apperror.KindNotFound) {
				return nil, apperror.NotFound("ContactUs not found")
			}
			uc.logger.Errorf("failed to update contact info: %v", err)
			return nil, apperror.Internal("failed to save contact info", err)
		}
		return updated, nil
	}

	existing, err := uc.contentRepo.GetContact(ctx)
	if err != nil && !apperror.IsKind(err, apperror.KindNotFound) {
		uc.logger.Errorf("failed to check for existing contact info: %v", err)
		return nil, apperror.Internal("failed to save contact info", err)
	}
	if existing != nil {
		return nil, apperror.Conflict("Only one ContactUs entry allowed")
	}

	contact := &entity.ContactInfo{
		ID:             uuid.NewString(),
		OfficeLocation: officeLocation,
		Email:          email,
		Phone:          phone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.contentRepo.CreateContact(ctx, contact); err != nil {
		uc.logger.Errorf("failed to create contact info: %v", err)
		return nil, apperror.Internal("failed to save contact info", err)
	}
	return contact, nil
}

// GetContact fetches the contact-us record, nil when none exists.
func (uc *ContentUsecase) GetContact(ctx context.Context) (*entity.ContactInfo, error) {
	contact, err := uc.contentRepo.GetContact(ctx)
	if err != nil {
		if apperror.IsKind(err, apperror.KindNotFound) {
			return nil, nil
		}
		return nil, apperror.Internal("failed to fetch contact info", err)
	}
	return contact, nil
}
