package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/entity"
	"github.com/mihretabn/taskhub/internal/usecase"
)

func TestPolicySaveAndGet(t *testing.T) {
	repo := newFakeContentRepo()
	uc := usecase.NewContentUsecase(repo, nopLogger{})

	_, err := uc.SavePolicy(context.Background(), "cookie", "text", "")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))

	saved, err := uc.SavePolicy(context.Background(), entity.PolicyTypePrivacy, "We respect your privacy.", "uploads/policy.png")
	require.NoError(t, err)
	assert.Equal(t, entity.PolicyTypePrivacy, saved.Type)

	// updating without an image keeps the stored one
	saved, err = uc.SavePolicy(context.Background(), entity.PolicyTypePrivacy, "Updated.", "")
	require.NoError(t, err)
	assert.Equal(t, "Updated.", saved.Content)
	assert.Equal(t, "uploads/policy.png", saved.Image)

	fetched, err := uc.GetPolicy(context.Background(), entity.PolicyTypePrivacy)
	require.NoError(t, err)
	assert.Equal(t, "Updated.", fetched.Content)

	_, err = uc.GetPolicy(context.Background(), entity.PolicyTypeTerms)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestFAQLifecycle(t *testing.T) {
	repo := newFakeContentRepo()
	uc := usecase.NewContentUsecase(repo, nopLogger{})

	faq, err := uc.AddFAQ(context.Background(), "How do I register?", "Use the register endpoint.")
	require.NoError(t, err)
	assert.True(t, faq.IsActive)

	// empty fields keep stored values
	updated, err := uc.UpdateFAQ(context.Background(), faq.ID, "", "Call support.", nil)
	require.NoError(t, err)
	assert.Equal(t, "How do I register?", updated.Question)
	assert.Equal(t, "Call support.", updated.Answer)
	assert.True(t, updated.IsActive)

	inactive := false
	updated, err = uc.UpdateFAQ(context.Background(), faq.ID, "", "", &inactive)
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	faqs, err := uc.GetFAQs(context.Background())
	require.NoError(t, err)
	assert.Len(t, faqs, 1)

	fetched, err := uc.GetFAQByID(context.Background(), faq.ID)
	require.NoError(t, err)
	assert.Equal(t, faq.ID, fetched.ID)

	_, err = uc.UpdateFAQ(context.Background(), "missing", "q", "a", nil)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestContactSingleRecord(t *testing.T) {
	repo := newFakeContentRepo()
	uc := usecase.NewContentUsecase(repo, nopLogger{})

	// missing record reads as null, not an error
	contact, err := uc.GetContact(context.Background())
	require.NoError(t, err)
	assert.Nil(t, contact)

	created, err := uc.SaveContact(context.Background(), "", "Addis Ababa", "contact@example.com", "911223344")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	// a second create without an ID is rejected
	_, err = uc.SaveContact(context.Background(), "", "Adama", "other@example.com", "911000000")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	assert.EqualError(t, err, "Only one ContactUs entry allowed")

	updated, err := uc.SaveContact(context.Background(), created.ID, "Adama", "other@example.com", "911000000")
	require.NoError(t, err)
	assert.Equal(t, "Adama", updated.OfficeLocation)

	_, err = uc.SaveContact(context.Background(), "missing", "X", "x@example.com", "1")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}
