package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/entity"
	"github.com/mihretabn/taskhub/internal/usecase"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

func newVendorUsecase(vendorRepo *fakeVendorRepo, userRepo *fakeUserRepo, otpGen *fakeOTPGenerator) *usecase.VendorUsecase {
	if userRepo == nil {
		userRepo = newFakeUserRepo()
	}
	if otpGen == nil {
		otpGen = &fakeOTPGenerator{}
	}
	return usecase.NewVendorUsecase(vendorRepo, userRepo, fakeHasher{}, fakeTokenService{}, otpGen, nopLogger{}, fakeConfig{}, fakeValidator{})
}

func TestVendorRegisterByEmail(t *testing.T) {
	repo := newFakeVendorRepo()
	uc := newVendorUsecase(repo, nil, nil)

	vendor, token, err := uc.RegisterByEmail(context.Background(), usecasecontract.RegisterVendorByEmailInput{
		Email:    "vendor@example.com",
		Password: "secret1",
		Profile:  entity.VendorProfile{Name: "Fix It", CategoryID: "cat-1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "token-"+vendor.ID, token)
	assert.True(t, vendor.IsRegistered)
	assert.True(t, vendor.IsActive)
	assert.True(t, vendor.OTPVerified)
	assert.Equal(t, "Fix It", vendor.Name)
}

func TestVendorRegisterByEmail_Duplicate(t *testing.T) {
	repo := newFakeVendorRepo()
	uc := newVendorUsecase(repo, nil, nil)

	in := usecasecontract.RegisterVendorByEmailInput{Email: "vendor@example.com", Password: "secret1"}
	_, _, err := uc.RegisterByEmail(context.Background(), in)
	require.NoError(t, err)

	_, _, err = uc.RegisterByEmail(context.Background(), in)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	assert.EqualError(t, err, "Vendor already exists")
}

func TestVendorPhoneRegisterFlow(t *testing.T) {
	repo := newFakeVendorRepo()
	uc := newVendorUsecase(repo, nil, &fakeOTPGenerator{codes: []string{"4321"}})

	code, err := uc.RequestOTP(context.Background(), "911555666", "+251", entity.OTPPurposeRegister)
	require.NoError(t, err)
	assert.Equal(t, "4321", code)

	token, err := uc.VerifyOTP(context.Background(), usecasecontract.VerifyVendorOTPInput{
		Phone:       "911555666",
		CountryCode: "+251",
		OTP:         "4321",
		Purpose:     entity.OTPPurposeRegister,
		Profile:     entity.VendorProfile{Name: "Fix It", Gender: "female"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	stored, err := repo.GetVendorByPhone(context.Background(), "911555666", "+251")
	require.NoError(t, err)
	assert.True(t, stored.IsRegistered)
	assert.Equal(t, "Fix It", stored.Name)
	assert.Empty(t, stored.OTP)
}

func TestVendorRequestOTP_LoginUnknownPhone(t *testing.T) {
	uc := newVendorUsecase(newFakeVendorRepo(), nil, nil)

	_, err := uc.RequestOTP(context.Background(), "911555666", "+251", entity.OTPPurposeLogin)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Vendor not registered")
}

func TestVendorLogin_FailureReasons(t *testing.T) {
	repo := newFakeVendorRepo()
	uc := newVendorUsecase(repo, nil, nil)

	_, _, err := uc.RegisterByEmail(context.Background(), usecasecontract.RegisterVendorByEmailInput{
		Email:    "vendor@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	// unknown email and wrong password fail differently
	_, _, err = uc.Login(context.Background(), "nobody@example.com", "secret1")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Invalid email")

	_, _, err = uc.Login(context.Background(), "vendor@example.com", "wrong1")
	assert.True(t, apperror.IsKind(err, apperror.KindUnauthorized))
	assert.EqualError(t, err, "Invalid password")

	_, token, err := uc.Login(context.Background(), "vendor@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestVendorAddReview(t *testing.T) {
	vendorRepo := newFakeVendorRepo()
	userRepo := newFakeUserRepo()
	uc := newVendorUsecase(vendorRepo, userRepo, nil)

	vendor, _, err := uc.RegisterByEmail(context.Background(), usecasecontract.RegisterVendorByEmailInput{
		Email:    "vendor@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	require.NoError(t, userRepo.CreateUser(context.Background(), &entity.User{ID: "user-1", Name: "Abel"}))

	updated, err := uc.AddReview(context.Background(), vendor.ID, "user-1", 4, "good work")
	require.NoError(t, err)
	assert.Equal(t, 1, updated.TotalReviews)
	assert.Equal(t, 4.0, updated.AverageRating)

	updated, err = uc.AddReview(context.Background(), vendor.ID, "user-1", 1, "")
	require.NoError(t, err)
	assert.Equal(t, 2, updated.TotalReviews)
	assert.Equal(t, 2.5, updated.AverageRating)
}

func TestVendorAddReview_Invalid(t *testing.T) {
	vendorRepo := newFakeVendorRepo()
	userRepo := newFakeUserRepo()
	uc := newVendorUsecase(vendorRepo, userRepo, nil)

	vendor, _, err := uc.RegisterByEmail(context.Background(), usecasecontract.RegisterVendorByEmailInput{
		Email:    "vendor@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = uc.AddReview(context.Background(), vendor.ID, "user-1", 6, "")
	assert.True(t, apperror.IsKind(err, apperror.KindBadRequest))

	// unknown review author
	_, err = uc.AddReview(context.Background(), vendor.ID, "user-1", 4, "")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "User not found")

	require.NoError(t, userRepo.CreateUser(context.Background(), &entity.User{ID: "user-1"}))
	_, err = uc.AddReview(context.Background(), "missing-vendor", "user-1", 4, "")
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Vendor not found")
}
