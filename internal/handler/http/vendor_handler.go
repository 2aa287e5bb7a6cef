package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/domain/entity"
	"github.com/mihretabn/taskhub/internal/handler/http/dto"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// VendorHandlerInterface defines the methods for vendor handler to allow
// interface-based dependency injection (for testing/mocking)
type VendorHandlerInterface interface {
	RegisterVendor(*gin.Context)
	VendorVerifyOtp(*gin.Context)
	LoginVendor(*gin.Context)
	GetVendorById(*gin.Context)
	GetAllCategories(*gin.Context)
	AddVendorReview(*gin.Context)
}

// Ensure VendorHandler implements VendorHandlerInterface
var _ VendorHandlerInterface = (*VendorHandler)(nil)

type VendorHandler struct {
	vendorUsecase   usecasecontract.IVendorUseCase
	categoryUsecase usecasecontract.ICategoryUseCase
	files           contract.IFileStore
}

func NewVendorHandler(vendorUsecase usecasecontract.IVendorUseCase, categoryUsecase usecasecontract.ICategoryUseCase, files contract.IFileStore) *VendorHandler {
	return &VendorHandler{
		vendorUsecase:   vendorUsecase,
		categoryUsecase: categoryUsecase,
		files:           files,
	}
}

// vendorUploads collects the three optional document uploads.
// A missing field leaves its path empty.
func (h *VendorHandler) vendorUploads(c *gin.Context) (profileImage, referenceLetter, identityDocument string, err error) {
	if profileImage, err = saveUpload(c, h.files, "vendorProfileImage"); err != nil {
		return
	}
	if referenceLetter, err = saveUpload(c, h.files, "vendorReferenceLetter"); err != nil {
		return
	}
	identityDocument, err = saveUpload(c, h.files, "vendorIdentityDocument")
	return
}

// RegisterVendor handles both registration paths: email creates the
// account with its full profile, phone starts an OTP cycle.
func (h *VendorHandler) RegisterVendor(c *gin.Context) {
	var req dto.RegisterVendorRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	switch req.Type {
	case "email":
		profileImage, referenceLetter, identityDocument, err := h.vendorUploads(c)
		if err != nil {
			ErrorHandler(c, err)
			return
		}
		vendor, token, err := h.vendorUsecase.RegisterByEmail(c.Request.Context(), usecasecontract.RegisterVendorByEmailInput{
			Email:    req.Email,
			Password: req.Password,
			Profile: entity.VendorProfile{
				Name:             req.Name,
				Introduction:     req.Introduction,
				Bio:              req.Bio,
				WorkExperience:   req.WorkExperience,
				ProfileImage:     profileImage,
				ReferenceLetter:  referenceLetter,
				IdentityDocument: identityDocument,
				Latitude:         req.Latitude,
				Longitude:        req.Longitude,
				DOB:              req.DOB,
				Gender:           req.Gender,
				CategoryID:       req.CategoryID,
				Languages:        req.Languages,
				AvailabilityType: req.AvailabilityType,
			},
		})
		if err != nil {
			ErrorHandler(c, err)
			return
		}
		SuccessHandler(c, http.StatusCreated, "Vendor registered successfully", gin.H{"vendor": vendor, "token": token})

	case "phone":
		otp, err := h.vendorUsecase.RequestOTP(c.Request.Context(), req.Phone, req.CountryCode, req.LoginType)
		if err != nil {
			ErrorHandler(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, "Otp sent successfully", otp)

	default:
		ErrorHandler(c, apperror.BadRequest("Invalid registration type"))
	}
}

// VendorVerifyOtp consumes a pending code and returns a bearer token.
func (h *VendorHandler) VendorVerifyOtp(c *gin.Context) {
	var req dto.VerifyVendorOTPRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	profileImage, referenceLetter, identityDocument, err := h.vendorUploads(c)
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	token, err := h.vendorUsecase.VerifyOTP(c.Request.Context(), usecasecontract.VerifyVendorOTPInput{
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		OTP:         req.OTP,
		Purpose:     req.LoginType,
		Profile: entity.VendorProfile{
			Name:             req.Name,
			Introduction:     req.Introduction,
			Bio:              req.Bio,
			WorkExperience:   req.WorkExperience,
			ProfileImage:     profileImage,
			ReferenceLetter:  referenceLetter,
			IdentityDocument: identityDocument,
			Latitude:         req.Latitude,
			Longitude:        req.Longitude,
			DOB:              req.DOB,
			Gender:           req.Gender,
			CategoryID:       req.CategoryID,
			Languages:        req.Languages,
			AvailabilityType: req.AvailabilityType,
		},
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Vendor verified successfully", gin.H{"token": token})
}

// LoginVendor handles email/password authentication.
func (h *VendorHandler) LoginVendor(c *gin.Context) {
	var req dto.LoginVendorRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	vendor, token, err := h.vendorUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Vendor logged in successfully", gin.H{"vendor": vendor, "token": token})
}

// GetVendorById returns the authenticated vendor's account.
func (h *VendorHandler) GetVendorById(c *gin.Context) {
	vendorID, ok := accountID(c)
	if !ok {
		return
	}

	vendor, err := h.vendorUsecase.GetVendorByID(c.Request.Context(), vendorID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Vendor found", vendor)
}

// GetAllCategories lists the service categories a vendor can pick from.
func (h *VendorHandler) GetAllCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.GetCategories(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Categories fetched successfully", categories)
}

// AddVendorReview records a rating from the authenticated user and
// returns the vendor with its recomputed average.
func (h *VendorHandler) AddVendorReview(c *gin.Context) {
	userID, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.AddVendorReviewRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	vendor, err := h.vendorUsecase.AddReview(c.Request.Context(), req.VendorID, userID, req.Rating, req.Comment)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Review added successfully", vendor)
}
