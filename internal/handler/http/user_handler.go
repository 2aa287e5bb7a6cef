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

// UserHandlerInterface defines the methods for user handler to allow
// interface-based dependency injection (for testing/mocking)
type UserHandlerInterface interface {
	RegisterUser(*gin.Context)
	VerifyOtp(*gin.Context)
	LoginUser(*gin.Context)
	GetUserById(*gin.Context)
}

// Ensure UserHandler implements UserHandlerInterface
var _ UserHandlerInterface = (*UserHandler)(nil)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
	files       contract.IFileStore
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase, files contract.IFileStore) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		files:       files,
	}
}

// RegisterUser handles both registration paths: email creates the
// account outright, phone starts an OTP cycle.
func (h *UserHandler) RegisterUser(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	switch req.Type {
	case "email":
		profileImage, err := saveUpload(c, h.files, "profileImage")
		if err != nil {
			ErrorHandler(c, err)
			return
		}
		user, token, err := h.userUsecase.RegisterByEmail(c.Request.Context(), usecasecontract.RegisterUserByEmailInput{
			Name:         req.Name,
			Email:        req.Email,
			Password:     req.Password,
			Location:     req.Location,
			Language:     req.Language,
			ProfileImage: profileImage,
		})
		if err != nil {
			ErrorHandler(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, "User registered successfully", gin.H{"user": user, "token": token})

	case "phone":
		otp, err := h.userUsecase.RequestOTP(c.Request.Context(), req.Phone, req.CountryCode, req.LoginType)
		if err != nil {
			ErrorHandler(c, err)
			return
		}
		SuccessHandler(c, http.StatusOK, "Otp sent successfully", otp)

	default:
		ErrorHandler(c, apperror.BadRequest("Invalid registration type"))
	}
}

// VerifyOtp consumes a pending code and returns a bearer token.
func (h *UserHandler) VerifyOtp(c *gin.Context) {
	var req dto.VerifyUserOTPRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	profileImage, err := saveUpload(c, h.files, "profileImage")
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	token, err := h.userUsecase.VerifyOTP(c.Request.Context(), usecasecontract.VerifyUserOTPInput{
		Phone:       req.Phone,
		CountryCode: req.CountryCode,
		OTP:         req.OTP,
		Purpose:     req.Type,
		Profile: entity.UserProfile{
			Name:         req.Name,
			Location:     req.Location,
			Language:     req.Language,
			ProfileImage: profileImage,
		},
	})
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "User verified successfully", gin.H{"token": token})
}

// LoginUser handles email/password authentication.
func (h *UserHandler) LoginUser(c *gin.Context) {
	var req dto.LoginUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, token, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "User logged in successfully", gin.H{"user": user, "token": token})
}

// GetUserById returns the authenticated user's account. Secret and
// OTP fields never serialize.
func (h *UserHandler) GetUserById(c *gin.Context) {
	userID, ok := accountID(c)
	if !ok {
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "User found", user)
}
