package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/handler/http/dto"
	usecasecontract "github.com/mihretabn/taskhub/internal/usecase/contract"
)

// AdminHandlerInterface defines the methods for admin handler to allow
// interface-based dependency injection (for testing/mocking)
type AdminHandlerInterface interface {
	AdminSignup(*gin.Context)
	LoginAdmin(*gin.Context)
	GetAdminDetail(*gin.Context)
	UpdateAdminDetail(*gin.Context)
	ResetAdminPassword(*gin.Context)
	GetAllUsers(*gin.Context)
	PolicyUpdate(*gin.Context)
	GetPolicy(*gin.Context)
	AddFAQ(*gin.Context)
	UpdateFAQ(*gin.Context)
	GetAllFAQs(*gin.Context)
	GetFAQById(*gin.Context)
	AddOrUpdateContactUs(*gin.Context)
	GetContactUs(*gin.Context)
	AddCategory(*gin.Context)
	GetCategories(*gin.Context)
	GetCategoryById(*gin.Context)
	UpdateCategory(*gin.Context)
	DeleteCategory(*gin.Context)
}

// Ensure AdminHandler implements AdminHandlerInterface
var _ AdminHandlerInterface = (*AdminHandler)(nil)

type AdminHandler struct {
	adminUsecase    usecasecontract.IAdminUseCase
	categoryUsecase usecasecontract.ICategoryUseCase
	contentUsecase  usecasecontract.IContentUseCase
	files           contract.IFileStore
}

func NewAdminHandler(adminUsecase usecasecontract.IAdminUseCase, categoryUsecase usecasecontract.ICategoryUseCase, contentUsecase usecasecontract.IContentUseCase, files contract.IFileStore) *AdminHandler {
	return &AdminHandler{
		adminUsecase:    adminUsecase,
		categoryUsecase: categoryUsecase,
		contentUsecase:  contentUsecase,
		files:           files,
	}
}

// AdminSignup creates an admin account and returns a bearer token.
func (h *AdminHandler) AdminSignup(c *gin.Context) {
	var req dto.AdminSignupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	token, err := h.adminUsecase.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Admin registered successfully", gin.H{"token": token})
}

// LoginAdmin handles email/password authentication.
func (h *AdminHandler) LoginAdmin(c *gin.Context) {
	var req dto.AdminLoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	admin, token, err := h.adminUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Admin logged in successfully", gin.H{"admin": admin, "token": token})
}

// GetAdminDetail returns the authenticated admin's account.
func (h *AdminHandler) GetAdminDetail(c *gin.Context) {
	adminID, ok := accountID(c)
	if !ok {
		return
	}

	admin, err := h.adminUsecase.GetAdminByID(c.Request.Context(), adminID)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Admin found", admin)
}

// UpdateAdminDetail updates the authenticated admin's name and email.
func (h *AdminHandler) UpdateAdminDetail(c *gin.Context) {
	adminID, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.UpdateAdminRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	admin, err := h.adminUsecase.UpdateDetail(c.Request.Context(), adminID, req.Name, req.Email)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Admin updated successfully", admin)
}

// ResetAdminPassword replaces the authenticated admin's password.
func (h *AdminHandler) ResetAdminPassword(c *gin.Context) {
	adminID, ok := accountID(c)
	if !ok {
		return
	}

	var req dto.ResetAdminPasswordRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		ErrorHandler(c, apperror.BadRequest("Passwords do not match"))
		return
	}

	if err := h.adminUsecase.ResetPassword(c.Request.Context(), adminID, req.NewPassword); err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Password reset successfully", nil)
}

// GetAllUsers lists users with pagination and optional search/status
// query params. status is "registered" or "unregistered".
func (h *AdminHandler) GetAllUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	filter := contract.UserListFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search"),
	}
	switch c.Query("status") {
	case "registered":
		registered := true
		filter.Registered = &registered
	case "unregistered":
		registered := false
		filter.Registered = &registered
	}

	result, err := h.adminUsecase.ListUsers(c.Request.Context(), filter)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Users fetched successfully", result)
}

// PolicyUpdate creates or replaces a policy document. The image upload
// is optional; an existing image survives an update without one.
func (h *AdminHandler) PolicyUpdate(c *gin.Context) {
	var req dto.PolicyRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	image, err := saveUpload(c, h.files, "image")
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	policy, err := h.contentUsecase.SavePolicy(c.Request.Context(), req.Type, req.Content, image)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Policy saved successfully", policy)
}

// GetPolicy returns the policy of the requested type.
func (h *AdminHandler) GetPolicy(c *gin.Context) {
	policyType := c.Query("type")
	if policyType == "" {
		ErrorHandler(c, apperror.BadRequest("Policy type is required"))
		return
	}

	policy, err := h.contentUsecase.GetPolicy(c.Request.Context(), policyType)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Policy found", policy)
}

// AddFAQ creates an FAQ entry, active by default.
func (h *AdminHandler) AddFAQ(c *gin.Context) {
	var req dto.AddFAQRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	faq, err := h.contentUsecase.AddFAQ(c.Request.Context(), req.Question, req.Answer)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "FAQ added successfully", faq)
}

// UpdateFAQ edits an FAQ. Empty fields keep their stored values.
func (h *AdminHandler) UpdateFAQ(c *gin.Context) {
	var req dto.UpdateFAQRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	faq, err := h.contentUsecase.UpdateFAQ(c.Request.Context(), req.ID, req.Question, req.Answer, req.IsActive)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "FAQ updated successfully", faq)
}

// GetAllFAQs lists every FAQ entry.
func (h *AdminHandler) GetAllFAQs(c *gin.Context) {
	faqs, err := h.contentUsecase.GetFAQs(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "FAQs fetched successfully", faqs)
}

// GetFAQById returns a single FAQ by its id query param.
func (h *AdminHandler) GetFAQById(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		ErrorHandler(c, apperror.BadRequest("FAQ id is required"))
		return
	}

	faq, err := h.contentUsecase.GetFAQByID(c.Request.Context(), id)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "FAQ found", faq)
}

// AddOrUpdateContactUs writes the single contact-us record. A body
// with an id updates that record, without one it creates the record.
func (h *AdminHandler) AddOrUpdateContactUs(c *gin.Context) {
	var req dto.ContactRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	contact, err := h.contentUsecase.SaveContact(c.Request.Context(), req.ID, req.OfficeLocation, req.Email, req.Phone)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Contact info saved successfully", contact)
}

// GetContactUs returns the contact-us record, or null when none exists.
func (h *AdminHandler) GetContactUs(c *gin.Context) {
	contact, err := h.contentUsecase.GetContact(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Contact info fetched successfully", contact)
}

// AddCategory creates a category. The image upload is mandatory.
func (h *AdminHandler) AddCategory(c *gin.Context) {
	var req dto.AddCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	image, err := saveUpload(c, h.files, "categoryImage")
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	if image == "" {
		ErrorHandler(c, apperror.BadRequest("Category image is required"))
		return
	}

	category, err := h.categoryUsecase.AddCategory(c.Request.Context(), req.Name, image)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, "Category added successfully", category)
}

// GetCategories lists all service categories.
func (h *AdminHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryUsecase.GetCategories(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Categories fetched successfully", categories)
}

// GetCategoryById returns a single category by its id query param.
func (h *AdminHandler) GetCategoryById(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		ErrorHandler(c, apperror.BadRequest("Category id is required"))
		return
	}

	category, err := h.categoryUsecase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Category found", category)
}

// UpdateCategory edits a category's name and/or image. Empty fields
// keep their stored values.
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	image, err := saveUpload(c, h.files, "categoryImage")
	if err != nil {
		ErrorHandler(c, err)
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(c.Request.Context(), req.CategoryID, req.Name, image)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory removes a category and returns the deleted record.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		ErrorHandler(c, apperror.BadRequest("Category id is required"))
		return
	}

	category, err := h.categoryUsecase.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, "Category deleted successfully", category)
}
