package http_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/mihretabn/taskhub/internal/handler/http"
	dto "github.com/mihretabn/taskhub/internal/handler/http/dto"
	mocks "github.com/mihretabn/taskhub/internal/handler/http/mocks"
)

func setupAdminRouter(h handler.AdminHandlerInterface) *gin.Engine {
	auth := fakeAuth("mock-admin-id")
	r := gin.New()
	r.POST("/adminSignup", h.AdminSignup)
	r.POST("/loginAdmin", h.LoginAdmin)
	r.GET("/getAdminDetail", auth, h.GetAdminDetail)
	r.POST("/updateAdminDetail", auth, h.UpdateAdminDetail)
	r.POST("/resetAdminPassword", auth, h.ResetAdminPassword)
	r.GET("/getAllUsers", auth, h.GetAllUsers)
	r.POST("/policyUpdate", auth, h.PolicyUpdate)
	r.GET("/getPolicy", h.GetPolicy)
	r.POST("/addFAQ", auth, h.AddFAQ)
	r.POST("/updateFAQ", auth, h.UpdateFAQ)
	r.GET("/getAllFAQs", h.GetAllFAQs)
	r.GET("/getFAQById", h.GetFAQById)
	r.POST("/addOrUpdateContactUs", auth, h.AddOrUpdateContactUs)
	r.GET("/getContactUs", h.GetContactUs)
	r.POST("/addCategory", auth, h.AddCategory)
	r.GET("/getCategories", h.GetCategories)
	r.GET("/getCategoryById", h.GetCategoryById)
	r.POST("/updateCategory", auth, h.UpdateCategory)
	r.DELETE("/deleteCategory", auth, h.DeleteCategory)
	return r
}

func newAdminHandler() (*mocks.MockAdminUsecase, *mocks.MockCategoryUsecase, *mocks.MockContentUsecase, *handler.AdminHandler) {
	adminUsecase := mocks.NewMockAdminUsecase()
	categoryUsecase := mocks.NewMockCategoryUsecase()
	contentUsecase := mocks.NewMockContentUsecase()
	h := handler.NewAdminHandler(adminUsecase, categoryUsecase, contentUsecase, &mocks.MockFileStore{})
	return adminUsecase, categoryUsecase, contentUsecase, h
}

func getPath(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestAdminSignup(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/adminSignup", dto.AdminSignupRequest{
		Name:     "Root",
		Email:    "admin@example.com",
		Password: "secret1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Admin registered successfully")
}

func TestLoginAdmin(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/loginAdmin", dto.AdminLoginRequest{
		Email:    "admin@example.com",
		Password: "secret1",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin logged in successfully")
	assert.Contains(t, w.Body.String(), "mock_token")
}

func TestGetAdminDetail(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := getPath(r, "/getAdminDetail")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin found")
	assert.Contains(t, w.Body.String(), "mock-admin-id")
}

func TestUpdateAdminDetail(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/updateAdminDetail", dto.UpdateAdminRequest{
		Name:  "Superuser",
		Email: "root@example.com",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Admin updated successfully")
	assert.Contains(t, w.Body.String(), "Superuser")
}

func TestResetAdminPassword(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/resetAdminPassword", dto.ResetAdminPasswordRequest{
		NewPassword:     "newsecret",
		ConfirmPassword: "newsecret",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password reset successfully")
}

func TestResetAdminPassword_Mismatch(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/resetAdminPassword", dto.ResetAdminPasswordRequest{
		NewPassword:     "newsecret",
		ConfirmPassword: "different",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
}

func TestGetAllUsers(t *testing.T) {
	adminUsecase, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := getPath(r, "/getAllUsers?page=2&limit=5&search=Test&status=registered")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Users fetched successfully")
	assert.Equal(t, 2, adminUsecase.LastFilter.Page)
	assert.Equal(t, 5, adminUsecase.LastFilter.Limit)
	assert.Equal(t, "Test", adminUsecase.LastFilter.Search)
	require.NotNil(t, adminUsecase.LastFilter.Registered)
	assert.True(t, *adminUsecase.LastFilter.Registered)
}

func TestGetAllUsers_DefaultPaging(t *testing.T) {
	adminUsecase, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := getPath(r, "/getAllUsers")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, adminUsecase.LastFilter.Page)
	assert.Equal(t, 10, adminUsecase.LastFilter.Limit)
	assert.Nil(t, adminUsecase.LastFilter.Registered)
}

func TestPolicyUpdateAndGet(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/policyUpdate", dto.PolicyRequest{
		Type:    "privacy",
		Content: "We respect your privacy.",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Policy saved successfully")

	w = getPath(r, "/getPolicy?type=privacy")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Policy found")

	w = getPath(r, "/getPolicy")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Policy type is required")
}

func TestFAQEndpoints(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/addFAQ", dto.AddFAQRequest{
		Question: "How do I register?",
		Answer:   "Use the register endpoint.",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "FAQ added successfully")

	inactive := false
	w = postJSON(r, "/updateFAQ", dto.UpdateFAQRequest{
		ID:       "mock-faq-id",
		IsActive: &inactive,
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FAQ updated successfully")

	w = getPath(r, "/getAllFAQs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FAQs fetched successfully")

	w = getPath(r, "/getFAQById?id=mock-faq-id")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "FAQ found")

	w = getPath(r, "/getFAQById")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactUsEndpoints(t *testing.T) {
	_, _, contentUsecase, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postJSON(r, "/addOrUpdateContactUs", dto.ContactRequest{
		OfficeLocation: "Addis Ababa",
		Email:          "contact@example.com",
		Phone:          "911223344",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Contact info saved successfully")

	w = getPath(r, "/getContactUs")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Addis Ababa")

	// a missing record still succeeds with null data
	contentUsecase.NoContact = true
	w = getPath(r, "/getContactUs")
	assert.Equal(t, http.StatusOK, w.Code)
}

func postMultipart(r *gin.Engine, path string, fields map[string]string, files map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	for field, filename := range files {
		fw, _ := mw.CreateFormFile(field, filename)
		fw.Write([]byte("file-content"))
	}
	mw.Close()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)
	return w
}

func TestAddCategory(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postMultipart(r, "/addCategory",
		map[string]string{"categoryName": "Plumbing"},
		map[string]string{"categoryImage": "plumbing.png"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Category added successfully")
}

func TestAddCategory_MissingImage(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postMultipart(r, "/addCategory",
		map[string]string{"categoryName": "Plumbing"}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category image is required")
}

func TestCategoryReadEndpoints(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := getPath(r, "/getCategories")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Categories fetched successfully")

	w = getPath(r, "/getCategoryById?id=mock-category-id")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category found")

	w = getPath(r, "/getCategoryById")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCategory(t *testing.T) {
	_, _, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := postMultipart(r, "/updateCategory",
		map[string]string{"categoryId": "mock-category-id", "categoryName": "Pipework"}, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category updated successfully")
}

func TestDeleteCategory(t *testing.T) {
	_, categoryUsecase, _, h := newAdminHandler()
	r := setupAdminRouter(h)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/deleteCategory?id=mock-category-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Category deleted successfully")

	categoryUsecase.ShouldFailDelete = true
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("DELETE", "/deleteCategory?id=mock-category-id", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
