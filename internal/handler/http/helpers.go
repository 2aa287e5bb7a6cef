package http

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mihretabn/taskhub/internal/domain/apperror"
	"github.com/mihretabn/taskhub/internal/domain/contract"
	"github.com/mihretabn/taskhub/internal/handler/http/dto"
)

// ErrorHandler centralizes failure responses: every raised error is
// mapped to a status code and the uniform envelope. Internal detail
// surfaces in the stack field only outside release mode.
func ErrorHandler(c *gin.Context, err error) {
	appErr := apperror.From(err)
	fields := appErr.Fields()
	if fields == nil {
		fields = []apperror.FieldError{}
	}
	resp := dto.APIError{
		StatusCode: appErr.HTTPStatus(),
		Status:     false,
		Message:    appErr.Error(),
		Errors:     fields,
	}
	if gin.Mode() != gin.ReleaseMode {
		if cause := appErr.Unwrap(); cause != nil {
			resp.Stack = cause.Error()
		}
	}
	c.JSON(resp.StatusCode, resp)
}

// SuccessHandler centralizes success responses in the envelope.
func SuccessHandler(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, dto.NewAPIResponse(statusCode, message, data))
}

// BindAndValidate binds the request body and responds with a
// BadRequest envelope on failure. Multipart bodies bind through the
// form tags so upload endpoints share the same request types.
func BindAndValidate(c *gin.Context, req interface{}) error {
	var err error
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		err = c.ShouldBind(req)
	} else {
		err = c.ShouldBindJSON(req)
	}
	if err != nil {
		ErrorHandler(c, apperror.BadRequest(err.Error()))
		return err
	}
	return nil
}

// accountID extracts the authenticated account set by the auth
// middleware.
func accountID(c *gin.Context) (string, bool) {
	id, exists := c.Get("accountID")
	if !exists {
		ErrorHandler(c, apperror.Unauthorized("Unauthorized"))
		return "", false
	}
	return id.(string), true
}

// saveUpload stores an optional multipart file and returns its stored
// name, or "" when the field is absent.
func saveUpload(c *gin.Context, store contract.IFileStore, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}
	name, err := store.Save(fh)
	if err != nil {
		return "", apperror.Internal("failed to store upload", err)
	}
	return name, nil
}
