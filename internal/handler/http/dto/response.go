package dto

import (
	"github.com/mihretabn/taskhub/internal/domain/apperror"
)

// APIResponse is the uniform success envelope every endpoint returns.
type APIResponse struct {
	StatusCode int         `json:"statusCode"`
	Status     bool        `json:"status"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// APIError is the uniform failure envelope. Stack carries internal
// error detail and is populated only outside production.
type APIError struct {
	StatusCode int                   `json:"statusCode"`
	Status     bool                  `json:"status"`
	Message    string                `json:"message"`
	Errors     []apperror.FieldError `json:"errors"`
	Stack      string                `json:"stack,omitempty"`
}

// NewAPIResponse builds a success envelope.
func NewAPIResponse(statusCode int, message string, data interface{}) APIResponse {
	return APIResponse{
		StatusCode: statusCode,
		Status:     true,
		Message:    message,
		Data:       data,
	}
}
