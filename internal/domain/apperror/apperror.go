package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure so the transport layer can map it to a
// status code without inspecting message strings.
type Kind int

const (
	KindBadRequest Kind = iota
	KindUnauthorized
	KindNotFound
	KindInvalidOTP
	KindConflict
	KindInternal
)

// FieldError describes a single failed validation on a request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is the error type every usecase returns for expected
// failures. Unexpected errors stay plain and are treated as internal.
type AppError struct {
	kind    Kind
	message string
	fields  []FieldError
	cause   error
}

func (e *AppError) Error() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Kind returns the failure classification.
func (e *AppError) Kind() Kind {
	return e.kind
}

// Fields returns per-field validation details, if any.
func (e *AppError) Fields() []FieldError {
	return e.fields
}

// HTTPStatus maps the kind to its HTTP status code. Conflicts and
// invalid OTPs surface as 400 to match the public contract.
func (e *AppError) HTTPStatus() int {
	switch e.kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

func New(kind Kind, message string) *AppError {
	return &AppError{kind: kind, message: message}
}

// Wrap attaches an underlying cause, surfaced only outside production.
func Wrap(kind Kind, message string, cause error) *AppError {
	return &AppError{kind: kind, message: message, cause: cause}
}

func BadRequest(message string) *AppError {
	return New(KindBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, message)
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message)
}

func InvalidOTP(message string) *AppError {
	return New(KindInvalidOTP, message)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message)
}

func Internal(message string, cause error) *AppError {
	return Wrap(KindInternal, message, cause)
}

// Validation builds a BadRequest carrying per-field details.
func Validation(message string, fields []FieldError) *AppError {
	return &AppError{kind: KindBadRequest, message: message, fields: fields}
}

// From extracts an *AppError from err; unknown errors are wrapped as
// internal so the responder always has a kind to work with.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("Internal Server Error", err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.kind == kind
	}
	return false
}
