package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrBookNotFound is returned when a book id does not resolve to a row.
	ErrBookNotFound = errors.New("book not found")
	// ErrUserNotFound is returned when a user id does not resolve to a row.
	ErrUserNotFound = errors.New("user not found")
	// ErrConflict marks a uniqueness violation reported by the storage engine.
	ErrConflict = errors.New("conflict")
)

// NewConflict wraps a storage error so it matches ErrConflict while keeping
// the engine's message.
func NewConflict(err error) error {
	return fmt.Errorf("%w: %v", ErrConflict, err)
}

// FieldError names one offending input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Fields []FieldError `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     []FieldError
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrBookNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "BOOK_NOT_FOUND")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrConflict):
		return NewHTTPError(http.StatusConflict, err.Error(), "CONFLICT")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}

// NewValidationError turns a decode or validation failure into a 422 listing
// the offending fields. Input that is not JSON at all yields a 400.
func NewValidationError(err error) *HTTPError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, FieldError{Field: fe.Field(), Message: ruleMessage(fe)})
		}
		return validationFailed(fields)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validationFailed([]FieldError{{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
		}})
	}

	return NewHTTPError(http.StatusBadRequest, "invalid request body", "INVALID_JSON")
}

// NewInvalidParamError reports a malformed path parameter.
func NewInvalidParamError(name, message string) *HTTPError {
	return validationFailed([]FieldError{{Field: name, Message: message}})
}

func validationFailed(fields []FieldError) *HTTPError {
	e := NewHTTPError(http.StatusUnprocessableEntity, "validation failed", "VALIDATION_FAILED")
	e.Fields = fields
	return e
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
