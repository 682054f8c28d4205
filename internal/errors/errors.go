package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a referenced user does not resolve.
	ErrUserNotFound = errors.New("user not found")
	// ErrCategoryNotFound is returned when a referenced category does not resolve.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrItemNotFound is returned when a referenced item does not resolve.
	ErrItemNotFound = errors.New("item not found")
	// ErrSearchHoundNotFound is returned when a referenced search hound does not resolve.
	ErrSearchHoundNotFound = errors.New("search hound not found")
	// ErrMissingCategory is returned when an item payload has no category.
	ErrMissingCategory = errors.New("missing category for item")
	// ErrInvalidItemType is returned when an item type is not a known variant.
	ErrInvalidItemType = errors.New("invalid item type")
	// ErrCategoryCycle is returned when reparenting a category would create a cycle.
	ErrCategoryCycle = errors.New("category parent would create a cycle")
	// ErrForbidden is returned when the caller's roles do not permit an operation.
	ErrForbidden = errors.New("forbidden")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
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
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrCategoryNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CATEGORY_NOT_FOUND")
	case errors.Is(err, ErrItemNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case errors.Is(err, ErrSearchHoundNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "SEARCH_HOUND_NOT_FOUND")
	case errors.Is(err, ErrMissingCategory):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "MISSING_CATEGORY")
	case errors.Is(err, ErrInvalidItemType):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ITEM_TYPE")
	case errors.Is(err, ErrCategoryCycle):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CATEGORY_CYCLE")
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
