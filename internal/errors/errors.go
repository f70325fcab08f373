package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrFarmlandNotFound is returned when a farmland listing does not exist.
	ErrFarmlandNotFound = errors.New("farmland not found")
	// ErrFarmlandNotPublic is returned when a listing exists but is not publicly visible.
	ErrFarmlandNotPublic = errors.New("farmland is not public")
	// ErrInvalidFilter is returned when a search filter parameter cannot be parsed.
	ErrInvalidFilter = errors.New("invalid filter parameter")
	// ErrUnknownFacility is returned when a facility filter key is not part of the fixed set.
	ErrUnknownFacility = errors.New("unknown facility key")
	// ErrInvalidDateRange is returned when availableTo precedes availableFrom.
	ErrInvalidDateRange = errors.New("availableTo must not precede availableFrom")
	// ErrUserNotFound is returned when a user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrFavoriteExists is returned when the farmland is already favorited.
	ErrFavoriteExists = errors.New("farmland already favorited")
	// ErrFavoriteNotFound is returned when the farmland is not in the user's favorites.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrProviderRequired is returned when a non-provider tries to register farmland.
	ErrProviderRequired = errors.New("provider role required")
	// ErrWrongPassword is returned when the current password check fails.
	ErrWrongPassword = errors.New("current password is incorrect")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
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
	case errors.Is(err, ErrFarmlandNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FARMLAND_NOT_FOUND")
	case errors.Is(err, ErrFarmlandNotPublic):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FARMLAND_NOT_PUBLIC")
	case errors.Is(err, ErrInvalidFilter):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_FILTER")
	case errors.Is(err, ErrUnknownFacility):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_FACILITY")
	case errors.Is(err, ErrInvalidDateRange):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_DATE_RANGE")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrFavoriteExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "FAVORITE_EXISTS")
	case errors.Is(err, ErrFavoriteNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "FAVORITE_NOT_FOUND")
	case errors.Is(err, ErrProviderRequired):
		return NewHTTPError(http.StatusForbidden, err.Error(), "PROVIDER_REQUIRED")
	case errors.Is(err, ErrWrongPassword):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "WRONG_PASSWORD")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
