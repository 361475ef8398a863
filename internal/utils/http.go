package utils

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mrstm/fare-service/internal/pkg/apperrors"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// DomainErrorBody is the structured payload for domain errors. It mirrors
// the fields clients already depend on: timestamp, status, category label
// and a human-readable message.
type DomainErrorBody struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// ForbiddenResponse sends a 403 Forbidden response
func ForbiddenResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Forbidden"
	}
	return ErrorResponseHandler(c, http.StatusForbidden, errorMessage)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// statusAndLabel maps a domain error kind to an HTTP status and category label
func statusAndLabel(kind apperrors.Kind) (int, string) {
	switch kind {
	case apperrors.KindNotFound:
		return http.StatusNotFound, "Not Found"
	case apperrors.KindAlreadyExists:
		return http.StatusConflict, "Conflict"
	case apperrors.KindInvalidState, apperrors.KindInvalidInput:
		return http.StatusBadRequest, "Bad Request"
	case apperrors.KindProvider:
		return http.StatusBadGateway, "Provider Error"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// DomainErrorResponse maps a domain error to the structured error payload
func DomainErrorResponse(c echo.Context, err error) error {
	status, label := statusAndLabel(apperrors.KindOf(err))

	message := apperrors.MessageOf(err)
	if status == http.StatusInternalServerError {
		// Never leak internals on unexpected errors
		message = "Something went wrong on the server."
	}

	return c.JSON(status, DomainErrorBody{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     label,
		Message:   message,
	})
}
