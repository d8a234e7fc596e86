package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/ridepool/ridepool/internal/pkg/errors"
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

// RespondError maps a classified application error onto an HTTP response.
// Unclassified errors become 500s with a generic message so internals do
// not leak to clients.
func RespondError(c echo.Context, err error) error {
	appErr, ok := apperrors.As(err)
	if !ok {
		return ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
	}

	status := http.StatusInternalServerError
	message := appErr.Message

	switch appErr.Code {
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeForbidden:
		status = http.StatusForbidden
	case apperrors.CodeConflict, apperrors.CodeCapacityExceeded:
		status = http.StatusConflict
	case apperrors.CodeInvalidState, apperrors.CodePolicyViolation:
		status = http.StatusUnprocessableEntity
	case apperrors.CodeValidation:
		status = http.StatusBadRequest
	case apperrors.CodeInternal:
		message = "Internal server error"
	}

	return ErrorResponseHandler(c, status, message)
}
