package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for error replies. Successful payloads are
// written bare so the documented bodies stay byte-exact.
type Response struct {
	Success bool       `json:"success"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Error(c echo.Context, status int, code, message string) error {
	return c.JSON(status, Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func TooManyRequests(c echo.Context, message string) error {
	return Error(c, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", message)
}

func InternalError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", message)
}
