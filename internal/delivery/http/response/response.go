// Package response writes the envelope every bridge reply is wrapped in.
package response

import (
	"fmt"
	"net/http"

	"automarket/internal/domain/constants"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/errors"

	"github.com/labstack/echo/v4"
)

// Envelope is the body of every bridge response
type Envelope struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`    // HTTP status code
	Message string     `json:"message"` // Human readable summary
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries the business error code, e.g. "ORDER_NOT_FOUND"
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details"`
}

// OK writes a 200 envelope
func OK(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Envelope{
		Success: true,
		Code:    http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Reply writes the agent's answer to a typed message
func Reply(c echo.Context, messageType constants.MessageType, reply *entity.AgentReply) error {
	return OK(c, fmt.Sprintf("%s handled", messageType), reply)
}

// Error writes a failure envelope
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
	})
}

// InvalidBody writes 400 INVALID_INPUT for a body that could not be decoded
func InvalidBody(c echo.Context, err error) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid message body", err.Error())
}

type failure struct {
	status  int
	code    string
	message string
	details string
}

func classify(err error) (failure, bool) {
	if appErr, ok := errors.Find[domainerrors.AppError](err); ok {
		return failure{appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()}, true
	}

	if httpErr, ok := errors.Find[*echo.HTTPError](err); ok {
		message := fmt.Sprint(httpErr.Message)

		return failure{httpErr.Code, "HTTP_ERROR", message, message}, true
	}

	internal := domainerrors.ErrInternalError

	return failure{internal.HTTPCode(), internal.ErrorCode(), internal.Message(), err.Error()}, false
}

// Fail writes err as an envelope. known is false when err is neither an AppError nor an echo error.
func Fail(c echo.Context, err error) (known bool, writeErr error) {
	f, known := classify(err)

	return known, Error(c, f.status, f.code, f.message, f.details)
}

// HandleAppError writes err as an envelope, falling back to INTERNAL_ERROR
func HandleAppError(c echo.Context, err error) error {
	_, writeErr := Fail(c, err)

	return writeErr
}
