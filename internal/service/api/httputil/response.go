// Package httputil Echo 에러 생성 헬퍼와 전역 에러 핸들러를 제공합니다.
package httputil

import (
	"net/http"

	"github.com/ajgr33nboy/servin/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
)

func newHTTPError(code int, message string) *echo.HTTPError {
	return echo.NewHTTPError(code, response.ErrorResponse{
		Success:    false,
		ResultCode: code,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다.
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewRequestEntityTooLargeError 413 Request Entity Too Large 에러를 생성합니다.
func NewRequestEntityTooLargeError(message string) error {
	return newHTTPError(http.StatusRequestEntityTooLarge, message)
}

// NewUnsupportedMediaTypeError 415 Unsupported Media Type 에러를 생성합니다.
func NewUnsupportedMediaTypeError(message string) error {
	return newHTTPError(http.StatusUnsupportedMediaType, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다.
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}
