package httputil

import (
	"errors"
	"net/http"

	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/model/response"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler Echo의 전역 에러 핸들러입니다.
//
// 핸들러나 미들웨어가 반환한 에러를 ErrorResponse JSON으로 변환합니다.
// 문의 처리 결과(성공/검증 실패/알림 실패)는 핸들러가 직접 응답하므로 여기까지 오지 않습니다.
func ErrorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	message := constants.ErrMsgInternalServer

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		switch m := he.Message.(type) {
		case response.ErrorResponse:
			message = m.Message
		case string:
			message = m
		}
	}

	// Echo 기본 메시지("Not Found", "Request Entity Too Large" 등)는 한국어 메시지로 통일합니다.
	switch code {
	case http.StatusNotFound:
		message = constants.ErrMsgNotFound
	case http.StatusRequestEntityTooLarge:
		message = constants.ErrMsgRequestEntityTooLarge
	case http.StatusServiceUnavailable:
		message = constants.ErrMsgServiceUnavailable
	}

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}

	if code >= http.StatusInternalServerError {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	} else if code >= http.StatusBadRequest {
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		Success:    false,
		ResultCode: code,
		Message:    message,
	})
}
