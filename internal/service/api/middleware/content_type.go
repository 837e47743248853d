package middleware

import (
	"mime"
	"strings"

	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/httputil"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/labstack/echo/v4"
)

// AllowContentTypes 본문이 있는 요청의 Content-Type이 allowed 중 하나인지 검사합니다.
// 파라미터(charset 등)는 무시하고 미디어 타입만 대소문자 구분 없이 비교합니다.
//
//	e.POST("/contact", h.Submit, middleware.AllowContentTypes(echo.MIMEApplicationJSON, echo.MIMETextPlain))
func AllowContentTypes(allowed ...string) echo.MiddlewareFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		allowedSet[strings.ToLower(a)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.Body == nil || req.ContentLength == 0 {
				return next(c)
			}

			contentType := req.Header.Get(echo.HeaderContentType)
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err == nil {
				if _, ok := allowedSet[strings.ToLower(mediaType)]; ok {
					return next(c)
				}
			}

			applog.WithComponentAndFields(constants.ComponentMiddlewareContentType, applog.Fields{
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
				"method":     req.Method,
				"path":       req.URL.Path,
				"allowed":    allowed,
				"actual":     contentType,
				"remote_ip":  c.RealIP(),
			}).Warn(constants.LogMsgUnsupportedContentType)

			return httputil.NewUnsupportedMediaTypeError(constants.ErrMsgUnsupportedMediaType)
		}
	}
}
