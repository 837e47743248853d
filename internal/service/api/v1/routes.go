// Package v1 /api/v1 라우트를 등록합니다.
package v1

import (
	"github.com/ajgr33nboy/servin/internal/service/api/middleware"
	"github.com/ajgr33nboy/servin/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes 문의 폼 엔드포인트를 등록합니다. 인증은 없으며 CORS 허용 Origin으로만 접근을 제한합니다.
//
//	GET  /api/v1/contact  상태 확인
//	POST /api/v1/contact  문의 제출
func RegisterRoutes(e *echo.Echo, h *handler.ContactHandler) {
	g := e.Group("/api/v1")

	g.GET("/contact", h.ProbeHandler)
	g.POST("/contact", h.SubmitHandler,
		middleware.AllowContentTypes(echo.MIMEApplicationJSON, echo.MIMETextPlain),
	)
}
