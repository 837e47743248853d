package middleware

import "github.com/labstack/echo/v4"

// ServerHeader 응답의 Server 헤더를 비워 서버 스택 정보를 노출하지 않습니다.
func ServerHeader() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	}
}
