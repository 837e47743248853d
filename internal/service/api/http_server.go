package api

import (
	"net/http"
	"time"

	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/httputil"
	appmiddleware "github.com/ajgr33nboy/servin/internal/service/api/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정입니다.
type HTTPServerConfig struct {
	// Debug Echo 디버그 모드
	Debug bool

	// EnableHSTS TLS로 서비스할 때 Strict-Transport-Security 헤더를 추가합니다.
	EnableHSTS bool

	// AllowOrigins CORS 허용 Origin 목록 (포트폴리오 사이트 도메인)
	AllowOrigins []string

	// RequestTimeout 요청 1건의 최대 처리 시간. 0이면 constants.DefaultRequestTimeout
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어 체인이 구성된 Echo 인스턴스를 생성합니다. 라우트는 포함하지 않습니다.
//
// 미들웨어 적용 순서:
//
//  1. PanicRecovery  다른 미들웨어의 panic까지 복구하도록 가장 먼저
//  2. RequestID      로그에 request_id가 포함되도록 로깅보다 먼저
//  3. ServerHeader   Server 헤더 제거
//  4. HTTPLogger     413/415/503 응답도 기록되도록 제한 미들웨어보다 먼저
//  5. BodyLimit      64KB 초과 시 413
//  6. ContextTimeout 요청 컨텍스트에 처리 시간 제한 적용
//  7. CORS           허용 Origin, GET/POST/OPTIONS
//  8. Secure         보안 헤더
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	e.Logger = appmiddleware.NewLogger()
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = constants.DefaultRequestTimeout
	}

	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = 31536000
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.ServerHeader())
	e.Use(appmiddleware.HTTPLogger())
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}
