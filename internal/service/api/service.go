// Package api 문의 폼 HTTP API 서버의 생명주기를 관리합니다.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/ajgr33nboy/servin/docs"
	"github.com/ajgr33nboy/servin/internal/config"
	"github.com/ajgr33nboy/servin/internal/pkg/version"
	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/handler/system"
	v1 "github.com/ajgr33nboy/servin/internal/service/api/v1"
	v1handler "github.com/ajgr33nboy/servin/internal/service/api/v1/handler"
	"github.com/ajgr33nboy/servin/internal/service/contact"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/labstack/echo/v4"
)

// Service API 서버 서비스입니다.
//
// Start로 시작하면 별도 고루틴에서 HTTP(S) 서버를 실행하고, 전달받은 Context가 취소되면
// 최대 constants.ShutdownTimeout 동안 처리 중인 요청을 마무리한 뒤 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	contactHandler *contact.Handler
	dependencies   []system.Dependency

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다. deps는 /health에서 보고할 외부 의존성입니다.
func NewService(appConfig *config.AppConfig, contactHandler *contact.Handler, buildInfo version.Info, deps ...system.Dependency) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if contactHandler == nil {
		panic(constants.PanicMsgContactHandlerRequired)
	}

	return &Service{
		appConfig:      appConfig,
		contactHandler: contactHandler,
		dependencies:   deps,
		buildInfo:      buildInfo,
	}
}

// Start API 서비스를 시작합니다. 즉시 반환하며 서버는 고루틴에서 실행됩니다.
// 서비스가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

func (s *Service) setupServer() *echo.Echo {
	e := NewHTTPServer(HTTPServerConfig{
		Debug:          s.appConfig.Debug,
		EnableHSTS:     s.appConfig.API.WS.TLSServer,
		AllowOrigins:   s.appConfig.API.CORS.AllowOrigins,
		RequestTimeout: s.appConfig.API.RequestTimeout,
	})

	RegisterRoutes(e, system.NewHandler(s.buildInfo, s.dependencies...))
	v1.RegisterRoutes(e, v1handler.NewContactHandler(s.contactHandler))

	return e
}

func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.API.WS
	addr := fmt.Sprintf(":%d", ws.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
		"tls":  ws.TLSServer,
	}).Info(constants.LogMsgServiceHTTPServerStarting)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(addr, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(addr)
	}

	s.handleServerError(err)
}

// handleServerError 서버 종료 원인을 로깅합니다. Graceful Shutdown(http.ErrServerClosed)은 정상 종료입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.WS.ListenPort,
		"error": err,
	}).Error(constants.LogMsgServiceHTTPServerFatalError)
}

func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패 등으로 서버가 먼저 종료된 경우
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}

// Running 서비스 실행 여부
func (s *Service) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}
