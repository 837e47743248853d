package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	"github.com/ajgr33nboy/servin/internal/pkg/version"
	"github.com/ajgr33nboy/servin/internal/service/api"
	apiconstants "github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/handler/system"
	"github.com/ajgr33nboy/servin/internal/service/contact"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/ajgr33nboy/servin/internal/service/mail"
	"github.com/ajgr33nboy/servin/internal/service/rowstore"
	applog "github.com/ajgr33nboy/servin/pkg/log"
)

// @title Servin Contact API
// @version 1.0.0
// @description 포트폴리오 사이트의 문의 폼을 받아 운영자에게 메일로 전달하는 서버의 REST API입니다.
// @description
// @description ## 처리 순서
// @description 1. 입력 검증 (name, email, message 필수)
// @description 2. 문의 내역 기록 (row_store 설정 시, 실패해도 계속 진행)
// @description 3. 운영자 알림 메일 발송 (실패 시 500)
// @description 4. 문의자 자동 응답 메일 발송 (auto_reply_enabled 설정 시, 실패해도 계속 진행)

// @contact.name ajgr33nboy
// @contact.url https://github.com/ajgr33nboy

// @license.name MIT

// @BasePath /

const (
	banner = `
  ____                  _
 / ___|   ___  _ __ __   __(_) _ __
 \___ \  / _ \| '__|\ \ / /| || '_ \
  ___) ||  __/| |    \ V / | || | | |
 |____/  \___||_|     \_/  |_||_| |_|
                                 %s
--------------------------------------------------------------------------------
`

	// callerPathPrefix 로그의 호출자 경로에서 잘라낼 모듈 경로
	callerPathPrefix = "github.com/ajgr33nboy/servin"

	// rowStoreCloseTimeout 종료 시 저장소 연결 해제에 허용하는 시간
	rowStoreCloseTimeout = 5 * time.Second
)

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := config.LoadWithFile(configFilename(os.Args[1:]))
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %+v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	appLogCloser, err := applog.Setup(logOptions(appConfig.Debug))
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	buildInfo := version.Get()

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, w := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(w)
	}

	// 3. 서비스 구성
	transport, err := mail.NewSMTPTransport(appConfig.Mail)
	if err != nil {
		applog.WithComponentAndFields("main", applog.Fields{"error": err}).Fatal("메일 전송 계층 초기화 실패")
	}

	store, err := rowstore.New(context.Background(), appConfig.RowStore)
	if err != nil {
		// 행 기록은 부가 기능이므로 저장소 연결에 실패해도 기록 없이 서버를 띄운다.
		applog.WithComponentAndFields("main", applog.Fields{
			"kind":  appConfig.RowStore.Kind,
			"error": err,
		}).Error("행 저장소 초기화 실패. 문의 내역을 기록하지 않습니다")
		store = nil
	}

	contactHandler := contact.New(appConfig.Contact, transport, store,
		contact.WithRowStoreTimeout(appConfig.RowStore.Timeout),
	)

	apiService := api.NewService(appConfig, contactHandler, buildInfo, dependencies(store)...)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 4. 서비스 시작
	serviceStopWG.Add(1)
	if err := apiService.Start(serviceStopCtx, serviceStopWG); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{"error": err}).Error("서비스 초기화 실패")

		cancel()
		serviceStopWG.Wait()
		closeRowStore(store)

		applog.WithComponent("main").Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
	}

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponentAndFields("main", applog.Fields{
		"row_logging": contactHandler.RowLoggingEnabled(),
		"auto_reply":  contactHandler.AutoReplyEnabled(),
	}).Info("서버 가동 완료")

	<-termC

	// 5. 종료
	applog.WithComponent("main").Info("종료 신호 수신")
	cancel()
	serviceStopWG.Wait()

	closeRowStore(store)
}

// configFilename 첫 번째 실행 인자를 설정 파일 경로로 사용합니다. 없으면 servin.json
func configFilename(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return config.DefaultFilename
}

func logOptions(debug bool) applog.Options {
	if debug {
		return applog.NewDevelopmentOptions(config.AppName, callerPathPrefix)
	}
	return applog.NewProductionOptions(config.AppName, callerPathPrefix)
}

// dependencies /health에 보고할 외부 의존성 목록을 만듭니다.
// 메일 전송 계층은 요청 시점에만 연결하므로 설정 확인만으로 healthy를 보고합니다.
func dependencies(store contract.RowStore) []system.Dependency {
	return []system.Dependency{
		{Name: apiconstants.DependencyEmailTransport, Enabled: true},
		{Name: apiconstants.DependencyRowStore, Enabled: store != nil, Check: rowstore.HealthCheck(store)},
	}
}

func closeRowStore(store contract.RowStore) {
	ctx, cancel := context.WithTimeout(context.Background(), rowStoreCloseTimeout)
	defer cancel()

	if err := rowstore.Close(ctx, store); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{"error": err}).Warn("행 저장소 종료 중 오류 발생")
	}
}
