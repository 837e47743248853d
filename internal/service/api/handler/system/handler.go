// Package system 헬스체크와 버전 정보 등 시스템 수준 엔드포인트를 처리합니다.
package system

import (
	"context"
	"net/http"
	"time"

	"github.com/ajgr33nboy/servin/internal/pkg/version"
	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/model/system"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/labstack/echo/v4"
)

// checkTimeout 의존성 1개의 상태 확인에 허용하는 시간
const checkTimeout = 3 * time.Second

// Dependency 헬스체크 대상 외부 의존성입니다.
type Dependency struct {
	Name string

	// Enabled false면 disabled로 보고하며 전체 상태에 영향을 주지 않습니다.
	Enabled bool

	// Check nil이면 설정만 확인된 것으로 보고 healthy로 간주합니다.
	Check func(ctx context.Context) error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	dependencies []Dependency

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(buildInfo version.Info, deps ...Dependency) *Handler {
	return &Handler{
		dependencies:    deps,
		buildInfo:       buildInfo,
		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성(email_transport, row_store)의 상태를 확인합니다.
// @Description 비활성화된 의존성은 disabled로 표시되며 전체 상태에 영향을 주지 않습니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	deps := make(map[string]system.DependencyStatus, len(h.dependencies))
	status := constants.HealthStatusHealthy

	for _, d := range h.dependencies {
		ds := h.check(c.Request().Context(), d)
		if ds.Status == constants.HealthStatusUnhealthy {
			status = constants.HealthStatusUnhealthy
		}
		deps[d.Name] = ds
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       status,
		Uptime:       int64(time.Since(h.serverStartTime).Seconds()),
		Dependencies: deps,
	})
}

func (h *Handler) check(ctx context.Context, d Dependency) system.DependencyStatus {
	if !d.Enabled {
		return system.DependencyStatus{Status: constants.HealthStatusDisabled, Message: constants.MsgDepStatusDisabled}
	}
	if d.Check == nil {
		return system.DependencyStatus{Status: constants.HealthStatusHealthy, Message: constants.MsgDepStatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	err := d.Check(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return system.DependencyStatus{Status: constants.HealthStatusUnhealthy, LatencyMs: latency, Message: err.Error()}
	}
	return system.DependencyStatus{Status: constants.HealthStatusHealthy, LatencyMs: latency, Message: constants.MsgDepStatusHealthy}
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 빌드 버전, Git 커밋, 빌드 날짜와 번호, Go 버전, 플랫폼을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		Commit:      h.buildInfo.Commit,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   h.buildInfo.GoVersion,
		Platform:    h.buildInfo.OS + "/" + h.buildInfo.Arch,
		DirtyBuild:  h.buildInfo.DirtyBuild,
	})
}
