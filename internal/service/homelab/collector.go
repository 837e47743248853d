// Package homelab 홈랩 서버의 상태를 수집해 포트폴리오 사이트용 JSON 문서로 발행합니다.
//
// 한 번의 실행(Job.Run)은 수집 → 파일 기록 → (선택) git 발행 → (선택) 상태 변화 알림 순서로 진행되며,
// 개별 지표 수집 실패는 경고 로그만 남기고 해당 지표를 0으로 채웁니다.
package homelab

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/ajgr33nboy/servin/pkg/strutil"
)

const (
	componentCollector = "homelab.collector"

	procUptimePath = "/proc/uptime"

	// fail2banTimeLayout fail2ban.log 각 행의 앞부분 (밀리초 제외)
	fail2banTimeLayout = "2006-01-02 15:04:05"

	// systemdTimeLayout systemctl show --property=ActiveEnterTimestamp 값
	systemdTimeLayout = "Mon 2006-01-02 15:04:05 MST"

	bytesPerTiB = 1 << 40
)

// Collector 홈랩 지표를 수집합니다.
type Collector struct {
	cfg        *config.HomelabConfig
	runner     CommandRunner
	prometheus *PrometheusClient

	readFile func(name string) ([]byte, error)
	openFile func(name string) (io.ReadCloser, error)
	now      func() time.Time
}

// NewCollector Collector를 생성합니다. prometheus.enabled가 켜져 있으면 가동률을 Prometheus에서 조회합니다.
func NewCollector(cfg *config.HomelabConfig, runner CommandRunner) *Collector {
	c := &Collector{
		cfg:      cfg,
		runner:   runner,
		readFile: os.ReadFile,
		openFile: func(name string) (io.ReadCloser, error) { return os.Open(name) },
		now:      time.Now,
	}
	if cfg.Prometheus.Enabled {
		c.prometheus = NewPrometheusClient(cfg.Prometheus)
	}
	return c
}

// Collect 모든 지표를 수집합니다. 실패한 지표는 0으로 채워지므로 항상 문서를 반환합니다.
func (c *Collector) Collect(ctx context.Context) Stats {
	now := c.now().UTC()

	stats := Stats{
		Timestamp: now,
		Uptime: UptimeStats{
			Percentage:    c.uptimePercentage(ctx),
			DaysMonitored: DaysMonitored,
		},
		Security:   c.securityStats(ctx, now),
		Containers: c.containerStats(ctx),
		Storage:    c.storageStats(ctx),
		Services:   make([]ServiceStatus, 0, len(c.cfg.Services)),
	}

	for _, svc := range c.cfg.Services {
		stats.Services = append(stats.Services, c.serviceStatus(ctx, svc, now))
	}

	return stats
}

// output 명령 실패를 경고로 기록하고 빈 문자열을 반환합니다.
func (c *Collector) output(ctx context.Context, name string, args ...string) string {
	out, err := c.runner.Run(ctx, name, args...)
	if err != nil {
		applog.WithComponentAndFields(componentCollector, applog.Fields{
			"command": name + " " + strings.Join(args, " "),
			"error":   err,
		}).Warn("명령 실행 실패")
		return ""
	}
	return out
}

func (c *Collector) uptimePercentage(ctx context.Context) float64 {
	if c.prometheus != nil {
		v, err := c.prometheus.UptimePercentage(ctx)
		if err == nil {
			return v
		}
		applog.WithComponentAndFields(componentCollector, applog.Fields{
			"error": err,
		}).Warn("Prometheus 가동률 조회 실패. /proc/uptime으로 대체합니다")
	}

	data, err := c.readFile(procUptimePath)
	if err != nil {
		applog.WithComponentAndFields(componentCollector, applog.Fields{"error": err}).Warn("가동 시간을 읽을 수 없습니다")
		return 0
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}
	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0
	}

	window := float64(DaysMonitored * 24 * 60 * 60)
	return round1(min(seconds/window*100, 100))
}

func (c *Collector) securityStats(ctx context.Context, now time.Time) SecurityStats {
	var s SecurityStats

	for _, jail := range parseJailList(c.output(ctx, "fail2ban-client", "status")) {
		out := c.output(ctx, "fail2ban-client", "status", jail)
		s.ActiveBans += statusValue(out, "Currently banned:")
		s.AttacksBlockedTotal += statusValue(out, "Total banned:")
	}

	if c.cfg.Fail2banLog != "" {
		n, err := c.countRecentBans(now.Add(-24 * time.Hour))
		if err != nil {
			applog.WithComponentAndFields(componentCollector, applog.Fields{
				"path":  c.cfg.Fail2banLog,
				"error": err,
			}).Warn("fail2ban 로그를 읽을 수 없습니다")
		}
		s.AttacksBlocked24h = n
	}

	return s
}

// parseJailList "`- Jail list:	sshd, nginx-http-auth" 행에서 jail 이름을 꺼냅니다.
func parseJailList(out string) []string {
	for _, line := range strings.Split(out, "\n") {
		if _, after, ok := strings.Cut(line, "Jail list:"); ok {
			return strutil.SplitAndTrim(after, ",")
		}
	}
	return nil
}

// statusValue fail2ban-client status 출력에서 key 뒤의 정수를 읽습니다.
func statusValue(out, key string) int {
	for _, line := range strings.Split(out, "\n") {
		if _, after, ok := strings.Cut(line, key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(after))
			if err == nil {
				return n
			}
		}
	}
	return 0
}

// countRecentBans since 이후에 기록된 "] Ban " 행 수를 셉니다. 로그 시각은 로컬 시간대로 해석합니다.
func (c *Collector) countRecentBans(since time.Time) (int, error) {
	f, err := c.openFile(c.cfg.Fail2banLog)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, "] Ban ") || len(line) < len(fail2banTimeLayout) {
			continue
		}
		ts, err := time.ParseInLocation(fail2banTimeLayout, line[:len(fail2banTimeLayout)], time.Local)
		if err != nil {
			continue
		}
		if !ts.Before(since) {
			n++
		}
	}
	return n, scanner.Err()
}

func (c *Collector) containerStats(ctx context.Context) ContainerStats {
	return ContainerStats{
		Running:   countLines(c.output(ctx, "docker", "ps", "-q")),
		Total:     countLines(c.output(ctx, "docker", "ps", "-aq")),
		Healthy:   countLines(c.output(ctx, "docker", "ps", "-q", "--filter", "health=healthy")),
		Unhealthy: countLines(c.output(ctx, "docker", "ps", "-q", "--filter", "health=unhealthy")),
	}
}

func countLines(out string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}

func (c *Collector) storageStats(ctx context.Context) StorageStats {
	var total, used uint64

	for _, path := range c.cfg.StoragePaths {
		size, usedBytes, ok := parseDF(c.output(ctx, "df", "-B1", path))
		if !ok {
			continue
		}
		total += size
		used += usedBytes
	}

	if total == 0 {
		return StorageStats{}
	}

	totalTB := float64(total) / bytesPerTiB
	usedTB := float64(used) / bytesPerTiB

	return StorageStats{
		TotalTB:        round1(totalTB),
		UsedTB:         round1(usedTB),
		AvailableTB:    round1(totalTB - usedTB),
		PercentageUsed: round1(float64(used) / float64(total) * 100),
	}
}

// parseDF df -B1 출력의 마지막 행에서 전체/사용 바이트를 읽습니다.
//
//	Filesystem        1B-blocks          Used     Available Use% Mounted on
//	/dev/sdb1     6001175126016 3298534883328 2702640242688  55% /mnt/data
func parseDF(out string) (size, used uint64, ok bool) {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 2 {
		return 0, 0, false
	}

	fields := strings.Fields(lines[len(lines)-1])
	if len(fields) < 4 {
		return 0, 0, false
	}

	size, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	used, err = strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return size, used, true
}

func (c *Collector) serviceStatus(ctx context.Context, svc config.ServiceCheckConfig, now time.Time) ServiceStatus {
	s := ServiceStatus{Name: svc.Name, Status: StatusUnknown, LastCheck: now}

	switch svc.Kind {
	case config.ServiceKindContainer:
		c.containerServiceStatus(ctx, svc.Target, now, &s)
	case config.ServiceKindSystemd:
		c.systemdServiceStatus(ctx, svc.Target, now, &s)
	}

	return s
}

func (c *Collector) containerServiceStatus(ctx context.Context, container string, now time.Time, s *ServiceStatus) {
	if c.output(ctx, "docker", "ps", "-q", "-f", "name=^"+container+"$") == "" {
		s.Status = StatusStopped
		return
	}

	if startedAt := c.output(ctx, "docker", "inspect", "-f", "{{.State.StartedAt}}", container); startedAt != "" {
		if ts, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			s.UptimeHours = hoursSince(ts, now)
		}
	}

	// 헬스체크가 정의되지 않은 컨테이너는 실행 중이면 healthy로 봅니다.
	health := c.output(ctx, "docker", "inspect", "-f", "{{if .State.Health}}{{.State.Health.Status}}{{end}}", container)
	if health == "" {
		health = StatusHealthy
	}
	s.Status = health
}

func (c *Collector) systemdServiceStatus(ctx context.Context, unit string, now time.Time, s *ServiceStatus) {
	// 비활성 유닛은 systemctl is-active가 0이 아닌 코드로 끝나므로 에러를 무시하고 출력만 봅니다.
	active, _ := c.runner.Run(ctx, "systemctl", "is-active", unit)
	if active != "active" {
		s.Status = StatusStopped
		return
	}
	s.Status = StatusHealthy

	out := c.output(ctx, "systemctl", "show", unit, "--property=ActiveEnterTimestamp")
	if _, value, ok := strings.Cut(out, "ActiveEnterTimestamp="); ok {
		if ts, err := time.ParseInLocation(systemdTimeLayout, strings.TrimSpace(value), time.Local); err == nil {
			s.UptimeHours = hoursSince(ts, now)
		}
	}
}

func hoursSince(start, now time.Time) int {
	if start.After(now) {
		return 0
	}
	return int(now.Sub(start).Hours())
}
