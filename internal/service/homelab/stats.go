package homelab

import (
	"fmt"
	"math"
	"time"
)

// 서비스 상태 값
const (
	StatusHealthy = "healthy"
	StatusStopped = "stopped"
	StatusUnknown = "unknown"
)

// DaysMonitored 가동률 계산 기준 기간(일)
const DaysMonitored = 30

// Stats 포트폴리오 사이트가 읽어 가는 홈랩 통계 문서입니다.
type Stats struct {
	Timestamp  time.Time       `json:"timestamp"`
	Uptime     UptimeStats     `json:"uptime"`
	Security   SecurityStats   `json:"security"`
	Containers ContainerStats  `json:"containers"`
	Storage    StorageStats    `json:"storage"`
	Services   []ServiceStatus `json:"services"`
}

// UptimeStats 최근 DaysMonitored일 기준 가동률입니다.
type UptimeStats struct {
	Percentage    float64    `json:"percentage"`
	DaysMonitored int        `json:"days_monitored"`
	LastIncident  *time.Time `json:"last_incident"`
}

// SecurityStats fail2ban 차단 통계입니다.
type SecurityStats struct {
	AttacksBlocked24h   int `json:"attacks_blocked_24h"`
	AttacksBlockedTotal int `json:"attacks_blocked_total"`
	ActiveBans          int `json:"active_bans"`
}

// ContainerStats Docker 컨테이너 수입니다.
type ContainerStats struct {
	Running   int `json:"running"`
	Total     int `json:"total"`
	Healthy   int `json:"healthy"`
	Unhealthy int `json:"unhealthy"`
}

// StorageStats 설정된 경로들의 합산 용량(TiB)입니다.
type StorageStats struct {
	TotalTB        float64 `json:"total_tb"`
	UsedTB         float64 `json:"used_tb"`
	AvailableTB    float64 `json:"available_tb"`
	PercentageUsed float64 `json:"percentage_used"`
}

// ServiceStatus 서비스 1개의 점검 결과입니다.
type ServiceStatus struct {
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	UptimeHours int       `json:"uptime_hours"`
	LastCheck   time.Time `json:"last_check"`
}

// HealthyServices healthy 상태인 서비스 수
func (s Stats) HealthyServices() int {
	n := 0
	for _, svc := range s.Services {
		if svc.Status == StatusHealthy {
			n++
		}
	}
	return n
}

// Summary 수집 결과를 사람이 읽기 좋은 요약 블록으로 만듭니다.
func (s Stats) Summary() string {
	return fmt.Sprintf(`Homelab Stats Summary
========================
Uptime:     %.1f%%
Security:   %d attacks blocked (24h)
Containers: %d/%d running
Storage:    %.1f/%.1f TB used
Services:   %d/%d healthy
`,
		s.Uptime.Percentage,
		s.Security.AttacksBlocked24h,
		s.Containers.Running, s.Containers.Total,
		s.Storage.UsedTB, s.Storage.TotalTB,
		s.HealthyServices(), len(s.Services),
	)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
