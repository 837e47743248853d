package config

import (
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultHomelabSchedule 15분마다 0초에 수집합니다.
	DefaultHomelabSchedule = "0 */15 * * * *"

	// DefaultCommandTimeout 외부 명령 1개에 허용하는 시간
	DefaultCommandTimeout = 30 * time.Second
)

// 서비스 점검 방식
const (
	ServiceKindContainer = "container"
	ServiceKindSystemd   = "systemd"
)

// HomelabConfig 홈랩 통계 수집기 설정입니다.
type HomelabConfig struct {
	Debug          bool                 `json:"debug"`
	Schedule       string               `json:"schedule" validate:"cron_spec"`
	OutputPath     string               `json:"output_path" validate:"required"`
	CommandTimeout time.Duration        `json:"command_timeout" validate:"gt=0"`
	Fail2banLog    string               `json:"fail2ban_log"`
	StoragePaths   []string             `json:"storage_paths"`
	Services       []ServiceCheckConfig `json:"services" validate:"unique=Name,dive"`
	Prometheus     PrometheusConfig     `json:"prometheus" validate:"-"`
	Git            GitPublishConfig     `json:"git" validate:"-"`
	Telegram       TelegramAlertConfig  `json:"telegram" validate:"-"`
}

func newDefaultHomelabConfig() *HomelabConfig {
	return &HomelabConfig{
		Schedule:       DefaultHomelabSchedule,
		OutputPath:     HomelabDefaultFilename,
		CommandTimeout: DefaultCommandTimeout,
		Fail2banLog:    "/var/log/fail2ban.log",
		Prometheus: PrometheusConfig{
			URL:         "http://localhost:9090",
			UptimeQuery: `avg_over_time(up{job="node"}[30d]) * 100`,
			Timeout:     10 * time.Second,
		},
		Git: GitPublishConfig{
			Branch:        "main",
			WorkDir:       "/tmp/portfolio-stats",
			CommitMessage: "Update homelab stats",
		},
	}
}

func (c *HomelabConfig) validate(v *validator.Validate) error {
	if err := checkStruct(v, c, "homelab"); err != nil {
		return err
	}
	if c.Prometheus.Enabled {
		if err := checkStruct(v, c.Prometheus, "prometheus"); err != nil {
			return err
		}
	}
	if c.Git.Enabled {
		if err := checkStruct(v, c.Git, "git"); err != nil {
			return err
		}
	}
	if c.Telegram.Enabled {
		if err := checkStruct(v, c.Telegram, "telegram"); err != nil {
			return err
		}
	}
	return nil
}

// ServiceCheckConfig 상태를 점검할 서비스 1개입니다.
// Kind가 container면 Target은 컨테이너 이름, systemd면 유닛 이름입니다.
type ServiceCheckConfig struct {
	Name   string `json:"name" validate:"required"`
	Kind   string `json:"kind" validate:"oneof=container systemd"`
	Target string `json:"target" validate:"required"`
}

// PrometheusConfig 가동률을 Prometheus 쿼리로 얻을 때의 설정입니다.
type PrometheusConfig struct {
	Enabled     bool          `json:"enabled"`
	URL         string        `json:"url" validate:"required,web_url"`
	UptimeQuery string        `json:"uptime_query" validate:"required"`
	Timeout     time.Duration `json:"timeout" validate:"gt=0"`
}

// GitPublishConfig 생성된 JSON을 저장소에 커밋/푸시할 때의 설정입니다.
type GitPublishConfig struct {
	Enabled       bool   `json:"enabled"`
	Repo          string `json:"repo" validate:"required"`
	Branch        string `json:"branch" validate:"required"`
	WorkDir       string `json:"work_dir" validate:"required"`
	CommitMessage string `json:"commit_message" validate:"required"`
}

// TelegramAlertConfig 서비스 상태가 healthy에서 벗어났을 때 알림을 보낼 채널입니다.
type TelegramAlertConfig struct {
	Enabled  bool   `json:"enabled"`
	BotToken string `json:"bot_token" validate:"required,telegram_bot_token"`
	ChatID   int64  `json:"chat_id" validate:"required"`
}
