package homelab

import (
	"context"

	"github.com/ajgr33nboy/servin/internal/config"
	applog "github.com/ajgr33nboy/servin/pkg/log"
)

const componentJob = "homelab.job"

// Job 한 번의 수집/발행 실행입니다.
type Job struct {
	collector  *Collector
	outputPath string

	publisher *GitPublisher
	alerter   Alerter
	tracker   *StatusTracker
}

// JobOption Job 생성 옵션
type JobOption func(*Job)

// WithPublisher 수집 결과를 git 저장소에도 발행합니다.
func WithPublisher(p *GitPublisher) JobOption {
	return func(j *Job) { j.publisher = p }
}

// WithAlerter 서비스가 healthy에서 벗어나면 알림을 보냅니다.
func WithAlerter(a Alerter) JobOption {
	return func(j *Job) { j.alerter = a }
}

// NewJob Job을 생성합니다.
func NewJob(collector *Collector, outputPath string, opts ...JobOption) *Job {
	j := &Job{
		collector:  collector,
		outputPath: outputPath,
		tracker:    NewStatusTracker(),
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// NewJobFromConfig 설정에 따라 실행기, 수집기, 발행기, 알림기를 구성합니다.
func NewJobFromConfig(cfg *config.HomelabConfig) (*Job, error) {
	runner := NewExecRunner(cfg.CommandTimeout)

	var opts []JobOption
	if cfg.Git.Enabled {
		opts = append(opts, WithPublisher(NewGitPublisher(cfg.Git, runner)))
	}
	if cfg.Telegram.Enabled {
		alerter, err := NewTelegramAlerter(cfg.Telegram, cfg.Debug)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithAlerter(alerter))
	}

	return NewJob(NewCollector(cfg, runner), cfg.OutputPath, opts...), nil
}

// Run 수집 → 파일 기록 → git 발행 → 상태 변화 알림을 순서대로 실행합니다.
// 파일 기록 실패만 에러로 반환하며, 발행과 알림 실패는 경고 로그로 남깁니다.
func (j *Job) Run(ctx context.Context) (Stats, error) {
	applog.WithComponent(componentJob).Info("홈랩 통계 수집 시작")

	stats := j.collector.Collect(ctx)

	if err := WriteFile(j.outputPath, stats); err != nil {
		return stats, err
	}

	applog.WithComponentAndFields(componentJob, applog.Fields{
		"path":             j.outputPath,
		"uptime":           stats.Uptime.Percentage,
		"healthy_services": stats.HealthyServices(),
		"total_services":   len(stats.Services),
	}).Info("홈랩 통계 저장 완료")

	if j.publisher != nil {
		if _, err := j.publisher.Publish(ctx, stats); err != nil {
			applog.WithComponentAndFields(componentJob, applog.Fields{"error": err}).Warn("git 발행 실패")
		}
	}

	transitions := j.tracker.Observe(stats.Services)
	if j.alerter != nil && len(transitions) > 0 {
		if err := j.alerter.Alert(ctx, transitions); err != nil {
			applog.WithComponentAndFields(componentJob, applog.Fields{
				"transitions": len(transitions),
				"error":       err,
			}).Warn("상태 변화 알림 실패")
		}
	}

	return stats, nil
}
