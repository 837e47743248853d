package homelab

import (
	"context"
	"sync"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/pkg/cronx"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/robfig/cron/v3"
)

const componentScheduler = "homelab.scheduler"

// runner 스케줄러가 주기적으로 호출하는 작업입니다. *Job이 구현합니다.
type runner interface {
	Run(ctx context.Context) (Stats, error)
}

// Scheduler Cron 스케줄에 맞춰 Job을 반복 실행합니다.
type Scheduler struct {
	spec string
	job  runner

	cron *cron.Cron

	running   bool
	runningMu sync.Mutex
}

// NewScheduler Scheduler를 생성합니다. spec은 초 단위를 포함한 6필드 Cron 표현식입니다.
func NewScheduler(spec string, job runner) *Scheduler {
	if job == nil {
		panic("Job은 필수입니다")
	}
	return &Scheduler{spec: spec, job: job}
}

// Start 스케줄러를 시작합니다. serviceStopCtx가 취소되면 실행 중인 작업이 끝날 때까지 기다린 뒤 serviceStopWG.Done()을 호출합니다.
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(componentScheduler).Warn("스케줄러가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// Recover: 작업 panic이 스케줄러를 멈추지 않도록 복구
	// SkipIfStillRunning: 이전 실행이 끝나지 않았으면 이번 실행은 건너뜀
	c := cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	if _, err := c.AddFunc(s.spec, func() { s.runOnce(serviceStopCtx) }); err != nil {
		serviceStopWG.Done()
		return apperrors.Wrapf(err, apperrors.InvalidInput, "잘못된 Cron 표현식입니다 (%s)", s.spec)
	}

	s.cron = c
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(componentScheduler, applog.Fields{
		"schedule": s.spec,
		"next_run": s.cron.Entries()[0].Next,
	}).Info("홈랩 통계 스케줄러 시작")

	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 스케줄러를 중지하고 실행 중인 작업이 끝날 때까지 기다립니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	<-s.cron.Stop().Done()

	s.cron = nil
	s.running = false

	applog.WithComponent(componentScheduler).Info("홈랩 통계 스케줄러 중지")
}

// Running 스케줄러 실행 여부
func (s *Scheduler) Running() bool {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()
	return s.running
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if _, err := s.job.Run(ctx); err != nil {
		applog.WithComponentAndFields(componentScheduler, applog.Fields{"error": err}).Error("홈랩 통계 수집 실행 실패")
	}
}
