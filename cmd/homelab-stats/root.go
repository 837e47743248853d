package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/ajgr33nboy/servin/internal/config"
	"github.com/ajgr33nboy/servin/internal/pkg/version"
	"github.com/ajgr33nboy/servin/internal/service/homelab"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/spf13/cobra"
)

const callerPathPrefix = "github.com/ajgr33nboy/servin"

// jobFactory 테스트에서 외부 명령 없이 실행할 수 있도록 교체 가능한 Job 생성 함수입니다.
type jobFactory func(cfg *config.HomelabConfig) (runner, error)

type runner interface {
	Run(ctx context.Context) (homelab.Stats, error)
}

func defaultJobFactory(cfg *config.HomelabConfig) (runner, error) {
	return homelab.NewJobFromConfig(cfg)
}

func newRootCmd() *cobra.Command {
	return newRootCmdWith(defaultJobFactory)
}

func newRootCmdWith(newJob jobFactory) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:           config.HomelabAppName,
		Short:         "홈랩 지표를 수집해 포트폴리오 사이트용 JSON 문서를 발행합니다",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.HomelabDefaultFilename, "설정 파일 경로")

	cmd.AddCommand(
		collectCmd(&configFile, newJob),
		serveCmd(&configFile, newJob),
	)

	return cmd
}

func collectCmd(configFile *string, newJob jobFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "collect",
		Short: "지표를 한 번 수집해 기록하고 요약을 출력합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closer, err := setup(*configFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			job, err := newJob(cfg)
			if err != nil {
				return err
			}

			stats, err := job.Run(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Stats saved to %s\n\n%s", cfg.OutputPath, stats.Summary())
			return nil
		},
	}
}

func serveCmd(configFile *string, newJob jobFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "설정된 Cron 스케줄에 따라 종료 신호를 받을 때까지 반복 수집합니다",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closer, err := setup(*configFile)
			if err != nil {
				return err
			}
			defer closer.Close()

			job, err := newJob(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg.Schedule, job)
		},
	}
}

// serve ctx가 취소될 때까지 스케줄러를 실행합니다.
func serve(ctx context.Context, schedule string, job runner) error {
	scheduler := homelab.NewScheduler(schedule, job)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	if err := scheduler.Start(ctx, wg); err != nil {
		return err
	}

	applog.WithComponentAndFields("main", applog.Fields{"schedule": schedule}).Info("homelab-stats 가동 완료")

	<-ctx.Done()

	applog.WithComponent("main").Info("종료 신호 수신")
	wg.Wait()

	return nil
}

// setup 설정을 읽고 로그 시스템을 초기화합니다.
func setup(configFile string) (*config.HomelabConfig, io.Closer, error) {
	cfg, err := config.LoadHomelab(configFile)
	if err != nil {
		return nil, nil, err
	}

	opts := applog.NewProductionOptions(config.HomelabAppName, callerPathPrefix)
	if cfg.Debug {
		opts = applog.NewDevelopmentOptions(config.HomelabAppName, callerPathPrefix)
	}
	// 수집 결과 요약은 표준 출력으로 보내므로 로그는 콘솔에 섞지 않습니다.
	opts.EnableConsoleLog = cfg.Debug

	closer, err := applog.Setup(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패 (Cause: %v)\n", err)
		return nil, nil, err
	}
	applog.SetDebugMode(cfg.Debug)

	return cfg, closer, nil
}
