package main

import (
	"bytes"
	"context"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	"github.com/ajgr33nboy/servin/internal/service/homelab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs atomic.Int32
}

func (j *countingJob) Run(context.Context) (homelab.Stats, error) {
	j.runs.Add(1)
	return homelab.Stats{}, nil
}

func TestRootCmd_Flags(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()

	f := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "homelab-stats.json", f.DefValue)
	assert.Equal(t, "c", f.Shorthand)

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "collect")
	assert.Contains(t, names, "serve")
}

func TestRootCmd_MissingConfig(t *testing.T) {
	t.Parallel()

	for _, sub := range []string{"collect", "serve"} {
		t.Run("실패: "+sub, func(t *testing.T) {
			t.Parallel()

			called := false
			cmd := newRootCmdWith(func(*config.HomelabConfig) (runner, error) {
				called = true
				return &countingJob{}, nil
			})

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			cmd.SetArgs([]string{sub, "--config", filepath.Join(t.TempDir(), "missing.json")})

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "설정 파일을 찾을 수 없습니다")
			assert.False(t, called)
		})
	}
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"collect", "extra"})

	require.Error(t, cmd.Execute())
}

func TestServe(t *testing.T) {
	t.Parallel()

	t.Run("성공: 컨텍스트 취소 시 종료", func(t *testing.T) {
		t.Parallel()

		job := &countingJob{}
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() { done <- serve(ctx, "@every 1s", job) }()

		assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

		cancel()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(3 * time.Second):
			t.Fatal("serve가 종료되지 않았습니다")
		}
	})

	t.Run("실패: 잘못된 스케줄", func(t *testing.T) {
		t.Parallel()

		err := serve(context.Background(), "not a cron", &countingJob{})
		require.Error(t, err)
	})
}
