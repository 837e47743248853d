package homelab

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireBinary(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%s 실행 파일이 없어 건너뜁니다", name)
	}
}

func TestNewExecRunner_DefaultTimeout(t *testing.T) {
	t.Parallel()

	assert.Equal(t, config.DefaultCommandTimeout, NewExecRunner(0).Timeout)
	assert.Equal(t, 5*time.Second, NewExecRunner(5*time.Second).Timeout)
}

func TestExecRunner_Run(t *testing.T) {
	t.Parallel()

	t.Run("성공: 출력 앞뒤 공백 제거", func(t *testing.T) {
		t.Parallel()
		requireBinary(t, "echo")

		out, err := NewExecRunner(time.Second).Run(context.Background(), "echo", "  hello  ")
		require.NoError(t, err)
		assert.Equal(t, "hello", out)
	})

	t.Run("성공: 셸 메타문자는 해석되지 않음", func(t *testing.T) {
		t.Parallel()
		requireBinary(t, "echo")

		out, err := NewExecRunner(time.Second).Run(context.Background(), "echo", "$(whoami)", "|", "wc")
		require.NoError(t, err)
		assert.Equal(t, "$(whoami) | wc", out)
	})

	t.Run("실패: 0이 아닌 종료 코드", func(t *testing.T) {
		t.Parallel()
		requireBinary(t, "false")

		_, err := NewExecRunner(time.Second).Run(context.Background(), "false")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
	})

	t.Run("실패: 실행 파일 없음", func(t *testing.T) {
		t.Parallel()

		_, err := NewExecRunner(time.Second).Run(context.Background(), "definitely-not-a-command-servin")
		require.Error(t, err)
	})

	t.Run("실패: 시간 초과", func(t *testing.T) {
		t.Parallel()
		requireBinary(t, "sleep")

		start := time.Now()
		_, err := NewExecRunner(100*time.Millisecond).Run(context.Background(), "sleep", "5")
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Timeout))
		assert.Less(t, time.Since(start), 3*time.Second)
	})
}
