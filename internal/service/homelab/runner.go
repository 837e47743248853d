package homelab

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
)

// CommandRunner 외부 명령을 실행하고 표준 출력을 반환합니다.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner os/exec로 명령을 실행합니다. 셸을 거치지 않으므로 인자는 그대로 전달됩니다.
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner 명령 1개당 timeout을 적용하는 ExecRunner를 생성합니다. 0 이하면 기본값(30초)을 사용합니다.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = config.DefaultCommandTimeout
	}
	return &ExecRunner{Timeout: timeout}
}

// Run 명령을 실행하고 앞뒤 공백을 제거한 표준 출력을 반환합니다.
// 0이 아닌 종료 코드, 실행 파일 없음, 시간 초과는 모두 에러입니다.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", apperrors.Wrapf(err, apperrors.Timeout, "명령 실행 시간이 초과되었습니다 (%s, %s)", name, r.Timeout)
		}
		return strings.TrimSpace(stdout.String()), apperrors.Wrapf(err, apperrors.ExecutionFailed, "명령 실행 실패 (%s: %s)", name, strings.TrimSpace(stderr.String()))
	}

	return strings.TrimSpace(stdout.String()), nil
}
