package homelab

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	applog "github.com/ajgr33nboy/servin/pkg/log"
)

const (
	componentPublisher = "homelab.publisher"

	// PublishedFilename git 저장소에 기록되는 파일 이름
	PublishedFilename = "homelab-stats.json"

	tempFilePattern = ".homelab-stats-*.tmp"
)

// MarshalStats 들여쓰기된 JSON으로 직렬화합니다.
func MarshalStats(stats Stats) ([]byte, error) {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.Internal, "통계 문서를 JSON으로 변환하지 못했습니다")
	}
	return append(data, '\n'), nil
}

// WriteFile 통계 문서를 path에 원자적으로 기록합니다.
// 같은 디렉토리의 임시 파일에 쓰고 fsync한 뒤 rename하므로, 읽는 쪽은 이전 문서나 새 문서 중 하나만 보게 됩니다.
func WriteFile(path string, stats Stats) error {
	data, err := MarshalStats(stats)
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}

func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apperrors.Wrapf(err, apperrors.System, "출력 디렉토리를 만들 수 없습니다 (%s)", dir)
	}

	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return apperrors.Wrap(err, apperrors.System, "임시 파일을 만들 수 없습니다")
	}
	tmpPath := tmp.Name()

	// Close가 Remove보다 먼저 실행되어야 합니다. (rename 이후에는 Remove가 무시됩니다)
	defer os.Remove(tmpPath)
	defer tmp.Close()

	if _, err := tmp.Write(data); err != nil {
		return apperrors.Wrap(err, apperrors.System, "임시 파일에 쓰지 못했습니다")
	}
	if err := tmp.Sync(); err != nil {
		return apperrors.Wrap(err, apperrors.System, "임시 파일을 디스크에 동기화하지 못했습니다")
	}
	if err := tmp.Chmod(0o644); err != nil {
		return apperrors.Wrap(err, apperrors.System, "임시 파일 권한을 설정하지 못했습니다")
	}
	if err := tmp.Close(); err != nil {
		return apperrors.Wrap(err, apperrors.System, "임시 파일을 닫지 못했습니다")
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return apperrors.Wrapf(err, apperrors.System, "출력 파일로 교체하지 못했습니다 (%s)", path)
	}

	// 이름 변경을 디스크에 반영합니다. 실패해도 파일 내용은 이미 기록되어 있습니다.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}

// GitPublisher 통계 문서를 git 저장소(예: GitHub Pages)에 커밋하고 푸시합니다.
type GitPublisher struct {
	cfg    config.GitPublishConfig
	runner CommandRunner
}

// NewGitPublisher GitPublisher를 생성합니다.
func NewGitPublisher(cfg config.GitPublishConfig, runner CommandRunner) *GitPublisher {
	return &GitPublisher{cfg: cfg, runner: runner}
}

// Publish 작업 디렉토리를 최신 상태로 만든 뒤 문서를 기록하고, 변경이 있으면 커밋 후 푸시합니다.
// 변경이 없으면 커밋하지 않고 false를 반환합니다.
func (p *GitPublisher) Publish(ctx context.Context, stats Stats) (bool, error) {
	if err := p.sync(ctx); err != nil {
		return false, err
	}

	if err := WriteFile(filepath.Join(p.cfg.WorkDir, PublishedFilename), stats); err != nil {
		return false, err
	}

	changes, err := p.git(ctx, "status", "--porcelain", "--", PublishedFilename)
	if err != nil {
		return false, err
	}
	if changes == "" {
		applog.WithComponent(componentPublisher).Debug("통계 문서 변경 없음. 커밋을 건너뜁니다")
		return false, nil
	}

	if _, err := p.git(ctx, "add", "--", PublishedFilename); err != nil {
		return false, err
	}
	if _, err := p.git(ctx, "commit", "-m", p.cfg.CommitMessage); err != nil {
		return false, err
	}
	if _, err := p.git(ctx, "push", "origin", p.cfg.Branch); err != nil {
		return false, err
	}

	applog.WithComponentAndFields(componentPublisher, applog.Fields{
		"repo":   p.cfg.Repo,
		"branch": p.cfg.Branch,
	}).Info("통계 문서를 git 저장소에 발행했습니다")

	return true, nil
}

// sync 작업 디렉토리가 이미 저장소면 pull, 아니면 clone합니다.
func (p *GitPublisher) sync(ctx context.Context) error {
	if fi, err := os.Stat(filepath.Join(p.cfg.WorkDir, ".git")); err == nil && fi.IsDir() {
		_, err := p.git(ctx, "pull", "--ff-only", "origin", p.cfg.Branch)
		return err
	}

	if err := os.MkdirAll(filepath.Dir(p.cfg.WorkDir), 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.System, "작업 디렉토리의 상위 경로를 만들 수 없습니다")
	}

	if _, err := p.runner.Run(ctx, "git", "clone", "--branch", p.cfg.Branch, "--single-branch", RepoURL(p.cfg.Repo), p.cfg.WorkDir); err != nil {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "저장소를 clone하지 못했습니다 (%s)", p.cfg.Repo)
	}
	return nil
}

func (p *GitPublisher) git(ctx context.Context, args ...string) (string, error) {
	out, err := p.runner.Run(ctx, "git", append([]string{"-C", p.cfg.WorkDir}, args...)...)
	if err != nil {
		return "", apperrors.Wrapf(err, apperrors.ExecutionFailed, "git %s 실패", args[0])
	}
	return out, nil
}

// RepoURL "owner/name" 형식이면 GitHub HTTPS 주소로 바꾸고, 이미 URL이거나 SSH 주소면 그대로 둡니다.
func RepoURL(repo string) string {
	if strings.Contains(repo, "://") || strings.Contains(repo, "@") {
		return repo
	}
	return fmt.Sprintf("https://github.com/%s.git", strings.Trim(repo, "/"))
}
