package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 출력 대상을 나눕니다.
//
//   - ERROR 이상: critical + main
//   - INFO, WARN: main
//   - DEBUG 이하: verbose (main에는 기록하지 않음)
//   - console: 레벨과 무관하게 모두 기록
type hook struct {
	main     io.Writer
	critical io.Writer
	verbose  io.Writer
	console  io.Writer

	formatter Formatter

	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.console != nil {
		// 콘솔 쓰기 실패는 로깅 전체를 막지 않는다.
		_, _ = h.console.Write(msg)
	}

	var firstErr error
	write := func(w io.Writer, channel string) {
		if w == nil {
			return
		}
		if _, err := w.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM] %s 로그 쓰기 실패: %v\n", channel, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if entry.Level >= DebugLevel {
		write(h.verbose, "verbose")
		return firstErr
	}
	if entry.Level <= ErrorLevel {
		write(h.critical, "critical")
	}
	write(h.main, "main")

	return firstErr
}

// Close 이후의 로그 기록을 차단합니다. 진행 중인 Fire가 끝날 때까지 대기합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}
