// Package log logrus 기반의 전역 로깅 설정을 제공합니다.
//
// Setup은 lumberjack으로 로테이션되는 로그 파일을 열고, 레벨별로 출력 대상을 나누는 hook을 등록합니다.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	setupOnce    sync.Once
	globalCloser io.Closer
	globalErr    error
)

// Setup 전역 로거를 초기화합니다. 프로세스당 한 번만 실행되며, 이후 호출은 최초 결과를 그대로 반환합니다.
// 반환된 Closer는 main 종료 시 반드시 닫아야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalErr = setup(opts)
	})
	return globalCloser, globalErr
}

func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(silentFormatter{})
	logrus.SetOutput(io.Discard)

	rotating := func(suffix string) *lumberjack.Logger {
		name := opts.Name
		if suffix != "" {
			name += "." + suffix
		}
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, name+".log"),
			MaxSize:    orDefault(opts.MaxSizeMB, defaultMaxSizeMB),
			MaxBackups: orDefault(opts.MaxBackups, defaultMaxBackups),
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	h := &hook{formatter: newTextFormatter(opts.CallerPathPrefix)}
	c := &closer{hook: h}

	mainLog := rotating("")
	h.main = mainLog
	c.closers = append(c.closers, mainLog)

	if opts.EnableCriticalLog {
		l := rotating("critical")
		h.critical = l
		c.closers = append(c.closers, l)
	}
	if opts.EnableVerboseLog {
		l := rotating("verbose")
		h.verbose = l
		c.closers = append(c.closers, l)
	}
	if opts.EnableConsoleLog {
		h.console = os.Stdout
	}

	logrus.AddHook(h)

	// Fatal 로그로 os.Exit 되기 전에 버퍼를 비운다.
	logrus.RegisterExitHandler(func() { _ = c.Close() })

	return c, nil
}

func newTextFormatter(callerPrefix string) *logrus.TextFormatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPrefix != "" {
				if rest, ok := strings.CutPrefix(function, callerPrefix); ok {
					function = "..." + rest
				}
			}
			return function, ""
		},
	}
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
