package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	defaultDir        = "logs"
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// Setup()이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	setupOnce sync.Once

	// 최초 Setup() 결과를 보관하여, 재호출 시 동일한 결과를 반환합니다.
	globalCloser   io.Closer
	globalSetupErr error
)

// Setup 전역 로깅 시스템을 초기화하고 옵션에 따라 파일 및 콘솔 출력을 구성합니다.
//
// 반환된 Closer는 main 함수에서 defer로 해제해야 합니다.
// 두 번째 이후의 호출은 최초 호출의 결과를 그대로 반환합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setup(opts)
	})

	return globalCloser, globalSetupErr
}

// setup 실제 초기화 로직입니다. 테스트에서는 sync.Once를 거치지 않고 직접 호출합니다.
func setup(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)

	dir := opts.Dir
	if dir == "" {
		dir = defaultDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	newWriter := func(suffix string) *lumberjack.Logger {
		name := opts.Name
		if suffix != "" {
			name += "." + suffix
		}
		return &lumberjack.Logger{
			Filename:   filepath.Join(dir, fmt.Sprintf("%s.%s", name, fileExt)),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	h := &hook{
		formatter: newTextFormatter(opts.CallerPathPrefix),
	}

	mainWriter := newWriter("")
	h.mainWriter = mainWriter
	closers := []io.Closer{mainWriter}

	if opts.EnableCriticalLog {
		w := newWriter("critical")
		h.criticalWriter = w
		closers = append(closers, w)
	}
	if opts.EnableVerboseLog {
		w := newWriter("verbose")
		h.verboseWriter = w
		closers = append(closers, w)
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	// 기본 출력은 끄고 모든 출력을 Hook에 위임한다.
	logrus.SetOutput(io.Discard)
	logrus.SetFormatter(&silentFormatter{})
	logrus.AddHook(h)

	c := &closer{
		closers: closers,
		hook:    h,
	}

	// Fatal 로그로 프로세스가 종료되기 직전에 버퍼를 비운다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}
