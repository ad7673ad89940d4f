package log

import (
	"errors"
	"fmt"
	"os"
)

// Options Setup에 전달하는 로거 설정입니다. 0 값 필드는 기본값으로 대체됩니다.
type Options struct {
	// Name 로그 파일명(<Name>.log, <Name>.critical.log, <Name>.verbose.log)에 사용됩니다. 필수.
	Name string

	// Dir 로그 디렉토리 (기본값 "logs")
	Dir string

	// Level 최소 기록 레벨 (기본값 InfoLevel)
	Level Level

	// 파일 회전 정책. MaxAge가 0이면 기간에 따른 삭제를 하지 않습니다.
	MaxAge     int
	MaxSizeMB  int
	MaxBackups int

	EnableCriticalLog bool // Error 이상을 <Name>.critical.log에 추가 기록
	EnableVerboseLog  bool // Debug 이하를 <Name>.verbose.log에 추가 기록
	EnableConsoleLog  bool // 표준 출력에도 기록

	ReportCaller     bool
	CallerPathPrefix string // 호출자 함수명에서 생략할 모듈 경로 접두사
}

// Validate 필수 값 누락과 음수 설정을 검사합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return errors.New("로그 파일명에 사용할 Name이 비어 있습니다")
	}

	if opts.Dir != "" {
		if fi, err := os.Stat(opts.Dir); err == nil && !fi.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 파일입니다", opts.Dir)
		}
	}

	for name, v := range map[string]int{"MaxAge": opts.MaxAge, "MaxSizeMB": opts.MaxSizeMB, "MaxBackups": opts.MaxBackups} {
		if v < 0 {
			return fmt.Errorf("%s는 0 이상이어야 합니다: %d", name, v)
		}
	}

	return nil
}
