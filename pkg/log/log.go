// Package log 애플리케이션 전역에서 사용하는 구조화된 로깅 기능을 제공합니다.
//
// 내부적으로 logrus를 사용하며, 모든 로그에 발생 위치(component)를 일관되게 기록할 수 있도록
// 헬퍼 함수를 제공합니다. 파일 출력 및 로테이션 설정은 Setup()을 통해 수행합니다.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// componentKey 로그 발생 위치를 식별하는 필드 키입니다.
const componentKey = "component"

// WithComponent component 필드를 포함한 로그 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField(componentKey, component)
}

// WithComponentAndFields component 필드와 추가 필드를 포함한 로그 Entry를 반환합니다.
//
// 전달된 fields 맵은 변경하지 않습니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	newFields := make(Fields, len(fields)+1)
	for k, v := range fields {
		newFields[k] = v
	}
	newFields[componentKey] = component

	return logrus.WithFields(newFields)
}

// WithFields 주어진 필드를 포함한 로그 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// SetDebugMode Debug 모드에 따라 로그 레벨을 설정합니다.
//   - Debug 모드: Trace 레벨 (모든 로그 출력)
//   - 운영 모드: Info 레벨
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
	} else {
		logrus.SetLevel(InfoLevel)
	}
}

// SetOutput 전역 로거의 출력 대상을 변경합니다.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetFormatter 전역 로거의 포맷터를 변경합니다.
func SetFormatter(f Formatter) {
	logrus.SetFormatter(f)
}

// SetLevel 전역 로거의 로그 레벨을 변경합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// StandardLogger 전역 로거 인스턴스를 반환합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// New 전역 로거와 독립된 새 로거를 생성합니다.
func New() *Logger {
	return logrus.New()
}
