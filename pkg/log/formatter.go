package log

import (
	"runtime"
	"strconv"
	"strings"
	"time"
)

// silentFormatter 아무런 동작도 하지 않는 포맷터입니다.
// logrus는 출력 대상이 io.Discard여도 포맷팅을 수행하므로, 실제 포맷팅을 Hook에 맡길 때 사용합니다.
type silentFormatter struct{}

// Format 아무런 변환도 수행하지 않고 nil을 반환합니다.
func (f *silentFormatter) Format(_ *Entry) ([]byte, error) {
	return nil, nil
}

// newTextFormatter 파일 및 콘솔 출력에 사용할 TextFormatter를 생성합니다.
func newTextFormatter(callerPathPrefix string) *TextFormatter {
	return &TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if callerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, callerPathPrefix); found {
					function = "..." + cut
				}
			}
			return function, ""
		},
	}
}
