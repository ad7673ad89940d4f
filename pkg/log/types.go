package log

import (
	"github.com/sirupsen/logrus"
)

// 호출하는 쪽에서 logrus를 직접 import하지 않도록 타입과 상수를 다시 노출합니다.
type (
	Level         = logrus.Level
	Fields        = logrus.Fields
	Entry         = logrus.Entry
	Hook          = logrus.Hook
	Logger        = logrus.Logger
	Formatter     = logrus.Formatter
	JSONFormatter = logrus.JSONFormatter
	TextFormatter = logrus.TextFormatter
)

// 로그 레벨 (심각도 내림차순)
const (
	PanicLevel = logrus.PanicLevel
	FatalLevel = logrus.FatalLevel // 기록 후 os.Exit(1)
	ErrorLevel = logrus.ErrorLevel
	WarnLevel  = logrus.WarnLevel
	InfoLevel  = logrus.InfoLevel
	DebugLevel = logrus.DebugLevel
	TraceLevel = logrus.TraceLevel
)

// AllLevels 모든 로그 레벨 목록
var AllLevels = logrus.AllLevels
