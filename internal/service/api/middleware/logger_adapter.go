package middleware

import (
	"io"

	"github.com/labstack/gommon/log"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

// Logger Echo 로거(echo.Logger) 인터페이스를 애플리케이션 로거 위에 구현한 어댑터입니다.
//
// Print/Debug/Info/Warn/Error/Fatal/Panic 계열은 임베드된 로거의 메서드가 그대로 사용되고,
// 시그니처가 다른 메서드와 JSON 변형(*j)만 여기서 구현합니다.
type Logger struct {
	*applog.Logger
}

var levelToEcho = map[applog.Level]log.Lvl{
	applog.TraceLevel: log.DEBUG,
	applog.DebugLevel: log.DEBUG,
	applog.InfoLevel:  log.INFO,
	applog.WarnLevel:  log.WARN,
	applog.ErrorLevel: log.ERROR,
}

var levelFromEcho = map[log.Lvl]applog.Level{
	log.DEBUG: applog.DebugLevel,
	log.INFO:  applog.InfoLevel,
	log.WARN:  applog.WarnLevel,
	log.ERROR: applog.ErrorLevel,
}

func (l Logger) Output() io.Writer { return l.Logger.Out }

func (l Logger) Prefix() string { return "" }

// SetPrefix 접두사는 지원하지 않습니다.
func (l Logger) SetPrefix(string) {}

// SetHeader 헤더 템플릿은 지원하지 않습니다.
func (l Logger) SetHeader(string) {}

// Level 현재 레벨을 Echo 레벨로 변환합니다. 대응하는 레벨이 없으면(Fatal, Panic) OFF를 반환합니다.
func (l Logger) Level() log.Lvl {
	if lvl, ok := levelToEcho[l.Logger.GetLevel()]; ok {
		return lvl
	}
	return log.OFF
}

// SetLevel Echo 레벨을 애플리케이션 로거 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l Logger) SetLevel(lvl log.Lvl) {
	if level, ok := levelFromEcho[lvl]; ok {
		l.Logger.SetLevel(level)
	}
}

func (l Logger) Printj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Print() }
func (l Logger) Debugj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Debug() }
func (l Logger) Infoj(j log.JSON)  { l.Logger.WithFields(applog.Fields(j)).Info() }
func (l Logger) Warnj(j log.JSON)  { l.Logger.WithFields(applog.Fields(j)).Warn() }
func (l Logger) Errorj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Error() }
func (l Logger) Fatalj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Fatal() }
func (l Logger) Panicj(j log.JSON) { l.Logger.WithFields(applog.Fields(j)).Panic() }
