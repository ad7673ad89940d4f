package log

// callerPathPrefix 호출자 경로 축약에 사용하는 모듈 경로 접두사입니다.
const callerPathPrefix = "github.com/melontron"

// NewProductionConfig 운영 환경에 맞춘 로그 설정을 반환합니다.
//
// 컨테이너 환경에서 로그 수집기가 표준 출력을 수집하므로 콘솔 출력을 유지하고,
// 장애 분석을 위해 Critical 로그를 별도 파일로 보관합니다.
func NewProductionConfig(appName string) Options {
	return Options{
		Name:              appName,
		MaxAge:            30,
		EnableCriticalLog: true,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,
		ReportCaller:      false,
		CallerPathPrefix:  callerPathPrefix,
	}
}

// NewDevelopmentConfig 개발 환경에 맞춘 로그 설정을 반환합니다.
func NewDevelopmentConfig(appName string) Options {
	return Options{
		Name:              appName,
		MaxAge:            1,
		EnableCriticalLog: false,
		EnableVerboseLog:  true,
		EnableConsoleLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  callerPathPrefix,
	}
}
