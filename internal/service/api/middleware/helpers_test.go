package middleware

import (
	"bytes"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

// captureLog 표준 로거 출력을 버퍼로 돌리고, 테스트 종료 시 원래대로 되돌립니다.
// 전역 로거를 교체하므로 이 헬퍼를 쓰는 테스트는 병렬로 실행하지 않는다.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	prevOut, prevFormatter, prevLevel := logger.Out, logger.Formatter, logger.GetLevel()

	var buf bytes.Buffer
	applog.SetOutput(&buf)
	applog.SetFormatter(&applog.JSONFormatter{})
	applog.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		applog.SetOutput(prevOut)
		applog.SetFormatter(prevFormatter)
		applog.SetLevel(prevLevel)
	})
	return &buf
}

func newTestContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(method, target, nil), rec), rec
}
