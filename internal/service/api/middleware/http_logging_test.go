package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/stretchr/testify/assert"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{name: "쿼리 없음", uri: "/v1", want: "/v1"},
		{name: "민감 정보 없음", uri: "/v1?id=1", want: "/v1?id=1"},
		{name: "토큰 마스킹", uri: "/health?token=abcdefghijklmnop", want: "/health?token=abcd%2A%2A%2Amnop"},
		{name: "대소문자 무시", uri: "/v1?API_KEY=secret123&id=1", want: "/v1?API_KEY=secr%2A%2A%2A&id=1"},
		{name: "파싱 실패 시 원본", uri: "/v1?%zz", want: "/v1?%zz"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

func TestHTTPLogger(t *testing.T) {
	buf := captureLog(t)

	e := echo.New()
	e.Use(HTTPLogger())
	e.GET("/v1", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1?password=hunter2hunter2", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	out := buf.String()
	assert.Contains(t, out, constants.LogMsgHTTPRequest)
	assert.Contains(t, out, `"status":200`)
	assert.Contains(t, out, `"component":"api.middleware"`)
	assert.NotContains(t, out, "hunter2hunter2", "민감한 값은 로그에 남지 않아야 합니다")

	t.Run("에러는 로깅 전에 처리되어 최종 상태 코드가 기록됨", func(t *testing.T) {
		buf.Reset()

		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, buf.String(), `"status":404`)
	})
}
