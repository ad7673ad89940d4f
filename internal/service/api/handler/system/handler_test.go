package system

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	wantVersionBody = `{"version":"1.0.0","description":"aca cloud engineering deep dive api"}`
	wantHealthBody  = `{"status":"ok"}`
)

func init() {
	applog.SetOutput(io.Discard)
}

func TestHandlers_IgnoreRequestInput(t *testing.T) {
	t.Parallel()

	h := NewHandler()

	requests := []struct {
		name    string
		target  string
		body    string
		headers map[string]string
	}{
		{name: "기본 요청", target: "/"},
		{name: "쿼리 파라미터", target: "/?pretty&foo=bar&status=down"},
		{name: "요청 본문", target: "/", body: `{"status":"down"}`},
		{name: "임의 헤더", target: "/", headers: map[string]string{"Accept": "text/plain", "X-Custom": "1"}},
	}

	handlers := []struct {
		name     string
		handler  echo.HandlerFunc
		wantBody string
	}{
		{name: "version", handler: h.VersionHandler, wantBody: wantVersionBody},
		{name: "health", handler: h.HealthCheckHandler, wantBody: wantHealthBody},
	}

	for _, hh := range handlers {
		for _, rr := range requests {
			hh, rr := hh, rr
			t.Run(hh.name+"/"+rr.name, func(t *testing.T) {
				t.Parallel()

				e := echo.New()
				e.Debug = true

				req := httptest.NewRequest(http.MethodGet, rr.target, strings.NewReader(rr.body))
				for k, v := range rr.headers {
					req.Header.Set(k, v)
				}
				rec := httptest.NewRecorder()

				require.NoError(t, hh.handler(e.NewContext(req, rec)))

				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, hh.wantBody, rec.Body.String())
				assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
			})
		}
	}
}

func TestHandlers_Idempotent(t *testing.T) {
	t.Parallel()

	h := NewHandler()
	e := echo.New()

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		require.NoError(t, h.VersionHandler(e.NewContext(httptest.NewRequest(http.MethodGet, "/v1", nil), rec)))
		assert.Equal(t, wantVersionBody, rec.Body.String())

		rec = httptest.NewRecorder()
		require.NoError(t, h.HealthCheckHandler(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))
		assert.Equal(t, wantHealthBody, rec.Body.String())
	}
}
