package httputil

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	applog.SetOutput(io.Discard)
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		method   string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "404는 고정 메시지",
			method:   http.MethodGet,
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: `{"result_code":404,"message":"` + constants.ErrMsgNotFound + `"}`,
		},
		{
			name:     "405는 고정 메시지",
			method:   http.MethodPost,
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusMethodNotAllowed,
			wantBody: `{"result_code":405,"message":"` + constants.ErrMsgMethodNotAllowed + `"}`,
		},
		{
			name:     "ErrorResponse 메시지 사용",
			method:   http.MethodGet,
			err:      NewTooManyRequestsError("잠시 후 다시"),
			wantCode: http.StatusTooManyRequests,
			wantBody: `{"result_code":429,"message":"잠시 후 다시"}`,
		},
		{
			name:     "문자열 메시지 사용",
			method:   http.MethodGet,
			err:      echo.NewHTTPError(http.StatusBadRequest, "bad"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"result_code":400,"message":"bad"}`,
		},
		{
			name:     "일반 에러는 500",
			method:   http.MethodGet,
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"result_code":500,"message":"` + constants.ErrMsgInternalServer + `"}`,
		},
		{
			name:     "HEAD 요청은 본문 없음",
			method:   http.MethodHead,
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantBody: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/missing", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

// TestErrorHandler_LogFields 전역 로거 출력을 교체하므로 병렬로 실행하지 않는다.
func TestErrorHandler_LogFields(t *testing.T) {
	logger := applog.StandardLogger()
	prevOut, prevFormatter := logger.Out, logger.Formatter
	t.Cleanup(func() {
		applog.SetOutput(prevOut)
		applog.SetFormatter(prevFormatter)
	})

	var buf bytes.Buffer
	applog.SetOutput(&buf)
	applog.SetFormatter(&applog.JSONFormatter{})

	root := errors.New("nil map")

	tests := []struct {
		name      string
		err       error
		wantType  string
		wantCause string
	}{
		{
			name:      "감싸진 AppError",
			err:       apperrors.Wrap(root, apperrors.Internal, "패닉 복구"),
			wantType:  "Internal",
			wantCause: `"cause":"nil map"`,
		},
		{
			name:     "AppError가 아닌 에러",
			err:      echo.ErrNotFound,
			wantType: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

			ErrorHandler(tt.err, c)

			out := buf.String()
			require.NotEmpty(t, out)
			assert.Contains(t, out, `"error_type":"`+tt.wantType+`"`)
			if tt.wantCause != "" {
				assert.Contains(t, out, tt.wantCause)
			} else {
				assert.NotContains(t, out, `"cause"`)
			}
		})
	}
}

func TestErrorHandler_CommittedResponse(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	assert.NoError(t, c.String(http.StatusOK, "done"))

	ErrorHandler(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.Debug = true
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/?pretty", nil), rec)

	assert.NoError(t, WriteJSON(c, http.StatusOK, map[string]string{"status": "ok"}))

	assert.Equal(t, `{"status":"ok"}`, rec.Body.String(), "디버그 모드와 ?pretty에서도 압축된 본문이어야 합니다")
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
}

func TestWriteJSON_Head(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	assert.NoError(t, WriteJSON(c, http.StatusOK, map[string]string{"status": "ok"}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String(), "HEAD 응답에는 본문이 없어야 합니다")
	assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "15", rec.Header().Get(echo.HeaderContentLength), "GET 본문과 같은 길이를 알려야 합니다")
}
