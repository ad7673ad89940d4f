package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiting(t *testing.T) {
	_ = captureLog(t)

	e := echo.New()
	e.Use(RateLimiting(1, 2))
	e.GET("/v1", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	do := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/v1", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, do("10.0.0.1").Code)

	rec := do("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "burst를 초과하면 429")
	assert.Equal(t, "1", rec.Header().Get(echo.HeaderRetryAfter))

	assert.Equal(t, http.StatusOK, do("10.0.0.2").Code, "다른 IP는 독립적으로 제한")
}

func TestRateLimiting_InvalidArguments(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { RateLimiting(0, 1) })
	assert.Panics(t, func() { RateLimiting(1, 0) })
}

func TestIPRateLimiter_ConcurrentGet(t *testing.T) {
	t.Parallel()

	l := newIPRateLimiter(10, 10)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = l.get("10.0.0.1")
		}()
	}
	wg.Wait()

	assert.Len(t, l.limiters, 1)
	assert.Same(t, l.get("10.0.0.1"), l.get("10.0.0.1"))
}

func TestIPRateLimiter_BoundedSize(t *testing.T) {
	t.Parallel()

	ipOf := func(i int) string {
		return fmt.Sprintf("10.%d.%d.%d", i>>16&0xff, i>>8&0xff, i&0xff)
	}

	l := newIPRateLimiter(20, 40)

	total := maxIPRateLimiters + 500
	for i := 0; i < total; i++ {
		require.True(t, l.allow(ipOf(i)), "처음 보는 IP의 첫 요청은 허용")
		require.LessOrEqual(t, len(l.limiters), maxIPRateLimiters, "추적하는 IP 수는 상한을 넘지 않아야 합니다")
	}

	assert.Len(t, l.limiters, maxIPRateLimiters)
	assert.Contains(t, l.limiters, ipOf(total-1), "가장 최근에 등록한 IP는 유지됨")
}
