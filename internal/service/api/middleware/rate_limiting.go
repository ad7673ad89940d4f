package middleware

import (
	"fmt"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
	"golang.org/x/time/rate"
)

// maxIPRateLimiters 메모리에 유지하는 IP별 토큰 버킷의 최대 개수입니다.
// 도달하면 새 IP를 등록하기 전에 기존 항목 하나를 제거합니다.
const maxIPRateLimiters = 10000

// ipRateLimiter IP 주소별 토큰 버킷을 관리합니다.
//
// 최대 maxIPRateLimiters개의 IP를 추적하며, 초과 시 제거되는 항목은 map 순회 순서에 따라 임의로 선택됩니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (l *ipRateLimiter) get(ip string) *rate.Limiter {
	l.mu.RLock()
	limiter, ok := l.limiters[ip]
	l.mu.RUnlock()
	if ok {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, ok = l.limiters[ip]; ok {
		return limiter
	}

	if len(l.limiters) >= maxIPRateLimiters {
		for evicted := range l.limiters {
			delete(l.limiters, evicted)
			break
		}
	}

	limiter = rate.NewLimiter(l.limit, l.burst)
	l.limiters[ip] = limiter
	return limiter
}

func (l *ipRateLimiter) allow(ip string) bool {
	return l.get(ip).Allow()
}

// RateLimiting 클라이언트 IP별로 초당 requestsPerSecond개, 최대 burst개까지 요청을 허용하는 미들웨어를 반환합니다.
// 한도를 초과한 요청은 Retry-After 헤더와 함께 429로 거부됩니다.
//
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimiting(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecond, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurst, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if limiter.allow(ip) {
				return next(c)
			}

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"remote_ip": ip,
				"path":      c.Request().URL.Path,
				"method":    c.Request().Method,
			}).Warn(constants.LogMsgRateLimitExceeded)

			c.Response().Header().Set(echo.HeaderRetryAfter, constants.RetryAfterSeconds)
			return ErrRateLimitExceeded
		}
	}
}
