package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/httputil"
	appmiddleware "github.com/melontron/cloud-engineering-deep-dive/internal/service/api/middleware"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

// hstsMaxAge TLS 서버에서 Strict-Transport-Security 헤더에 사용하는 max-age(1년)
const hstsMaxAge = 31536000

// HTTPServerConfig HTTP 서버 생성에 필요한 설정을 정의합니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// EnableHSTS TLS로 서비스할 때 Strict-Transport-Security 헤더를 추가할지 여부
	EnableHSTS bool

	// AllowOrigins CORS에서 허용할 Origin 목록
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 60초)
	RequestTimeout time.Duration

	// RateLimit IP별 요청 제한. Enabled가 false이면 미들웨어를 등록하지 않습니다.
	RateLimit RateLimitConfig
}

// RateLimitConfig IP별 요청 제한 설정
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond int
	Burst             int
}

// NewHTTPServer 설정된 미들웨어를 포함한 Echo 인스턴스를 생성합니다.
//
// 미들웨어는 다음 순서로 적용됩니다:
//
//  1. PanicRecovery - 핸들러와 이후 미들웨어의 panic을 복구하여 500으로 응답
//  2. RequestID - X-Request-ID 헤더 부여 (로그의 request_id)
//  3. ServerHeader - Server 헤더 제거
//  4. HTTPLogger - 요청/응답 로깅 (429, 503 응답도 기록됨)
//  5. RateLimiting - IP별 요청 제한 (설정으로 활성화한 경우에만)
//  6. ContextTimeout - 요청 context에 마감 시간 설정 (핸들러가 context.DeadlineExceeded를 반환하면 503)
//  7. CORS - 허용된 Origin의 GET/HEAD 요청과 Preflight 처리
//  8. Secure - X-XSS-Protection, X-Content-Type-Options 등 보안 헤더
//
// 라우트는 포함되지 않으며, 반환된 인스턴스에 RegisterRoutes로 등록합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true
	e.HidePort = true

	// 느린 클라이언트가 연결을 붙잡지 못하도록 서버 단위 타임아웃을 둔다.
	e.Server.ReadTimeout = constants.DefaultReadTimeout             // 헤더를 포함한 요청 전체 읽기
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout // 요청 헤더 읽기
	e.Server.WriteTimeout = constants.DefaultWriteTimeout           // 응답 쓰기
	e.Server.IdleTimeout = constants.DefaultIdleTimeout             // Keep-Alive 유휴 연결

	// Echo 내부 로그도 애플리케이션 로거의 형식과 출력 대상을 따른다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	// 0이면 기본값(60초)
	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	// 1. Panic 복구 (가장 바깥에서 이후 모든 미들웨어를 감싼다)
	e.Use(appmiddleware.PanicRecovery())
	// 2. Request ID
	e.Use(middleware.RequestID())
	// 3. Server 헤더 제거
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Response().Header().Set(echo.HeaderServer, "")
			return next(c)
		}
	})
	// 4. HTTP 로깅 (RateLimiting, Timeout이 만든 429/503도 기록)
	e.Use(appmiddleware.HTTPLogger())
	// 5. IP별 요청 제한
	if cfg.RateLimit.Enabled {
		e.Use(appmiddleware.RateLimiting(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}
	// 6. 요청 context 타임아웃
	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout:      timeout,
		ErrorHandler: timeoutErrorHandler,
	}))
	// 7. CORS
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	// 8. 보안 헤더 (TLS면 HSTS 포함)
	secureConfig := middleware.DefaultSecureConfig
	if cfg.EnableHSTS {
		secureConfig.HSTSMaxAge = hstsMaxAge
	}
	e.Use(middleware.SecureWithConfig(secureConfig))

	return e
}

// timeoutErrorHandler 요청 context의 마감 시간 초과를 503 응답으로 바꾸고, 그 밖의 에러는 그대로 전달합니다.
func timeoutErrorHandler(err error, _ echo.Context) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return httputil.NewServiceUnavailableError(constants.ErrMsgServiceUnavailable)
	}
	return err
}
