package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	_ "github.com/melontron/cloud-engineering-deep-dive/docs"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/config"
	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
	"github.com/melontron/cloud-engineering-deep-dive/internal/pkg/version"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/handler/system"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

var _ service.Service = (*Service)(nil)

// ErrServiceNotRunning 서비스가 시작되지 않았거나 이미 종료된 상태입니다.
var ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "API 서비스가 실행 중이 아닙니다")

// Service API 서버의 생명주기를 관리하는 서비스입니다.
//
// Start로 시작하며, 서버는 고루틴에서 실행됩니다. Start에 전달한 context가 취소되면
// 진행 중인 요청을 최대 5초 동안 기다린 뒤 서버를 종료합니다.
type Service struct {
	appConfig *config.AppConfig

	buildInfo version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
func NewService(appConfig *config.AppConfig, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	return &Service{
		appConfig: appConfig,
		buildInfo: buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 이 함수는 즉시 반환되며, 서비스가 완전히 종료되면 serviceStopWG.Done()이 호출됩니다.
// 이미 실행 중인 경우 경고만 기록하고 nil을 반환합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.runServiceLoop(serviceStopCtx, serviceStopWG)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"build": s.buildInfo.String(),
	}).Info(constants.LogMsgServiceStarted)

	return nil
}

// Health 서비스가 실행 중이면 nil을, 아니면 ErrServiceNotRunning을 반환합니다.
func (s *Service) Health() error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return ErrServiceNotRunning
	}
	return nil
}

func (s *Service) runServiceLoop(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.setupServer()

	httpServerDone := make(chan struct{})
	go s.startHTTPServer(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// setupServer 미들웨어 체인과 라우트가 구성된 Echo 인스턴스를 생성합니다.
func (s *Service) setupServer() *echo.Echo {
	apiConfig := s.appConfig.API

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		EnableHSTS:   apiConfig.HTTP.TLSServer,
		AllowOrigins: apiConfig.CORS.AllowOrigins,
		RateLimit: RateLimitConfig{
			Enabled:           apiConfig.RateLimit.Enabled,
			RequestsPerSecond: apiConfig.RateLimit.RequestsPerSecond,
			Burst:             apiConfig.RateLimit.Burst,
		},
	})

	RegisterRoutes(e, system.NewHandler(), apiConfig.Swagger.Enabled)

	return e
}

// startHTTPServer 설정에 따라 HTTP 또는 HTTPS 서버를 구동합니다.
// 서버가 종료될 때까지 블로킹되며, 종료되면 done 채널을 닫습니다.
func (s *Service) startHTTPServer(e *echo.Echo, done chan struct{}) {
	defer close(done)

	httpConfig := s.appConfig.API.HTTP
	address := fmt.Sprintf(":%d", httpConfig.ListenPort)

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": httpConfig.ListenPort,
		"tls":  httpConfig.TLSServer,
	}).Info(constants.LogMsgHTTPServerStarting)

	var err error
	if httpConfig.TLSServer {
		err = e.StartTLS(address, httpConfig.TLSCertFile, httpConfig.TLSKeyFile)
	} else {
		err = e.Start(address)
	}

	s.handleServerError(err)
}

// handleServerError 서버 구동 결과를 기록합니다.
// http.ErrServerClosed는 Graceful Shutdown에 의한 정상 종료입니다.
func (s *Service) handleServerError(err error) {
	if err == nil {
		return
	}

	if errors.Is(err, http.ErrServerClosed) {
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgHTTPServerStopped)
		return
	}

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port":  s.appConfig.API.HTTP.ListenPort,
		"error": err,
	}).Error(constants.LogMsgHTTPServerFatalError)
}

// waitForShutdown 종료 신호 또는 서버의 조기 종료를 기다린 뒤 서비스 상태를 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		// 포트 바인딩 실패, 인증서 로드 실패 등으로 서버가 먼저 종료됨
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
