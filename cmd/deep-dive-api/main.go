package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/melontron/cloud-engineering-deep-dive/internal/config"
	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
	"github.com/melontron/cloud-engineering-deep-dive/internal/pkg/version"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
	"github.com/spf13/pflag"
)

// @title Cloud Engineering Deep Dive API
// @version 1.0.0
// @description 버전 정보와 헬스체크 엔드포인트를 제공하는 API입니다.
// @BasePath /

const banner = `
  ____                        ____   _                  _     ____  _
 |  _ \   ___   ___  _ __    |  _ \ (_)__   __ ___     / \   |  _ \(_)
 | | | | / _ \ / _ \| '_ \   | | | || |\ \ / // _ \   / _ \  | |_) | |
 | |_| ||  __/|  __/| |_) |  | |_| || | \ V /|  __/  / ___ \ |  __/| |
 |____/  \___| \___|| .__/   |____/ |_|  \_/  \___| /_/   \_\|_|   |_|
                    |_|                                      %s
--------------------------------------------------------------------------------
`

// cliOptions 실행 인자
type cliOptions struct {
	configFile  string
	envFile     string
	showVersion bool
}

// parseFlags 실행 인자를 해석합니다. args에는 프로그램 이름이 포함되지 않습니다.
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var opts cliOptions

	fs := pflag.NewFlagSet(config.AppName, pflag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVarP(&opts.configFile, "config", "c", "", fmt.Sprintf("설정 파일 경로 (지정하지 않으면 %s을 사용하며, 없으면 기본값으로 구동)", config.DefaultFilename))
	fs.StringVar(&opts.envFile, "env-file", ".env", "환경 변수를 읽어올 dotenv 파일 경로 (없으면 무시)")
	fs.BoolVarP(&opts.showVersion, "version", "v", false, "빌드 정보를 출력하고 종료")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	return opts, nil
}

// awaitTermination 종료 신호를 받거나 모든 서비스가 먼저 종료될 때까지 대기합니다.
// 신호를 받으면 nil을, 신호 없이 서비스가 끝났으면 각 서비스의 Health 에러를 반환합니다.
func awaitTermination(termC <-chan os.Signal, servicesDone <-chan struct{}, services []service.Service) error {
	select {
	case sig := <-termC:
		applog.WithComponentAndFields("main", applog.Fields{
			"signal": sig.String(),
		}).Info("종료 신호 수신")
		return nil

	case <-servicesDone:
		var errs []error
		for _, s := range services {
			if err := s.Health(); err != nil {
				errs = append(errs, err)
			}
		}
		switch len(errs) {
		case 0:
			return apperrors.New(apperrors.Unavailable, "모든 서비스가 종료되었습니다")
		case 1:
			return errs[0]
		}
		return errors.Join(errs...)
	}
}

// loadConfig dotenv 파일을 적용한 뒤 환경설정을 로드합니다.
func loadConfig(opts cliOptions) (*config.AppConfig, error) {
	if opts.envFile != "" {
		if err := config.LoadDotEnv(opts.envFile); err != nil {
			return nil, err
		}
	}

	if opts.configFile != "" {
		return config.LoadWithFile(opts.configFile)
	}
	return config.Load()
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	buildInfo := version.Get()

	if opts.showVersion {
		fmt.Println(buildInfo.String())
		return
	}

	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadConfig(opts)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패 (Cause: %v)\n%+v\n", apperrors.RootCause(err), err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentConfig(config.AppName)
	} else {
		logOpts = applog.NewProductionConfig(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	applog.SetDebugMode(appConfig.Debug)

	fmt.Printf(banner, buildInfo.Version)

	applog.WithComponentAndFields("main", applog.Fields{
		"build": buildInfo.ToMap(),
		"env":   map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	apiService := api.NewService(appConfig, buildInfo)

	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	services := []service.Service{apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", applog.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel()
			serviceStopWG.Wait()

			appLogCloser.Close()
			os.Exit(1)
		}
	}

	servicesDone := make(chan struct{})
	go func() {
		serviceStopWG.Wait()
		close(servicesDone)
	}()

	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	if err := awaitTermination(termC, servicesDone, services); err != nil {
		applog.WithComponentAndFields("main", applog.Fields{
			"error": err,
		}).Error("서비스가 예기치 않게 종료되어 서버를 중단합니다")

		cancel()
		appLogCloser.Close()
		os.Exit(1)
	}

	cancel()
	<-servicesDone
}
