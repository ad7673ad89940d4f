package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
)

const (
	// AppName 애플리케이션 식별자입니다. 로그 파일명과 기본 설정 파일명에 사용됩니다.
	AppName string = "deep-dive-api"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 탐색하는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 계층은 이중 언더스코어로 구분합니다. (예: DEEPDIVE_API__HTTP__LISTEN_PORT=8080)
	EnvPrefix = "DEEPDIVE_"

	// DefaultListenPort HTTP 서버의 기본 수신 포트입니다.
	DefaultListenPort = 3000

	// DefaultRateLimitRequestsPerSecond IP당 초당 허용 요청 수의 기본값입니다.
	DefaultRateLimitRequestsPerSecond = 20

	// DefaultRateLimitBurst IP당 순간 허용 요청 수의 기본값입니다.
	DefaultRateLimitBurst = 40
)

// newDefaultConfig 설정 파일과 환경 변수가 모두 없을 때 사용되는 기본 설정을 반환합니다.
func newDefaultConfig() AppConfig {
	return AppConfig{
		Debug: false,
		API: APIConfig{
			HTTP: HTTPConfig{
				ListenPort: DefaultListenPort,
			},
			CORS: CORSConfig{
				AllowOrigins: []string{"*"},
			},
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: DefaultRateLimitRequestsPerSecond,
				Burst:             DefaultRateLimitBurst,
			},
		},
	}
}

// Load 기본 설정 파일(DefaultFilename)을 읽어 설정을 로드합니다.
// 파일이 존재하지 않으면 기본값과 환경 변수만으로 설정을 구성합니다.
func Load() (*AppConfig, error) {
	return load(DefaultFilename, true)
}

// LoadWithFile 지정된 설정 파일을 읽어 설정을 로드합니다. 파일이 없으면 에러를 반환합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, false)
}

// LoadDotEnv .env 형식의 파일을 읽어 프로세스 환경 변수로 등록합니다.
// 이미 설정된 환경 변수는 덮어쓰지 않으며, 파일이 없으면 아무 작업도 하지 않습니다.
func LoadDotEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return apperrors.Wrapf(err, apperrors.InvalidInput, "환경 변수 파일을 읽을 수 없습니다: '%s'", filename)
	}
	return nil
}

func load(filename string, optional bool) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 (가장 낮은 우선순위)
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist) && optional:
			// 기본값으로 진행
		case errors.Is(err, fs.ErrNotExist):
			return nil, apperrors.Wrapf(err, apperrors.NotFound, "설정 파일을 찾을 수 없습니다: '%s'", filename)
		default:
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정 파일 로드 중 오류가 발생했습니다: '%s'", filename)
		}
	}

	// 3. 환경 변수 (가장 높은 우선순위)
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
			ErrorUnused:      true,
			WeaklyTypedInput: true,
			Result:           &appConfig,
			TagName:          "json",
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "설정('%s')의 유효성 검증에 실패했습니다", filename)
	}

	return &appConfig, nil
}

// normalizeEnvKey 환경 변수 이름을 koanf 키 경로로 변환합니다.
// (예: DEEPDIVE_API__RATE_LIMIT__ENABLED -> api.rate_limit.enabled)
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}
