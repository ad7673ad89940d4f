package config

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
)

// AppConfig 애플리케이션 설정의 최상위 구조체
type AppConfig struct {
	Debug bool      `json:"debug"`
	API   APIConfig `json:"api"`
}

func (c *AppConfig) validate(v *validator.Validate) error {
	return c.API.validate(v)
}

// VerifyRecommendations 동작에는 문제가 없지만 권장되지 않는 설정에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	var warnings []string

	if c.API.HTTP.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.API.HTTP.ListenPort))
	}
	if c.API.Swagger.Enabled && !c.Debug {
		warnings = append(warnings, "운영 모드(debug=false)에서 Swagger UI가 활성화되어 있습니다")
	}

	return warnings
}

// APIConfig HTTP API 서버 설정
type APIConfig struct {
	HTTP      HTTPConfig      `json:"http"`
	CORS      CORSConfig      `json:"cors"`
	RateLimit RateLimitConfig `json:"rate_limit"`
	Swagger   SwaggerConfig   `json:"swagger"`
}

func (c *APIConfig) validate(v *validator.Validate) error {
	if err := c.HTTP.validate(v); err != nil {
		return err
	}
	if err := c.CORS.validate(v); err != nil {
		return err
	}
	return c.RateLimit.validate(v)
}

// HTTPConfig 수신 포트 및 TLS 설정
type HTTPConfig struct {
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
}

func (c *HTTPConfig) validate(v *validator.Validate) error {
	fieldErr, err := firstFieldError(v.Struct(c))
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "HTTP 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	if fieldErr == nil {
		return nil
	}

	switch fieldErr.StructField() {
	case "ListenPort":
		return apperrors.Newf(apperrors.InvalidInput, "HTTP 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다 (입력값: %v)", fieldErr.Value())
	case "TLSCertFile", "TLSKeyFile":
		if fieldErr.Tag() == "required_if" {
			return apperrors.Newf(apperrors.InvalidInput, "TLS 서버 활성화 시 %s 설정은 필수입니다", fieldErr.Field())
		}
		return apperrors.Newf(apperrors.NotFound, "%s에 지정된 파일을 찾을 수 없습니다: '%v'", fieldErr.Field(), fieldErr.Value())
	default:
		return apperrors.Newf(apperrors.InvalidInput, "HTTP 서버 설정이 올바르지 않습니다: %s (조건: %s)", fieldErr.Field(), fieldErr.Tag())
	}
}

// CORSConfig 허용할 Origin 목록
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate(v *validator.Validate) error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}
	if slices.Contains(c.AllowOrigins, "*") && len(c.AllowOrigins) > 1 {
		return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다")
	}

	fieldErr, err := firstFieldError(v.Struct(c))
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	if fieldErr != nil {
		return apperrors.Newf(apperrors.InvalidInput, "CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value())
	}
	return nil
}

// RateLimitConfig IP별 요청 속도 제한 설정 (비활성화 시 값은 검증하지 않음)
type RateLimitConfig struct {
	Enabled           bool `json:"enabled"`
	RequestsPerSecond int  `json:"requests_per_second" validate:"min=1"`
	Burst             int  `json:"burst" validate:"min=1"`
}

func (c *RateLimitConfig) validate(v *validator.Validate) error {
	if !c.Enabled {
		return nil
	}

	fieldErr, err := firstFieldError(v.Struct(c))
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "요청 속도 제한 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	if fieldErr != nil {
		return apperrors.Newf(apperrors.InvalidInput, "요청 속도 제한 설정(%s)은 1 이상이어야 합니다 (입력값: %v)", fieldErr.Field(), fieldErr.Value())
	}
	return nil
}

// SwaggerConfig Swagger UI 노출 여부
type SwaggerConfig struct {
	Enabled bool `json:"enabled"`
}
