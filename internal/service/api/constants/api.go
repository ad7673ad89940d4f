package constants

// 응답 본문에 고정으로 포함되는 값입니다.
const (
	// APIVersion /v1 엔드포인트가 보고하는 API 버전입니다. 바이너리 빌드 버전과는 무관합니다.
	APIVersion = "1.0.0"

	// APIDescription /v1 엔드포인트가 보고하는 API 설명입니다.
	APIDescription = "aca cloud engineering deep dive api"

	// HealthStatusOK /health 엔드포인트의 상태 값입니다.
	HealthStatusOK = "ok"
)

// 라우트 경로
const (
	PathVersion = "/v1"
	PathHealth  = "/health"
	PathSwagger = "/swagger/*"
)

// /health 응답의 캐시 금지 헤더 값입니다.
const (
	HeaderPragma  = "Pragma"
	HeaderExpires = "Expires"

	NoCacheControl = "no-cache, no-store, must-revalidate"
	NoCachePragma  = "no-cache"
	NoCacheExpires = "0"
)

// SensitiveQueryParams 요청 로그에서 값을 마스킹하는 쿼리 파라미터 이름입니다. (대소문자 무시)
var SensitiveQueryParams = []string{
	"api_key",
	"app_key",
	"access_token",
	"token",
	"password",
	"secret",
}
