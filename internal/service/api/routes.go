package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/handler/system"
	appmiddleware "github.com/melontron/cloud-engineering-deep-dive/internal/service/api/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes API 서비스의 라우트를 등록합니다.
//
//   - GET, HEAD /v1: API 버전 정보
//   - GET, HEAD /health: 헬스체크 (캐시 금지 헤더 포함)
//   - GET /swagger/*: Swagger UI (swaggerEnabled가 true인 경우에만)
func RegisterRoutes(e *echo.Echo, h *system.Handler, swaggerEnabled bool) {
	registerSystemRoutes(e, h)
	if swaggerEnabled {
		registerSwaggerRoutes(e)
	}
}

// systemRouteMethods HEAD는 GET과 같은 상태 코드와 헤더로 응답합니다.
var systemRouteMethods = []string{http.MethodGet, http.MethodHead}

func registerSystemRoutes(e *echo.Echo, h *system.Handler) {
	e.Match(systemRouteMethods, constants.PathVersion, h.VersionHandler)
	e.Match(systemRouteMethods, constants.PathHealth, h.HealthCheckHandler, appmiddleware.NoCache())
}

func registerSwaggerRoutes(e *echo.Echo) {
	e.GET(constants.PathSwagger, echoSwagger.EchoWrapHandler(
		echoSwagger.URL("/swagger/doc.json"),
		echoSwagger.DeepLinking(true),
		// 태그 목록만 펼친 상태로 표시 ("list", "full", "none")
		echoSwagger.DocExpansion("list"),
	))
}
