// Package system 버전 정보와 헬스체크 엔드포인트 핸들러를 제공합니다.
//
// 두 핸들러 모두 요청의 쿼리, 헤더, 본문을 읽지 않으며 항상 200과 고정된 본문을 응답합니다.
package system

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/httputil"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/model/system"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

var (
	versionResponse = system.VersionResponse{
		Version:     constants.APIVersion,
		Description: constants.APIDescription,
	}

	healthResponse = system.HealthResponse{
		Status: constants.HealthStatusOK,
	}
)

// Handler 시스템 엔드포인트 핸들러
type Handler struct{}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler() *Handler {
	return &Handler{}
}

// VersionHandler godoc
// @Summary API 버전 정보
// @Description API 버전과 설명을 반환합니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /v1 [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathVersion,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return httputil.WriteJSON(c, http.StatusOK, versionResponse)
}

// HealthCheckHandler godoc
// @Summary 헬스체크
// @Description 서버가 요청을 처리할 수 있으면 항상 {"status":"ok"}를 반환합니다.
// @Description 응답은 캐시되지 않습니다. (Cache-Control, Pragma, Expires)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Header 200 {string} Cache-Control "no-cache, no-store, must-revalidate"
// @Header 200 {string} Pragma "no-cache"
// @Header 200 {string} Expires "0"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  constants.PathHealth,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	return httputil.WriteJSON(c, http.StatusOK, healthResponse)
}
