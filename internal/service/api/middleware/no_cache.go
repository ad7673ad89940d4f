package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
)

// NoCache 클라이언트와 중간 프록시가 응답을 캐시하지 않도록 헤더를 설정하는 미들웨어를 반환합니다.
//
//	Cache-Control: no-cache, no-store, must-revalidate
//	Pragma: no-cache
//	Expires: 0
func NoCache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderCacheControl, constants.NoCacheControl)
			h.Set(constants.HeaderPragma, constants.NoCachePragma)
			h.Set(constants.HeaderExpires, constants.NoCacheExpires)
			return next(c)
		}
	}
}
