package middleware

import (
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

// stackBufferSize 패닉 스택 트레이스 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 이후 체인에서 발생한 패닉을 복구하고 로깅한 뒤 전역 에러 핸들러로 전달하는 미들웨어를 반환합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				if r == http.ErrAbortHandler {
					panic(r)
				}

				stack := make([]byte, stackBufferSize)
				stack = stack[:runtime.Stack(stack, false)]

				fields := applog.Fields{
					"panic": r,
					"stack": string(stack),
				}
				if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
					fields["request_id"] = id
				}
				applog.WithComponentAndFields(constants.ComponentMiddleware, fields).Error(constants.LogMsgPanicRecovered)

				c.Error(newErrPanicRecovered(r))
				err = nil
			}()

			return next(c)
		}
	}
}
