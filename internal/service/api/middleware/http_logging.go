package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
	"github.com/melontron/cloud-engineering-deep-dive/pkg/strutil"
)

// HTTPLogger 요청마다 한 줄의 구조화된 로그를 남기는 미들웨어를 반환합니다.
//
// 이후 체인에서 반환된 에러는 여기서 c.Error로 처리하므로 로그의 status는 최종 응답 코드입니다.
// 민감한 쿼리 파라미터(constants.SensitiveQueryParams)는 마스킹되어 기록됩니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			defer func() {
				req := c.Request()
				res := c.Response()
				latency := time.Since(start)

				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = "0"
				}

				applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
					"method":        req.Method,
					"uri":           maskSensitiveQueryParams(req.RequestURI),
					"path":          req.URL.Path,
					"host":          req.Host,
					"protocol":      req.Proto,
					"remote_ip":     c.RealIP(),
					"user_agent":    req.UserAgent(),
					"status":        res.Status,
					"bytes_in":      bytesIn,
					"bytes_out":     strconv.FormatInt(res.Size, 10),
					"latency_us":    latency.Microseconds(),
					"latency_human": latency.String(),
					"request_id":    res.Header().Get(echo.HeaderXRequestID),
				}).Info(constants.LogMsgHTTPRequest)
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱에 실패하거나 마스킹할 파라미터가 없으면 원본을 그대로 반환합니다.
//
//	"/v1?token=abcdefghijklmnop&id=1" -> "/v1?id=1&token=abcd%2A%2A%2Amnop"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil || u.RawQuery == "" {
		return uri
	}

	q := u.Query()
	masked := false
	for key, values := range q {
		if !strutil.EqualFoldAny(key, constants.SensitiveQueryParams...) {
			continue
		}
		for i, v := range values {
			values[i] = strutil.Mask(v)
		}
		masked = true
	}

	if !masked {
		return uri
	}

	u.RawQuery = q.Encode()
	return u.String()
}
