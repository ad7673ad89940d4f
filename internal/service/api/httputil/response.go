package httputil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/model/response"
)

// newHTTPError ErrorResponse를 메시지로 갖는 echo.HTTPError를 생성합니다.
func newHTTPError(code int, message string) error {
	return echo.NewHTTPError(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// WriteJSON v를 압축된 JSON으로 직렬화하여 그대로 응답합니다.
//
// c.JSON과 달리 디버그 모드나 ?pretty 쿼리에 따라 들여쓰기가 달라지지 않고
// 끝에 개행 문자를 붙이지 않으므로, 응답 본문이 항상 동일한 바이트열이 됩니다.
// HEAD 요청에는 GET과 같은 헤더(Content-Type, Content-Length)만 보내고 본문은 쓰지 않습니다.
func WriteJSON(c echo.Context, code int, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	if c.Request().Method == http.MethodHead {
		h := c.Response().Header()
		h.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		h.Set(echo.HeaderContentLength, strconv.Itoa(len(b)))
		return c.NoContent(code)
	}
	return c.JSONBlob(code, b)
}
