// Package httputil API 응답 작성 및 전역 에러 처리를 위한 헬퍼를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/model/response"
	applog "github.com/melontron/cloud-engineering-deep-dive/pkg/log"
)

// ErrorHandler Echo의 전역 에러 핸들러입니다.
//
// 모든 에러를 ErrorResponse JSON으로 변환하여 응답합니다.
// 5xx는 Error, 4xx는 Warn 레벨로 기록합니다. 로그의 error_type은 에러 체인의 가장 안쪽 AppError 타입이며,
// 감싸진 원인이 있으면 cause에 가장 안쪽 에러를 함께 남깁니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolve(err)

	fields := applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"error_type":  apperrors.UnderlyingType(err).String(),
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	}
	if errors.Unwrap(err) != nil {
		fields["cause"] = apperrors.RootCause(err).Error()
	}

	switch {
	case code >= http.StatusInternalServerError:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Error(constants.LogMsgHTTP5xxServerError)
	case code >= http.StatusBadRequest:
		applog.WithComponentAndFields(constants.ComponentErrorHandler, fields).Warn(constants.LogMsgHTTP4xxClientError)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = WriteJSON(c, code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolve 에러로부터 상태 코드와 클라이언트 메시지를 결정합니다.
func resolve(err error) (int, string) {
	var he *echo.HTTPError
	if !errors.As(err, &he) {
		return http.StatusInternalServerError, constants.ErrMsgInternalServer
	}

	code := he.Code
	switch code {
	case http.StatusNotFound:
		return code, constants.ErrMsgNotFound
	case http.StatusMethodNotAllowed:
		return code, constants.ErrMsgMethodNotAllowed
	}

	switch m := he.Message.(type) {
	case response.ErrorResponse:
		return code, m.Message
	case string:
		return code, m
	}

	if text := http.StatusText(code); text != "" {
		return code, text
	}
	return code, constants.ErrMsgInternalServer
}
