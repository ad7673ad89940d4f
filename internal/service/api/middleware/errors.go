package middleware

import (
	"fmt"

	apperrors "github.com/melontron/cloud-engineering-deep-dive/internal/pkg/errors"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/constants"
	"github.com/melontron/cloud-engineering-deep-dive/internal/service/api/httputil"
)

// ErrRateLimitExceeded 허용된 요청 빈도를 초과했을 때 반환하는 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// newErrPanicRecovered 복구된 패닉 값을 Internal 에러로 변환합니다.
func newErrPanicRecovered(r any) error {
	if err, ok := r.(error); ok {
		return apperrors.Wrap(err, apperrors.Internal, "요청 처리 중 패닉이 발생했습니다")
	}
	return apperrors.New(apperrors.Internal, fmt.Sprintf("요청 처리 중 패닉이 발생했습니다: %v", r))
}
