package errors

import "strconv"

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러
	Unknown ErrorType = iota

	// Internal 내부 로직 오류
	Internal

	// System 디스크, 네트워크 소켓 등 시스템 수준의 오류
	System

	// InvalidInput 설정값 등 입력값 검증 실패
	InvalidInput

	// NotFound 리소스(설정 파일 등)를 찾을 수 없음
	NotFound

	// Unavailable 서비스를 일시적으로 사용할 수 없음
	Unavailable
)

var errorTypeNames = [...]string{
	Unknown:      "Unknown",
	Internal:     "Internal",
	System:       "System",
	InvalidInput: "InvalidInput",
	NotFound:     "NotFound",
	Unavailable:  "Unavailable",
}

func (t ErrorType) String() string {
	if t < 0 || int(t) >= len(errorTypeNames) {
		return "ErrorType(" + strconv.Itoa(int(t)) + ")"
	}
	return errorTypeNames[t]
}
