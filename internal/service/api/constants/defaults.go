package constants

import "time"

// HTTP 서버 타임아웃 기본값입니다.
const (
	// DefaultReadTimeout 요청 전체(헤더+본문) 읽기 제한
	DefaultReadTimeout = 15 * time.Second

	// DefaultReadHeaderTimeout 요청 헤더 읽기 제한 (Slowloris 대응)
	DefaultReadHeaderTimeout = 10 * time.Second

	// DefaultWriteTimeout 응답 쓰기 제한
	DefaultWriteTimeout = 65 * time.Second

	// DefaultIdleTimeout Keep-Alive 유휴 연결 유지 시간
	DefaultIdleTimeout = 120 * time.Second

	// DefaultRequestTimeout 핸들러 처리 시간 제한. 초과 시 503을 반환합니다.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultShutdownTimeout Graceful Shutdown 최대 대기 시간
	DefaultShutdownTimeout = 5 * time.Second
)

// RetryAfterSeconds 429 응답의 Retry-After 헤더 값입니다.
const RetryAfterSeconds = "1"
