// Package middleware API 서버에서 사용하는 Echo 미들웨어를 제공합니다.
//
//   - PanicRecovery: 핸들러 패닉 복구 및 스택 트레이스 로깅
//   - HTTPLogger: 요청/응답 구조화 로깅 (민감한 쿼리 파라미터 마스킹)
//   - RateLimiting: IP별 요청 속도 제한
//   - NoCache: 캐시 금지 응답 헤더 설정
//   - Logger: Echo 내부 로그를 애플리케이션 로거로 연결하는 어댑터
package middleware
