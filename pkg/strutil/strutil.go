// Package strutil 문자열 처리를 위한 유틸리티 함수를 제공합니다.
package strutil

import "strings"

const maskSymbol = "***"

// Mask 토큰, 키 등의 민감 정보를 로그에 남길 수 있도록 마스킹합니다.
//
//   - 빈 문자열: 그대로 반환
//   - 3자 이하: 전체 마스킹 ("***")
//   - 12자 이하: 앞 4자만 노출 ("abcd***")
//   - 그 외: 앞 4자와 뒤 4자만 노출 ("abcd***wxyz")
//
// 멀티바이트 문자가 잘리지 않도록 rune 단위로 처리합니다.
func Mask(s string) string {
	if s == "" {
		return ""
	}

	r := []rune(s)
	switch {
	case len(r) <= 3:
		return maskSymbol
	case len(r) <= 12:
		return string(r[:4]) + maskSymbol
	default:
		return string(r[:4]) + maskSymbol + string(r[len(r)-4:])
	}
}

// EqualFoldAny s가 candidates 중 하나와 대소문자 구분 없이 일치하는지 확인합니다.
func EqualFoldAny(s string, candidates ...string) bool {
	for _, c := range candidates {
		if strings.EqualFold(s, c) {
			return true
		}
	}
	return false
}
