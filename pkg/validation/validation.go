// Package validation 설정값 검증에 사용하는 형식 검사 함수를 제공합니다.
package validation

import (
	"fmt"
	"net"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// hostnameLabelRegex RFC 1123 호스트명 레이블 (영문/숫자/하이픈, 하이픈으로 시작하거나 끝날 수 없음, 최대 63자)
var hostnameLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?$`)

// ValidatePort 포트 번호가 1-65535 범위 내에 있는지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname 호스트명이 localhost, IP 주소, 또는 RFC 1123 형식의 도메인명인지 검증합니다.
func ValidateHostname(host string) error {
	if host == "localhost" || net.ParseIP(host) != nil {
		return nil
	}

	if host == "" || len(host) > 253 {
		return fmt.Errorf("호스트명 길이는 1-253자여야 합니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if !hostnameLabelRegex.MatchString(label) {
			return fmt.Errorf("호스트명 레이블 형식이 올바르지 않습니다 (label=%q, host=%q)", label, host)
		}
	}

	// 최상위 도메인은 숫자로만 구성될 수 없다.
	if _, err := strconv.Atoi(labels[len(labels)-1]); err == nil {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (host=%q)", host)
	}

	return nil
}

// ValidateCORSOrigin 문자열이 'Scheme://Host[:Port]' 형식의 CORS Origin인지 검증합니다.
//
// 와일드카드('*')는 유효합니다. 스키마는 http/https만 허용하며,
// 경로, 후행 슬래시, 쿼리, 프래그먼트, 사용자 정보를 포함할 수 없습니다.
func ValidateCORSOrigin(origin string) error {
	origin = strings.TrimSpace(origin)
	if origin == "*" {
		return nil
	}
	if origin == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}

	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("CORS Origin 파싱 실패 (input=%q): %w", origin, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 'http' 또는 'https'만 허용됩니다 (input=%q)", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || u.User != nil || u.Opaque != "" {
		return fmt.Errorf("CORS Origin은 Scheme://Host[:Port] 형식이어야 합니다 (input=%q)", origin)
	}

	if p := u.Port(); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 번호가 유효하지 않습니다 (input=%q)", origin)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w", err)
		}
	}

	if err := ValidateHostname(u.Hostname()); err != nil {
		return fmt.Errorf("CORS Origin 호스트 오류: %w", err)
	}

	return nil
}
