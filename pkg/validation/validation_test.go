package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		wantErr bool
	}{
		{name: "와일드카드", origin: "*"},
		{name: "https 도메인", origin: "https://example.com"},
		{name: "http 로컬호스트 + 포트", origin: "http://localhost:3000"},
		{name: "IPv4", origin: "http://192.168.0.1:8080"},
		{name: "IPv6", origin: "http://[::1]:8080"},
		{name: "앞뒤 공백 허용", origin: "  https://example.com  "},
		{name: "빈 문자열", origin: "", wantErr: true},
		{name: "후행 슬래시", origin: "https://example.com/", wantErr: true},
		{name: "경로 포함", origin: "https://example.com/api", wantErr: true},
		{name: "쿼리 포함", origin: "https://example.com?a=1", wantErr: true},
		{name: "프래그먼트 포함", origin: "https://example.com#top", wantErr: true},
		{name: "사용자 정보 포함", origin: "https://user:pw@example.com", wantErr: true},
		{name: "지원하지 않는 스키마", origin: "ftp://example.com", wantErr: true},
		{name: "스키마 누락", origin: "example.com", wantErr: true},
		{name: "포트 범위 초과", origin: "http://localhost:70000", wantErr: true},
		{name: "숫자 TLD", origin: "http://example.123", wantErr: true},
		{name: "하이픈으로 시작하는 레이블", origin: "http://-bad.example.com", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateHostname(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateHostname("localhost"))
	assert.NoError(t, ValidateHostname("api.example.com"))
	assert.NoError(t, ValidateHostname("10.0.0.1"))
	assert.Error(t, ValidateHostname(""))
	assert.Error(t, ValidateHostname("a..b"))
	assert.Error(t, ValidateHostname("under_score.com"))
}
