// Package testutil 통합 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// FreePort 현재 사용 가능한 임의의 TCP 포트를 반환합니다.
func FreePort() (int, error) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForPort 지정된 포트가 연결을 수락할 때까지 최대 timeout 동안 대기합니다.
func WaitForPort(port int, timeout time.Duration) error {
	addr := net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
	deadline := time.Now().Add(timeout)

	for {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err == nil {
			_ = conn.Close()
			return nil
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("포트 %d가 %v 내에 열리지 않았습니다: %w", port, timeout, err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
