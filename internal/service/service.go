// Package service 애플리케이션을 구성하는 장기 실행 서비스의 공통 인터페이스를 정의합니다.
package service

import (
	"context"
	"sync"
)

// Service 시작과 종료를 main에서 일괄 관리하는 서비스입니다.
type Service interface {
	// Start 서비스를 백그라운드에서 시작하고 즉시 반환합니다.
	// ctx가 취소되면 서비스를 종료하고, 종료가 끝나면 wg.Done()을 호출합니다.
	// 호출자는 Start 호출 전에 wg.Add(1)을 수행해야 합니다.
	Start(ctx context.Context, wg *sync.WaitGroup) error

	// Health 서비스가 요청을 처리할 수 있는 상태이면 nil을 반환합니다.
	Health() error
}
