package log

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// hook 로그 레벨에 따라 로그 이벤트를 여러 Writer로 분배하는 logrus Hook입니다.
//
// 라우팅 정책:
//   - consoleWriter: 모든 레벨
//   - criticalWriter: ERROR / FATAL / PANIC
//   - verboseWriter: DEBUG / TRACE (이 레벨은 mainWriter에 기록하지 않음)
//   - mainWriter: INFO / WARN / ERROR / FATAL / PANIC
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	// 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어
	mu sync.RWMutex

	closed bool
}

// Levels 이 Hook이 수신할 로그 레벨의 집합을 반환합니다.
func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 로그 이벤트를 한 번만 포맷팅한 뒤 라우팅 정책에 따라 각 Writer에 기록합니다.
//
// 하나의 Writer에서 쓰기 에러가 발생해도 나머지 Writer에 대한 기록은 계속 시도하며,
// 최초로 발생한 에러를 반환합니다. 콘솔 쓰기 에러는 반환하지 않습니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	if h.consoleWriter != nil {
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력(Console) 쓰기 실패: %v\n", err)
		}
	}

	var firstErr error

	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		if _, err := h.criticalWriter.Write(msg); err != nil {
			firstErr = err
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Critical 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	if entry.Level >= DebugLevel {
		if h.verboseWriter != nil {
			if _, err := h.verboseWriter.Write(msg); err != nil && firstErr == nil {
				firstErr = err
			}
		}

		// 상세 로그는 메인 로그에 남기지 않는다.
		return firstErr
	}

	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Main 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	return firstErr
}

// Close Hook을 종료 상태로 전환합니다. 이후의 Fire 호출은 아무것도 기록하지 않습니다.
func (h *hook) Close() error {
	// 진행 중인 Fire(Read Lock)가 모두 끝날 때까지 대기한다.
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true

	return nil
}
