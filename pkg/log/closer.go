package log

import (
	"errors"
	"io"
	"sync/atomic"
)

// closer Setup()이 생성한 로그 파일들과 Hook의 리소스 해제를 통합 관리합니다.
//
// Close()는 여러 번 호출해도 안전하며, 일부 파일 닫기에 실패하더라도 나머지 파일을 모두 닫습니다.
type closer struct {
	closers []io.Closer

	hook *hook

	closed atomic.Bool
}

func (c *closer) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}

	// 파일을 닫기 전에 Hook을 먼저 닫아 닫힌 파일로의 쓰기를 차단한다.
	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}

		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}

		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
