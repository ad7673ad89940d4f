package errors

import (
	"path/filepath"
	"runtime"
)

// callerSkip runtime.Callers, captureStack, newAppError, 공개 생성 함수를 건너뛰어
// 호출자의 위치가 첫 번째 프레임이 되도록 합니다.
const callerSkip = 4

const maxStackFrames = 5

// StackFrame 스택 트레이스의 한 프레임입니다.
type StackFrame struct {
	File     string
	Line     int
	Function string
}

func captureStack(skip int) []StackFrame {
	pc := make([]uintptr, maxStackFrames)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	stack := make([]StackFrame, 0, n)
	for {
		f, more := frames.Next()
		stack = append(stack, StackFrame{
			File:     filepath.Base(f.File),
			Line:     f.Line,
			Function: f.Function,
		})
		if !more {
			break
		}
	}
	return stack
}
