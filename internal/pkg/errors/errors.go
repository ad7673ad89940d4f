// Package errors 타입 기반으로 분류되는 애플리케이션 에러를 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며 Wrap을 통해 컨텍스트를 누적합니다.
//
//	err := errors.New(errors.InvalidInput, "포트 번호가 올바르지 않습니다")
//	return errors.Wrap(err, errors.System, "서버 시작 실패")
//
// %+v로 출력하면 에러 체인과 생성 지점의 스택 트레이스를 함께 보여줍니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 애플리케이션 에러 구조체입니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType { return e.errType }

// Message 에러 메시지를 반환합니다.
func (e *AppError) Message() string { return e.message }

// Stack 에러가 생성된 시점의 스택 트레이스를 반환합니다.
func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error { return e.cause }

// Format fmt.Formatter 인터페이스를 구현합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatVerbose(s)
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) formatVerbose(s fmt.State) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	// 스택은 체인의 끝(AppError가 아닌 원인과의 경계)에서만 출력한다.
	var inner *AppError
	if (e.cause == nil || !errors.As(e.cause, &inner)) && len(e.stack) > 0 {
		fmt.Fprint(s, "\nStack trace:")
		for _, f := range e.stack {
			fn := f.Function
			if idx := strings.LastIndex(fn, "/"); idx != -1 {
				fn = fn[idx+1:]
			}
			fmt.Fprintf(s, "\n\t%s:%d %s", f.File, f.Line, fn)
		}
	}

	if e.cause == nil {
		return
	}

	fmt.Fprint(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
	} else {
		fmt.Fprintf(s, "\t%v", e.cause)
	}
}

func newAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		errType: errType,
		message: message,
		cause:   cause,
		stack:   captureStack(callerSkip),
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil)
}

// Newf 포맷 문자열로 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil)
}

// Wrap 기존 에러를 감싸 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err)
}

// Wrapf 포맷 문자열로 기존 에러를 감쌉니다. err이 nil이면 nil을 반환합니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err)
}

// Is 에러 체인에 errType 타입의 AppError가 포함되어 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// As 표준 errors.As와 동일합니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 에러 체인의 가장 안쪽 원인 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
	return nil
}

// UnderlyingType 에러 체인에서 가장 안쪽에 있는 AppError의 타입을 반환합니다.
// 체인에 AppError가 없으면 Unknown을 반환합니다.
func UnderlyingType(err error) ErrorType {
	t := Unknown
	for err != nil {
		if appErr, ok := err.(*AppError); ok {
			t = appErr.errType
		}
		err = errors.Unwrap(err)
	}
	return t
}
