// Package errors 애플리케이션 공통 에러 타입을 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, Wrap 계열 함수로 원인 에러를 감싸 컨텍스트를 누적합니다.
// HTTP 응답 코드나 로그 레벨을 결정할 때는 UnderlyingType으로 체인 가장 안쪽의 분류를 확인합니다.
//
//	err := errors.New(errors.InvalidInput, "이메일 형식이 올바르지 않습니다")
//	err = errors.Wrap(err, errors.Internal, "문의 처리 실패")
//	errors.Is(err, errors.InvalidInput) // true
//	errors.UnderlyingType(err)          // InvalidInput
//
// 문의 처리에서는 InvalidInput이 400, ExecutionFailed와 Timeout이 500 응답으로 이어지고,
// 홈랩 수집기에서는 명령 실행 실패가 ExecutionFailed, 제한 시간 초과가 Timeout으로 분류됩니다.
package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// AppError 분류(ErrorType), 메시지, 원인 에러, 생성 시점의 호출 스택을 함께 담습니다.
type AppError struct {
	errType ErrorType
	message string
	cause   error
	stack   []StackFrame
}

func newAppError(errType ErrorType, message string, cause error, stack []StackFrame) *AppError {
	return &AppError{errType: errType, message: message, cause: cause, stack: stack}
}

func (e *AppError) Type() ErrorType { return e.errType }

// Message 원인 에러를 제외한 이 단계의 메시지만 반환합니다.
func (e *AppError) Message() string { return e.message }

func (e *AppError) Stack() []StackFrame { return e.stack }

func (e *AppError) Unwrap() error { return e.cause }

func (e *AppError) Error() string {
	head := "[" + e.errType.String() + "] " + e.message
	if e.cause == nil {
		return head
	}
	return head + ": " + e.cause.Error()
}

// Format %+v는 분류와 메시지, 스택, 원인 체인을 여러 줄로 출력합니다.
// %v와 %s는 Error(), %q는 따옴표로 감싼 Error()를 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch {
	case verb == 'v' && s.Flag('+'):
		e.formatVerbose(s)
	case verb == 'v' || verb == 's':
		_, _ = io.WriteString(s, e.Error())
	case verb == 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

func (e *AppError) formatVerbose(s fmt.State) {
	fmt.Fprintf(s, "[%s] %s", e.errType, e.message)

	// 스택은 체인의 가장 안쪽 AppError(또는 외부 에러와 맞닿은 AppError)에서 한 번만 출력합니다.
	var inner *AppError
	if e.cause == nil || !errors.As(e.cause, &inner) {
		writeStack(s, e.stack)
	}

	if e.cause == nil {
		return
	}
	fmt.Fprint(s, "\nCaused by:\n")
	if f, ok := e.cause.(fmt.Formatter); ok {
		f.Format(s, 'v')
		return
	}
	fmt.Fprintf(s, "\t%v", e.cause)
}

func writeStack(w io.Writer, stack []StackFrame) {
	if len(stack) == 0 {
		return
	}
	fmt.Fprint(w, "\nStack trace:")
	for _, frame := range stack {
		fn := frame.Function
		if idx := strings.LastIndex(fn, "/"); idx != -1 {
			fn = fn[idx+1:]
		}
		fmt.Fprintf(w, "\n\t%s:%d %s", frame.File, frame.Line, fn)
	}
}

// New 원인 에러 없이 새 AppError를 만듭니다.
func New(errType ErrorType, message string) error {
	return newAppError(errType, message, nil, captureStack(defaultCallerSkip))
}

func Newf(errType ErrorType, format string, args ...any) error {
	return newAppError(errType, fmt.Sprintf(format, args...), nil, captureStack(defaultCallerSkip))
}

// Wrap err를 원인으로 하는 AppError를 만듭니다. err가 nil이면 nil을 반환하므로
// `return errors.Wrap(store.Close(), ...)` 형태로 그대로 쓸 수 있습니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, message, err, captureStack(defaultCallerSkip))
}

func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return newAppError(errType, fmt.Sprintf(format, args...), err, captureStack(defaultCallerSkip))
}

// Is 체인 어딘가에 errType으로 분류된 AppError가 있으면 true입니다.
// 센티널 에러 비교는 표준 errors.Is를 사용합니다.
func Is(err error, errType ErrorType) bool {
	found := false
	walk(err, func(e *AppError) bool {
		found = e.errType == errType
		return !found
	})
	return found
}

// As 표준 errors.As와 같습니다.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// RootCause 체인을 끝까지 풀어낸 가장 안쪽 에러를 반환합니다.
func RootCause(err error) error {
	for err != nil {
		next := errors.Unwrap(err)
		if next == nil {
			break
		}
		err = next
	}
	return err
}

// UnderlyingType 체인의 가장 안쪽 AppError 분류를 반환합니다. AppError가 없으면 Unknown입니다.
// 메일 발송이 Timeout으로 실패한 뒤 상위에서 Internal로 감싸도 Timeout이 반환됩니다.
func UnderlyingType(err error) ErrorType {
	last := Unknown
	walk(err, func(e *AppError) bool {
		last = e.errType
		return true
	})
	return last
}

// walk 체인을 바깥에서 안쪽 순서로 따라가며 AppError마다 visit을 호출합니다. visit이 false를 반환하면 멈춥니다.
func walk(err error, visit func(*AppError) bool) {
	for ; err != nil; err = errors.Unwrap(err) {
		if e, ok := err.(*AppError); ok && !visit(e) {
			return
		}
	}
}
