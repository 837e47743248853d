package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errPlain = errors.New("smtp: connection refused")

func BenchmarkWrap(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Wrap(errPlain, ExecutionFailed, "메일 발송 실패")
	}
}

func TestNewAndWrap(t *testing.T) {
	t.Parallel()

	t.Run("성공: New는 타입과 메시지를 보존한다", func(t *testing.T) {
		err := New(InvalidInput, "Missing required fields")

		var appErr *AppError
		require.True(t, As(err, &appErr))
		assert.Equal(t, InvalidInput, appErr.Type())
		assert.Equal(t, "Missing required fields", appErr.Message())
		assert.Equal(t, "[InvalidInput] Missing required fields", err.Error())
	})

	t.Run("성공: Newf는 포맷 문자열을 적용한다", func(t *testing.T) {
		err := Newf(NotFound, "%s 항목이 없습니다", "sheet")
		assert.Equal(t, "[NotFound] sheet 항목이 없습니다", err.Error())
	})

	t.Run("성공: Wrap은 원인 에러를 메시지에 포함한다", func(t *testing.T) {
		err := Wrap(errPlain, ExecutionFailed, "메일 발송 실패")
		assert.Equal(t, "[ExecutionFailed] 메일 발송 실패: smtp: connection refused", err.Error())
		assert.ErrorIs(t, err, errPlain)
	})

	t.Run("성공: nil 에러를 감싸면 nil을 반환한다", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, Internal, "무시"))
		assert.NoError(t, Wrapf(nil, Internal, "무시 %d", 1))
	})
}

func TestStackCapture(t *testing.T) {
	t.Parallel()

	err := New(Internal, "stack")
	var appErr *AppError
	require.True(t, As(err, &appErr))
	require.NotEmpty(t, appErr.Stack())
	assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	assert.Contains(t, appErr.Stack()[0].Function, "TestStackCapture")
	assert.LessOrEqual(t, len(appErr.Stack()), maxStackFrames)
}

func TestIsAndUnderlyingType(t *testing.T) {
	t.Parallel()

	inner := New(InvalidInput, "Invalid email format")
	outer := Wrap(inner, Internal, "문의 처리 실패")
	wrappedStd := fmt.Errorf("handler: %w", outer)

	tests := []struct {
		name       string
		err        error
		target     ErrorType
		wantIs     bool
		underlying ErrorType
	}{
		{"성공: 바깥 타입 일치", outer, Internal, true, InvalidInput},
		{"성공: 안쪽 타입 일치", outer, InvalidInput, true, InvalidInput},
		{"성공: 표준 에러로 감싸도 탐색한다", wrappedStd, InvalidInput, true, InvalidInput},
		{"실패: 체인에 없는 타입", outer, Timeout, false, InvalidInput},
		{"실패: AppError가 없는 체인", errPlain, Internal, false, Unknown},
		{"실패: nil 에러", nil, Internal, false, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIs, Is(tt.err, tt.target))
			assert.Equal(t, tt.underlying, UnderlyingType(tt.err))
		})
	}
}

func TestRootCause(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(errPlain, ExecutionFailed, "발송 실패"), Internal, "처리 실패")
	assert.Same(t, errPlain, RootCause(err))
	assert.Nil(t, RootCause(nil))

	single := New(Timeout, "timeout")
	assert.Equal(t, single, RootCause(single))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(errPlain, ExecutionFailed, "메일 발송 실패")

	t.Run("성공: %s와 %v는 Error()와 같다", func(t *testing.T) {
		assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
		assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	})

	t.Run("성공: %q는 인용 부호로 감싼다", func(t *testing.T) {
		assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	})

	t.Run("성공: %+v는 스택과 원인을 출력한다", func(t *testing.T) {
		out := fmt.Sprintf("%+v", err)
		assert.True(t, strings.HasPrefix(out, "[ExecutionFailed] 메일 발송 실패"))
		assert.Contains(t, out, "Stack trace:")
		assert.Contains(t, out, "errors_test.go")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "smtp: connection refused")
	})

	t.Run("성공: 중첩 AppError는 가장 안쪽에서만 스택을 출력한다", func(t *testing.T) {
		nested := Wrap(New(InvalidInput, "inner"), Internal, "outer")
		out := fmt.Sprintf("%+v", nested)
		assert.Equal(t, 1, strings.Count(out, "Stack trace:"))
	})
}

func TestErrorTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Unknown", Unknown.String())
	assert.Equal(t, "InvalidInput", InvalidInput.String())
	assert.Equal(t, "Unavailable", Unavailable.String())
	assert.Equal(t, "ErrorType(99)", ErrorType(99).String())
	assert.Equal(t, "ErrorType(-1)", ErrorType(-1).String())
}
