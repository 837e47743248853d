package contact

import (
	"errors"
	"fmt"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
)

// 검증 단계 에러입니다. 메시지는 그대로 사용자에게 응답됩니다.
var (
	ErrInvalidBody  = apperrors.New(apperrors.ParsingFailed, "Invalid request body")
	ErrMissingField = apperrors.New(apperrors.InvalidInput, "Missing required fields")
	ErrInvalidEmail = apperrors.New(apperrors.InvalidInput, "Invalid email format")
)

// 부수 효과 단계 에러입니다. StepError의 errors.Is 비교 대상으로 사용됩니다.
var (
	ErrLoggingFailed      = errors.New("row logging failed")
	ErrNotificationFailed = errors.New("owner notification failed")
	ErrAutoReplyFailed    = errors.New("auto-reply failed")
)

// Step 파이프라인의 부수 효과 단계입니다.
type Step int

const (
	StepLog Step = iota
	StepNotify
	StepAutoReply
)

func (s Step) String() string {
	switch s {
	case StepLog:
		return "row_log"
	case StepNotify:
		return "notify"
	case StepAutoReply:
		return "auto_reply"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

func (s Step) sentinel() error {
	switch s {
	case StepLog:
		return ErrLoggingFailed
	case StepNotify:
		return ErrNotificationFailed
	case StepAutoReply:
		return ErrAutoReplyFailed
	}
	return nil
}

// StepError 부수 효과 단계의 실패입니다. Cause는 전송 계층이나 저장소가 반환한 원래 에러입니다.
//
//	errors.Is(err, contact.ErrNotificationFailed) // 단계 판별
//	errors.Is(err, context.DeadlineExceeded)      // 원인 판별
type StepError struct {
	Step  Step
	Cause error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%v: %v", e.Step.sentinel(), e.Cause)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

func (e *StepError) Is(target error) bool {
	return target != nil && target == e.Step.sentinel()
}

// detail 사용자 응답에 붙일 원인 설명입니다. 래핑된 컨텍스트 없이 가장 안쪽 에러만 사용합니다.
func (e *StepError) detail() string {
	return apperrors.RootCause(e.Cause).Error()
}
