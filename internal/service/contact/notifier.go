package contact

import (
	"context"
	"time"

	"github.com/ajgr33nboy/servin/internal/service/contract"
)

// ownerNotifier 사이트 운영자에게 새 문의 알림 메일을 보냅니다. 이 단계의 실패는 요청 실패입니다.
type ownerNotifier struct {
	transport contract.EmailTransport
	recipient string
	timeout   time.Duration
}

func (n *ownerNotifier) notify(ctx context.Context, s Submission) error {
	email, err := renderOwnerEmail(n.recipient, s)
	if err != nil {
		return &StepError{Step: StepNotify, Cause: err}
	}

	ctx, cancel := withTimeout(ctx, n.timeout)
	defer cancel()

	if err := n.transport.Send(ctx, email); err != nil {
		return &StepError{Step: StepNotify, Cause: err}
	}
	return nil
}
