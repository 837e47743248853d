package contact

import (
	"context"
	"time"

	"github.com/ajgr33nboy/servin/internal/service/contract"
)

// rowLogger 정제된 문의를 행 저장소에 한 줄 추가합니다. 저장소가 없으면 아무것도 하지 않습니다.
type rowLogger struct {
	store   contract.RowStore
	timeout time.Duration
}

func (l *rowLogger) enabled() bool {
	return l.store != nil
}

func (l *rowLogger) log(ctx context.Context, s Submission) Outcome {
	if !l.enabled() {
		return skipped(StepLog)
	}

	ctx, cancel := withTimeout(ctx, l.timeout)
	defer cancel()

	return completed(StepLog, l.store.AppendRow(ctx, rowOf(s)))
}

func rowOf(s Submission) contract.Row {
	return contract.Row{
		Timestamp: s.Timestamp,
		Name:      s.Name,
		Email:     s.Email,
		Message:   s.Message,
		Status:    contract.RowStatusUnread,
		Source:    s.Source,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
