package contact

import (
	"context"
	"time"

	"github.com/ajgr33nboy/servin/internal/service/contract"
)

// autoResponder 문의자에게 접수 확인 메일을 보냅니다.
type autoResponder struct {
	transport contract.EmailTransport
	enabled   bool
	profile   Profile
	timeout   time.Duration
}

func (r *autoResponder) reply(ctx context.Context, s Submission) Outcome {
	if !r.enabled {
		return skipped(StepAutoReply)
	}

	email, err := renderAutoReply(r.profile, s)
	if err != nil {
		return completed(StepAutoReply, err)
	}

	ctx, cancel := withTimeout(ctx, r.timeout)
	defer cancel()

	return completed(StepAutoReply, r.transport.Send(ctx, email))
}
