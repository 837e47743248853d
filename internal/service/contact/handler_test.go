package contact

import (
	"context"
	"encoding/json"
	"errors"
	netmail "net/mail"
	"sync"
	"testing"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/ajgr33nboy/servin/internal/service/contract/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const ownerEmail = "owner@example.com"

func testContactConfig() config.ContactConfig {
	return config.ContactConfig{
		RecipientEmail:   ownerEmail,
		OwnerName:        "Alex Green",
		AutoReplyEnabled: true,
		WebsiteURL:       "https://alex.example.com",
		GitHubURL:        "https://github.com/alex",
		LinkedInURL:      "https://linkedin.com/in/alex",
		SendTimeout:      time.Second,
	}
}

func toOwner(e contract.Email) bool     { return e.To == ownerEmail }
func toSubmitter(e contract.Email) bool { return e.To != ownerEmail }

func newTestHandler(cfg config.ContactConfig, transport contract.EmailTransport, store contract.RowStore, opts ...Option) *Handler {
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(cfg, transport, store, opts...)
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func TestHandle_Success(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.Anything).Return(nil)

	store := &mocks.MockRowStore{}
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(testContactConfig(), transport, store)

	res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
	require.NoError(t, err)
	assert.Equal(t, Result{Success: true, Message: MessageSent, Timestamp: fixedNow}, res)

	// 행 기록
	store.AssertNumberOfCalls(t, "AppendRow", 1)
	row := store.Calls[0].Arguments.Get(1).(contract.Row)
	assert.Equal(t, []any{fixedNow, "Jane Doe", "jane@example.com", "Hi!", "Unread", "portfolio"}, row.Cells())

	// 운영자 알림
	owner := transport.SentTo(ownerEmail)
	require.Len(t, owner, 1)
	assert.Equal(t, "New contact form submission from Jane Doe", owner[0].Subject)
	assert.Equal(t, "jane@example.com", owner[0].ReplyTo)
	assert.Contains(t, owner[0].PlainBody, "Hi!")
	assert.Contains(t, owner[0].PlainBody, "portfolio")

	// 자동 응답
	reply := transport.SentTo("jane@example.com")
	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].PlainBody, "Hi Jane,")
	assert.Contains(t, reply[0].PlainBody, "Alex Green")
	assert.Equal(t, "Alex Green", reply[0].DisplayName)

	// 알림이 자동 응답보다 먼저 발송되어야 합니다.
	require.Len(t, transport.Calls, 2)
	assert.Equal(t, ownerEmail, transport.Calls[0].Arguments.Get(1).(contract.Email).To)
}

func TestHandle_ValidationFailureHasNoSideEffects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        []byte
		wantErr     error
		wantMessage string
	}{
		{name: "실패: 이메일 누락", body: []byte(`{"name":"Jane","message":"Hi!"}`), wantErr: ErrMissingField, wantMessage: "Missing required fields: email"},
		{name: "실패: 이메일 형식 오류", body: []byte(`{"name":"Jane","email":"not-an-email","message":"Hi!"}`), wantErr: ErrInvalidEmail, wantMessage: "Invalid email format"},
		{name: "실패: JSON 아님", body: []byte(`name=Jane`), wantErr: ErrInvalidBody, wantMessage: "Invalid request body"},
		{name: "실패: JSON 배열", body: []byte(`[1,2,3]`), wantErr: ErrInvalidBody, wantMessage: "Invalid request body"},
		{name: "실패: JSON null", body: []byte(`null`), wantErr: ErrInvalidBody, wantMessage: "Invalid request body"},
		{name: "실패: 빈 본문", body: nil, wantErr: ErrInvalidBody, wantMessage: "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			transport := &mocks.MockEmailTransport{}
			store := &mocks.MockRowStore{}
			h := newTestHandler(testContactConfig(), transport, store)

			res, err := h.Handle(context.Background(), tt.body)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsValidationError(err))
			assert.False(t, res.Success)
			assert.Equal(t, tt.wantMessage, res.Message)

			transport.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "AppendRow", mock.Anything, mock.Anything)
		})
	}
}

func TestHandle_NotificationFailure(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.MatchedBy(toOwner)).Return(errors.New("smtp: 550 mailbox unavailable"))

	store := &mocks.MockRowStore{}
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(testContactConfig(), transport, store)

	res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.False(t, IsValidationError(err))

	assert.False(t, res.Success)
	assert.Equal(t, "Server error: smtp: 550 mailbox unavailable", res.Message)

	// 이미 기록된 행은 되돌리지 않고, 자동 응답은 보내지 않습니다.
	store.AssertNumberOfCalls(t, "AppendRow", 1)
	assert.Empty(t, transport.SentTo("jane@example.com"))
}

func TestHandle_RowStoreFailureIsIgnored(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.Anything).Return(nil)

	store := &mocks.MockRowStore{}
	store.On("AppendRow", mock.Anything, mock.Anything).Return(errors.New("quota exceeded"))

	h := newTestHandler(testContactConfig(), transport, store)

	res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Len(t, transport.SentTo(ownerEmail), 1)
	assert.Len(t, transport.SentTo("jane@example.com"), 1)
}

func TestHandle_AutoReplyFailureIsIgnored(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.MatchedBy(toOwner)).Return(nil)
	transport.On("Send", mock.Anything, mock.MatchedBy(toSubmitter)).Return(errors.New("recipient rejected"))

	h := newTestHandler(testContactConfig(), transport, nil)

	res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
	require.NoError(t, err)
	assert.Equal(t, MessageSent, res.Message)
	transport.AssertNumberOfCalls(t, "Send", 2)
}

func TestHandle_OptionalStepsDisabled(t *testing.T) {
	t.Parallel()

	cfg := testContactConfig()
	cfg.AutoReplyEnabled = false

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.MatchedBy(toOwner)).Return(nil)

	h := newTestHandler(cfg, transport, nil)
	assert.False(t, h.RowLoggingEnabled())
	assert.False(t, h.AutoReplyEnabled())

	res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
	require.NoError(t, err)
	assert.True(t, res.Success)
	transport.AssertNumberOfCalls(t, "Send", 1)
}

func TestHandle_Timeouts(t *testing.T) {
	t.Parallel()

	blockUntilDone := func(args mock.Arguments) {
		<-args.Get(0).(context.Context).Done()
	}

	t.Run("실패: 알림 시간 초과는 알림 실패", func(t *testing.T) {
		t.Parallel()

		cfg := testContactConfig()
		cfg.SendTimeout = 20 * time.Millisecond

		transport := &mocks.MockEmailTransport{}
		transport.On("Send", mock.Anything, mock.MatchedBy(toOwner)).Run(blockUntilDone).Return(context.DeadlineExceeded)

		h := newTestHandler(cfg, transport, nil)

		res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
		assert.ErrorIs(t, err, ErrNotificationFailed)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, "Server error: context deadline exceeded", res.Message)
	})

	t.Run("성공: 행 기록 시간 초과는 무시", func(t *testing.T) {
		t.Parallel()

		transport := &mocks.MockEmailTransport{}
		transport.On("Send", mock.Anything, mock.Anything).Return(nil)

		store := &mocks.MockRowStore{}
		store.On("AppendRow", mock.Anything, mock.Anything).Run(blockUntilDone).Return(context.DeadlineExceeded)

		h := newTestHandler(testContactConfig(), transport, store, WithRowStoreTimeout(20*time.Millisecond))

		res, err := h.Handle(context.Background(), mustJSON(t, janeDoe()))
		require.NoError(t, err)
		assert.True(t, res.Success)
	})
}

func TestHandle_SanitizedValuesReachCollaborators(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.Anything).Return(nil)

	store := &mocks.MockRowStore{}
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(testContactConfig(), transport, store)

	body := mustJSON(t, map[string]any{
		"name":    "<script>alert('x')</script>",
		"email":   "jane@example.com",
		"message": `He said "hi"`,
	})

	res, err := h.Handle(context.Background(), body)
	require.NoError(t, err)
	require.True(t, res.Success)

	row := store.Calls[0].Arguments.Get(1).(contract.Row)
	assert.Equal(t, "&lt;script&gt;alert(&#x27;x&#x27;)&lt;/script&gt;", row.Name)
	assert.Equal(t, "He said &quot;hi&quot;", row.Message)
	assert.Equal(t, DefaultSource, row.Source)

	for _, call := range transport.Calls {
		e := call.Arguments.Get(1).(contract.Email)
		assert.NotContains(t, e.HTMLBody, "<script>")
		assert.NotContains(t, e.Subject, "<script>")
	}
}

func TestHandle_ApostropheEmailIsDeliverable(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.Anything).Return(nil)

	store := &mocks.MockRowStore{}
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(testContactConfig(), transport, store)

	body := mustJSON(t, map[string]any{
		"name":    "Pat O'Brien",
		"email":   "o'brien@example.com",
		"message": "hi",
	})

	res, err := h.Handle(context.Background(), body)
	require.NoError(t, err)
	assert.True(t, res.Success)

	// 행 기록에는 정제된 값이 그대로 남습니다.
	row := store.Calls[0].Arguments.Get(1).(contract.Row)
	assert.Equal(t, "o&#x27;brien@example.com", row.Email)

	owner := transport.SentTo(ownerEmail)
	require.Len(t, owner, 1)
	assert.Equal(t, "o'brien@example.com", owner[0].ReplyTo)
	_, err = netmail.ParseAddress(owner[0].ReplyTo)
	assert.NoError(t, err)

	reply := transport.SentTo("o'brien@example.com")
	require.Len(t, reply, 1)
	assert.Contains(t, reply[0].PlainBody, "Hi Pat,")
}

func TestHandle_Concurrent(t *testing.T) {
	t.Parallel()

	transport := &mocks.MockEmailTransport{}
	transport.On("Send", mock.Anything, mock.Anything).Return(nil)

	store := &mocks.MockRowStore{}
	store.On("AppendRow", mock.Anything, mock.Anything).Return(nil)

	h := newTestHandler(testContactConfig(), transport, store)
	body := mustJSON(t, janeDoe())

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := h.Handle(context.Background(), body)
			assert.NoError(t, err)
			assert.True(t, res.Success)
		}()
	}
	wg.Wait()

	store.AssertNumberOfCalls(t, "AppendRow", n)
	transport.AssertNumberOfCalls(t, "Send", 2*n)
}

func TestProbe(t *testing.T) {
	t.Parallel()

	h := newTestHandler(testContactConfig(), &mocks.MockEmailTransport{}, nil)

	assert.Equal(t, ProbeResult{Status: "ok", Message: ProbeMessage, Timestamp: fixedNow}, h.Probe())
}

func TestStepError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := error(&StepError{Step: StepAutoReply, Cause: cause})

	assert.ErrorIs(t, err, ErrAutoReplyFailed)
	assert.NotErrorIs(t, err, ErrNotificationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "auto-reply failed: boom", err.Error())
	assert.Equal(t, "auto_reply", StepAutoReply.String())
}
