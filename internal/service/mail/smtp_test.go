package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*gomail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)
	return nil
}

func newTestTransport(sender dialSender) *SMTPTransport {
	return &SMTPTransport{
		client:      sender,
		fromAddress: "noreply@example.com",
		fromName:    "Portfolio Contact",
	}
}

func sampleEmail() contract.Email {
	return contract.Email{
		To:        "owner@example.com",
		Subject:   "New contact form submission from Jane Doe",
		PlainBody: "Name: Jane Doe",
		HTMLBody:  "<p>Name: Jane Doe</p>",
		ReplyTo:   "jane@example.com",
	}
}

func TestNewSMTPTransport(t *testing.T) {
	t.Parallel()

	tr, err := NewSMTPTransport(config.MailConfig{
		Host:        "smtp.example.com",
		Port:        587,
		Username:    "user",
		Password:    "secret",
		FromAddress: "noreply@example.com",
		TLSPolicy:   config.TLSPolicyMandatory,
	})
	require.NoError(t, err)
	require.NotNil(t, tr)

	client, ok := tr.client.(*gomail.Client)
	require.True(t, ok)
	assert.Equal(t, "smtp.example.com:587", client.ServerAddr())
	assert.Equal(t, "TLSMandatory", client.TLSPolicy())
}

func TestTLSPolicyOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, gomail.TLSMandatory, tlsPolicyOf(config.TLSPolicyMandatory))
	assert.Equal(t, gomail.TLSOpportunistic, tlsPolicyOf(config.TLSPolicyOpportunistic))
	assert.Equal(t, gomail.NoTLS, tlsPolicyOf(config.TLSPolicyNone))
	assert.Equal(t, gomail.TLSMandatory, tlsPolicyOf(""))
}

func TestBuildMessage(t *testing.T) {
	t.Parallel()

	t.Run("성공: 헤더와 multipart 본문", func(t *testing.T) {
		t.Parallel()

		msg, err := newTestTransport(&fakeSender{}).buildMessage(sampleEmail())
		require.NoError(t, err)

		assert.Equal(t, []string{"New contact form submission from Jane Doe"}, msg.GetGenHeader(gomail.HeaderSubject))
		assert.Equal(t, []string{"<owner@example.com>"}, msg.GetToString())

		from := msg.GetFromString()
		require.Len(t, from, 1)
		assert.Contains(t, from[0], "Portfolio Contact")
		assert.Contains(t, from[0], "<noreply@example.com>")

		replyTo := msg.GetGenHeader(gomail.HeaderReplyTo)
		require.Len(t, replyTo, 1)
		assert.Contains(t, replyTo[0], "jane@example.com")

		var buf bytes.Buffer
		_, err = msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "multipart/alternative")
		assert.Contains(t, buf.String(), "text/html")
	})

	t.Run("성공: DisplayName이 발신자 이름보다 우선", func(t *testing.T) {
		t.Parallel()

		email := sampleEmail()
		email.DisplayName = "Alex Green"
		email.ReplyTo = ""

		msg, err := newTestTransport(&fakeSender{}).buildMessage(email)
		require.NoError(t, err)

		from := msg.GetFromString()
		require.Len(t, from, 1)
		assert.Contains(t, from[0], "Alex Green")
		assert.Empty(t, msg.GetGenHeader(gomail.HeaderReplyTo))
	})

	t.Run("성공: 작은따옴표가 포함된 회신 주소", func(t *testing.T) {
		t.Parallel()

		email := sampleEmail()
		email.ReplyTo = "o'brien@example.com"

		msg, err := newTestTransport(&fakeSender{}).buildMessage(email)
		require.NoError(t, err)

		replyTo := msg.GetGenHeader(gomail.HeaderReplyTo)
		require.Len(t, replyTo, 1)
		assert.Contains(t, replyTo[0], "o'brien@example.com")
	})

	t.Run("성공: 해석할 수 없는 회신 주소는 헤더 없이 발송", func(t *testing.T) {
		t.Parallel()

		email := sampleEmail()
		email.ReplyTo = "o&#x27;brien@example.com"

		sender := &fakeSender{}
		tr := newTestTransport(sender)

		msg, err := tr.buildMessage(email)
		require.NoError(t, err)
		assert.Empty(t, msg.GetGenHeader(gomail.HeaderReplyTo))

		require.NoError(t, tr.Send(context.Background(), email))
		assert.Len(t, sender.sent, 1)
	})

	t.Run("실패: 잘못된 수신 주소", func(t *testing.T) {
		t.Parallel()

		email := sampleEmail()
		email.To = "not an address"

		_, err := newTestTransport(&fakeSender{}).buildMessage(email)
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	})
}

func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("성공: 발송", func(t *testing.T) {
		t.Parallel()

		sender := &fakeSender{}
		require.NoError(t, newTestTransport(sender).Send(context.Background(), sampleEmail()))
		assert.Len(t, sender.sent, 1)
	})

	t.Run("실패: SMTP 오류는 ExecutionFailed", func(t *testing.T) {
		t.Parallel()

		smtpErr := errors.New("550 mailbox unavailable")
		err := newTestTransport(&fakeSender{err: smtpErr}).Send(context.Background(), sampleEmail())

		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
		assert.ErrorIs(t, err, smtpErr)
	})

	t.Run("실패: 취소된 컨텍스트는 Timeout", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newTestTransport(&fakeSender{}).Send(ctx, sampleEmail())
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.Timeout))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
