// Package mail SMTP 서버를 통해 contract.Email을 발송합니다.
package mail

import (
	"context"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/ajgr33nboy/servin/pkg/strutil"
	gomail "github.com/wneessen/go-mail"
)

const component = "mail.smtp"

// dialSender 실제 SMTP 연결을 담당하는 go-mail 클라이언트의 부분 집합입니다.
type dialSender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// SMTPTransport go-mail 클라이언트 기반의 contract.EmailTransport 구현체입니다.
// 발송할 때마다 연결을 새로 맺으므로 동시에 호출해도 안전합니다.
type SMTPTransport struct {
	client dialSender

	fromAddress string
	fromName    string
}

var _ contract.EmailTransport = (*SMTPTransport)(nil)

// NewSMTPTransport 메일 설정으로 SMTPTransport를 생성합니다. 이 시점에는 서버에 연결하지 않습니다.
func NewSMTPTransport(cfg config.MailConfig) (*SMTPTransport, error) {
	client, err := gomail.NewClient(cfg.Host, clientOptions(cfg)...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "SMTP 클라이언트를 생성할 수 없습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"host":       cfg.Host,
		"port":       cfg.Port,
		"tls_policy": cfg.TLSPolicy,
		"ssl":        cfg.SSL,
		"auth":       cfg.Username != "",
	}).Debug("SMTP 클라이언트 생성 완료")

	return &SMTPTransport{
		client:      client,
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
	}, nil
}

func clientOptions(cfg config.MailConfig) []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(tlsPolicyOf(cfg.TLSPolicy)),
	}
	if cfg.SSL {
		opts = append(opts, gomail.WithSSL())
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	return opts
}

func tlsPolicyOf(policy string) gomail.TLSPolicy {
	switch policy {
	case config.TLSPolicyOpportunistic:
		return gomail.TLSOpportunistic
	case config.TLSPolicyNone:
		return gomail.NoTLS
	default:
		return gomail.TLSMandatory
	}
}

// Send 메일 1건을 발송합니다. ctx가 취소되거나 만료되면 연결을 중단하고 에러를 반환합니다.
func (t *SMTPTransport) Send(ctx context.Context, email contract.Email) error {
	msg, err := t.buildMessage(email)
	if err != nil {
		return err
	}

	if err := t.client.DialAndSendWithContext(ctx, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return apperrors.Wrap(ctxErr, apperrors.Timeout, "메일 발송 제한 시간을 초과했습니다")
		}
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "SMTP 서버로 메일을 발송하지 못했습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"to":      strutil.MaskEmail(email.To),
		"subject": strutil.TruncateRunes(email.Subject, 80),
	}).Info("메일 발송 완료")

	return nil
}

// buildMessage plain 본문과 HTML 대체 본문을 가진 multipart/alternative 메시지를 만듭니다.
func (t *SMTPTransport) buildMessage(email contract.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	fromName := email.DisplayName
	if fromName == "" {
		fromName = t.fromName
	}

	var err error
	if fromName != "" {
		err = msg.FromFormat(fromName, t.fromAddress)
	} else {
		err = msg.From(t.fromAddress)
	}
	if err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "발신 주소가 올바르지 않습니다 (from: %s)", t.fromAddress)
	}

	if err := msg.To(email.To); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "수신 주소가 올바르지 않습니다 (to: %s)", strutil.MaskEmail(email.To))
	}

	// 해석할 수 없는 Reply-To는 생략하고 발송합니다.
	if email.ReplyTo != "" {
		if err := msg.ReplyTo(email.ReplyTo); err != nil {
			applog.WithComponentAndFields(component, applog.Fields{
				"reply_to": strutil.MaskEmail(email.ReplyTo),
				"error":    err,
			}).Warn("회신 주소를 해석할 수 없어 Reply-To 헤더 없이 발송합니다")
		}
	}

	msg.Subject(email.Subject)
	msg.SetMessageID()
	msg.SetDate()
	msg.SetBodyString(gomail.TypeTextPlain, email.PlainBody)
	if email.HTMLBody != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, email.HTMLBody)
	}

	return msg, nil
}
