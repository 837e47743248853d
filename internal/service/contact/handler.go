// Package contact 포트폴리오 사이트 문의 폼의 제출을 처리합니다.
//
// 한 번의 제출은 다음 순서로 처리됩니다.
//
//	본문 파싱 → 검증 및 정제 → 행 기록(선택) → 운영자 알림(필수) → 자동 응답(선택)
//
// 행 기록과 자동 응답의 실패는 로그만 남기고 결과에 반영하지 않습니다.
// 운영자 알림이 실패하면 이미 행이 기록되었더라도 요청은 실패로 응답합니다.
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/ajgr33nboy/servin/pkg/strutil"
)

const (
	component = "contact.handler"

	// MessageSent 처리 성공 시 응답 메시지
	MessageSent = "Message sent successfully"

	// ProbeMessage 상태 확인 응답 메시지
	ProbeMessage = "Contact form API is running"

	serverErrorPrefix = "Server error: "
)

// Result 문의 처리 결과입니다. 그대로 JSON 응답 본문이 됩니다.
type Result struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ProbeResult 상태 확인 결과입니다.
type ProbeResult struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Option Handler 생성 옵션입니다.
type Option func(*Handler)

// WithRowStoreTimeout 행 기록 1건의 제한 시간 (기본값: config.DefaultRowStoreTimeout)
func WithRowStoreTimeout(d time.Duration) Option {
	return func(h *Handler) { h.logger.timeout = d }
}

// WithClock 현재 시각을 반환하는 함수를 교체합니다. (테스트용)
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

// Handler 문의 제출 요청을 처리합니다. 요청 간에 공유하는 가변 상태가 없으므로 동시에 호출해도 안전합니다.
type Handler struct {
	logger    *rowLogger
	notifier  *ownerNotifier
	responder *autoResponder

	now func() time.Time
}

// New Handler를 생성합니다. store가 nil이면 행 기록 단계를 건너뜁니다.
func New(cfg config.ContactConfig, transport contract.EmailTransport, store contract.RowStore, opts ...Option) *Handler {
	h := &Handler{
		logger: &rowLogger{
			store:   store,
			timeout: config.DefaultRowStoreTimeout,
		},
		notifier: &ownerNotifier{
			transport: transport,
			recipient: cfg.RecipientEmail,
			timeout:   cfg.SendTimeout,
		},
		responder: &autoResponder{
			transport: transport,
			enabled:   cfg.AutoReplyEnabled,
			profile: Profile{
				OwnerName:   cfg.OwnerName,
				WebsiteURL:  cfg.WebsiteURL,
				GitHubURL:   cfg.GitHubURL,
				LinkedInURL: cfg.LinkedInURL,
			},
			timeout: cfg.SendTimeout,
		},
		now: time.Now,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

// RowLoggingEnabled 행 저장소가 설정되어 있는지 여부
func (h *Handler) RowLoggingEnabled() bool {
	return h.logger.enabled()
}

// AutoReplyEnabled 자동 응답 사용 여부
func (h *Handler) AutoReplyEnabled() bool {
	return h.responder.enabled
}

// Probe 서비스가 동작 중인지 알려주는 응답을 만듭니다. 부수 효과는 없습니다.
func (h *Handler) Probe() ProbeResult {
	return ProbeResult{
		Status:    "ok",
		Message:   ProbeMessage,
		Timestamp: h.now(),
	}
}

// Handle 요청 본문(JSON 객체)을 받아 문의를 처리합니다.
//
// 반환되는 Result는 성공과 실패 모두 응답 본문으로 사용할 수 있습니다. error는 실패 원인이며
// 검증 실패는 ErrInvalidBody, ErrMissingField, ErrInvalidEmail 중 하나, 운영자 알림 실패는
// ErrNotificationFailed로 판별됩니다.
func (h *Handler) Handle(ctx context.Context, body []byte) (Result, error) {
	now := h.now()

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil || raw == nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"body_bytes": len(body),
		}).Info("요청 본문을 JSON 객체로 해석할 수 없어 거부합니다")

		return h.fail(now, ErrInvalidBody), ErrInvalidBody
	}

	return h.process(ctx, raw, now)
}

func (h *Handler) process(ctx context.Context, raw map[string]any, now time.Time) (Result, error) {
	s, err := Validate(raw, now)
	if err != nil {
		applog.WithComponentAndFields(component, applog.Fields{
			"reason": reasonOf(err),
		}).Info("문의 검증 실패")

		return h.fail(now, err), err
	}

	fields := applog.Fields{
		"email":  strutil.MaskEmail(s.Email),
		"source": s.Source,
	}

	h.record(h.logger.log(ctx, s), fields)

	if err := h.notifier.notify(ctx, s); err != nil {
		applog.WithComponentAndFields(component, fields).WithError(err).Error("운영자 알림 메일 발송 실패")

		return Result{Success: false, Message: serverErrorPrefix + detailOf(err), Timestamp: now}, err
	}

	h.record(h.responder.reply(ctx, s), fields)

	applog.WithComponentAndFields(component, fields).Info("문의 처리 완료")

	return Result{Success: true, Message: MessageSent, Timestamp: now}, nil
}

// record 선택 단계의 결과를 로그로 남깁니다. 실패해도 처리 흐름은 그대로 진행됩니다.
func (h *Handler) record(o Outcome, fields applog.Fields) {
	entry := applog.WithComponentAndFields(component, fields).WithField("step", o.Step.String())

	switch {
	case o.Skipped:
		entry.Debug("비활성화된 단계를 건너뜁니다")
	case o.Err != nil:
		entry.WithError(o.Err).Warn("선택 단계 실패 (응답 결과에는 영향 없음)")
	default:
		entry.Debug("선택 단계 완료")
	}
}

func (h *Handler) fail(now time.Time, err error) Result {
	return Result{Success: false, Message: reasonOf(err), Timestamp: now}
}

// reasonOf 사용자에게 보여줄 실패 사유. 가장 바깥 AppError의 메시지를 사용합니다.
func reasonOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return err.Error()
}

func detailOf(err error) string {
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return stepErr.detail()
	}
	return apperrors.RootCause(err).Error()
}

// IsValidationError 요청 자체가 잘못되어 발생한 에러인지 여부. HTTP 400으로 응답할 대상입니다.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidBody) || errors.Is(err, ErrMissingField) || errors.Is(err, ErrInvalidEmail)
}
