package homelab

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"github.com/ajgr33nboy/servin/pkg/strutil"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	componentAlert = "homelab.alert"

	telegramHTTPClientTimeout = 30 * time.Second
)

// Transition 서비스 상태 변화 1건입니다.
type Transition struct {
	Name string
	From string
	To   string
}

// StatusTracker 직전 실행의 서비스 상태를 기억하고 healthy에서 벗어난 서비스를 찾아냅니다.
type StatusTracker struct {
	mu       sync.Mutex
	previous map[string]string
}

// NewStatusTracker StatusTracker를 생성합니다.
func NewStatusTracker() *StatusTracker {
	return &StatusTracker{previous: make(map[string]string)}
}

// Observe 이번 실행 결과를 기록하고, 직전에 healthy였다가 지금은 아닌 서비스 목록을 반환합니다.
// 첫 실행에서는 비교 대상이 없으므로 항상 빈 목록입니다.
func (t *StatusTracker) Observe(services []ServiceStatus) []Transition {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []Transition
	current := make(map[string]string, len(services))
	for _, s := range services {
		current[s.Name] = s.Status
		if prev, ok := t.previous[s.Name]; ok && prev == StatusHealthy && s.Status != StatusHealthy {
			out = append(out, Transition{Name: s.Name, From: prev, To: s.Status})
		}
	}
	t.previous = current

	return out
}

// Alerter 서비스 상태 변화를 운영자에게 알립니다.
type Alerter interface {
	Alert(ctx context.Context, transitions []Transition) error
}

// botSender 텔레그램 봇 API 중 메시지 전송만 사용합니다.
type botSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// TelegramAlerter 텔레그램 채팅방으로 상태 변화를 알립니다.
type TelegramAlerter struct {
	bot    botSender
	chatID int64
}

// NewTelegramAlerter 봇 토큰을 검증하고 TelegramAlerter를 생성합니다.
func NewTelegramAlerter(cfg config.TelegramAlertConfig, debug bool) (*TelegramAlerter, error) {
	applog.WithComponentAndFields(componentAlert, applog.Fields{
		"bot_token": strutil.Mask(cfg.BotToken),
		"chat_id":   cfg.ChatID,
	}).Debug("텔레그램 봇 클라이언트 초기화")

	client := &http.Client{Timeout: telegramHTTPClientTimeout}

	bot, err := tgbotapi.NewBotAPIWithClient(cfg.BotToken, tgbotapi.APIEndpoint, client)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "텔레그램 봇 API 클라이언트 초기화에 실패했습니다. BotToken이 올바른지 확인해주세요")
	}
	bot.Debug = debug

	return newTelegramAlerter(bot, cfg.ChatID), nil
}

func newTelegramAlerter(bot botSender, chatID int64) *TelegramAlerter {
	return &TelegramAlerter{bot: bot, chatID: chatID}
}

// Alert 상태 변화 목록을 HTML 메시지 1건으로 보냅니다. 목록이 비어 있으면 아무것도 하지 않습니다.
func (a *TelegramAlerter) Alert(ctx context.Context, transitions []Transition) error {
	if len(transitions) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Timeout, "알림 전송 전에 컨텍스트가 종료되었습니다")
	}

	msg := tgbotapi.NewMessage(a.chatID, FormatAlert(transitions))
	msg.ParseMode = tgbotapi.ModeHTML

	if _, err := a.bot.Send(msg); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "텔레그램 알림 전송 실패")
	}
	return nil
}

// FormatAlert 텔레그램 HTML 모드용 알림 본문을 만듭니다.
func FormatAlert(transitions []Transition) string {
	var sb strings.Builder
	sb.WriteString("<b>🚨 홈랩 서비스 상태 이상</b>\n")
	for _, t := range transitions {
		fmt.Fprintf(&sb, "\n• <b>%s</b>: %s → %s", html.EscapeString(t.Name), html.EscapeString(t.From), html.EscapeString(t.To))
	}
	return sb.String()
}
