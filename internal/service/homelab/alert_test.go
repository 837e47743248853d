package homelab

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTracker_Observe(t *testing.T) {
	t.Parallel()

	tr := NewStatusTracker()

	// 첫 실행은 비교 대상이 없습니다.
	assert.Empty(t, tr.Observe([]ServiceStatus{
		{Name: "Grafana", Status: StatusHealthy},
		{Name: "Nextcloud", Status: StatusStopped},
		{Name: "Jellyfin", Status: StatusHealthy},
	}))

	got := tr.Observe([]ServiceStatus{
		{Name: "Grafana", Status: "unhealthy"},
		{Name: "Nextcloud", Status: StatusStopped},
		{Name: "Jellyfin", Status: StatusHealthy},
		{Name: "Immich", Status: StatusStopped},
	})
	assert.Equal(t, []Transition{{Name: "Grafana", From: StatusHealthy, To: "unhealthy"}}, got)

	// 계속 비정상인 서비스는 다시 알리지 않습니다.
	assert.Empty(t, tr.Observe([]ServiceStatus{{Name: "Grafana", Status: "unhealthy"}}))
}

type fakeBot struct {
	sent []tgbotapi.Chattable
	err  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, b.err
}

func TestTelegramAlerter_Alert(t *testing.T) {
	t.Parallel()

	transitions := []Transition{{Name: "Grafana <prod>", From: StatusHealthy, To: StatusStopped}}

	t.Run("성공: HTML 메시지 전송", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{}
		require.NoError(t, newTelegramAlerter(bot, 4242).Alert(context.Background(), transitions))

		require.Len(t, bot.sent, 1)
		msg, ok := bot.sent[0].(tgbotapi.MessageConfig)
		require.True(t, ok)
		assert.Equal(t, int64(4242), msg.ChatID)
		assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
		assert.Contains(t, msg.Text, "<b>Grafana &lt;prod&gt;</b>: healthy → stopped")
	})

	t.Run("성공: 변화가 없으면 전송하지 않음", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{}
		require.NoError(t, newTelegramAlerter(bot, 1).Alert(context.Background(), nil))
		assert.Empty(t, bot.sent)
	})

	t.Run("실패: API 오류", func(t *testing.T) {
		t.Parallel()

		bot := &fakeBot{err: errors.New("Forbidden: bot was blocked by the user")}
		err := newTelegramAlerter(bot, 1).Alert(context.Background(), transitions)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "blocked")
	})

	t.Run("실패: 컨텍스트 취소", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		bot := &fakeBot{}
		require.Error(t, newTelegramAlerter(bot, 1).Alert(ctx, transitions))
		assert.Empty(t, bot.sent)
	})
}
