package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardParser(t *testing.T) {
	t.Parallel()

	p := StandardParser()

	t.Run("성공: 15분 주기", func(t *testing.T) {
		s, err := p.Parse("0 */15 * * * *")
		require.NoError(t, err)

		base := time.Date(2026, 3, 1, 10, 7, 30, 0, time.UTC)
		assert.Equal(t, time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC), s.Next(base))
	})

	t.Run("성공: descriptor", func(t *testing.T) {
		_, err := p.Parse("@every 1m")
		assert.NoError(t, err)
	})

	t.Run("실패: 5필드 표현식", func(t *testing.T) {
		_, err := p.Parse("*/15 * * * *")
		assert.Error(t, err)
	})
}
