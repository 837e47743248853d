package validation

import (
	"fmt"

	"github.com/ajgr33nboy/servin/pkg/cronx"
)

// ValidateCronExpression 초 필드를 포함한 6필드 Cron 표현식 또는 @descriptor인지 검증합니다.
func ValidateCronExpression(spec string) error {
	if _, err := cronx.StandardParser().Parse(spec); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패 (spec=%q): %w", spec, err)
	}
	return nil
}
