// Package cronx 프로젝트 전체에서 공유하는 Cron 파서 설정입니다.
package cronx

import "github.com/robfig/cron/v3"

// StandardParser 초 단위를 포함한 6필드 파서를 반환합니다. 5필드 표현식은 거부합니다.
//
//	"0 */15 * * * *" 15분마다 (0초)
//	"@hourly"        매시 정각
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}
