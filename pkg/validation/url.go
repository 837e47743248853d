package validation

import (
	"fmt"
	"net/url"
)

// ValidateHTTPURL 호스트를 가진 절대 http(s) URL인지 검증합니다.
func ValidateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("URL 파싱 실패 (input=%q): %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL은 http 또는 https 스키마를 사용해야 합니다 (input=%q)", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("URL에 호스트가 없습니다 (input=%q)", raw)
	}
	return nil
}
