package validation

import "regexp"

// emailShape 공백과 '@'가 없는 문자열 세 덩어리를 '@'와 '.'으로 이은 형태입니다.
// 도메인 부분에 '.'이 여러 개 있어도 허용합니다 (예: a@mail.example.co.kr).
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShape local@domain.tld 형태인지 확인합니다. RFC 5322 전체를 검증하지는 않습니다.
func IsEmailShape(s string) bool {
	return emailShape.MatchString(s)
}
