// Package strutil 문자열 처리 유틸리티입니다.
package strutil

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes s를 최대 n개의 문자(rune)로 자릅니다. 멀티바이트 문자가 중간에서 깨지지 않습니다.
func TruncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}

	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// FirstToken 공백으로 나눈 첫 번째 토큰을 반환합니다. 토큰이 없으면 빈 문자열입니다.
// 예: "  Jane   Doe " -> "Jane"
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// NormalizeSpaces 앞뒤 공백을 제거하고 연속된 공백을 하나로 줄입니다.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SplitAndTrim sep으로 나눈 뒤 각 항목을 trim하고 빈 항목을 버립니다. 결과가 없으면 nil입니다.
func SplitAndTrim(s, sep string) []string {
	var out []string
	for _, tok := range strings.Split(s, sep) {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Mask 토큰이나 비밀번호처럼 민감한 값을 로그에 남길 수 있도록 가립니다.
//
//	""               -> ""
//	"abc"            -> "***"
//	"secret12"       -> "secr***"
//	"1234567890abcd" -> "1234***abcd"
func Mask(s string) string {
	switch {
	case s == "":
		return ""
	case len(s) <= 3:
		return "***"
	case len(s) <= 12:
		return s[:4] + "***"
	default:
		return s[:4] + "***" + s[len(s)-4:]
	}
}

// MaskEmail 이메일의 로컬 부분만 가립니다. '@'가 없으면 Mask와 같습니다.
// 예: "jane.doe@example.com" -> "ja***@example.com"
func MaskEmail(email string) string {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return Mask(email)
	}
	local, domain := email[:at], email[at:]
	if utf8.RuneCountInString(local) <= 2 {
		return "***" + domain
	}
	return TruncateRunes(local, 2) + "***" + domain
}
