package constants

import "time"

// 서버 설정 기본값 상수입니다.
const (
	// DefaultRequestTimeout 설정이 없을 때 적용하는 요청 처리 제한 시간
	DefaultRequestTimeout = 60 * time.Second

	// DefaultMaxBodySize 요청 본문 최대 크기. 문의 메시지 3개 필드 각 5000자를 충분히 담는 크기입니다.
	DefaultMaxBodySize = "64K"

	DefaultReadTimeout       = 15 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultWriteTimeout      = 90 * time.Second
	DefaultIdleTimeout       = 120 * time.Second

	// ShutdownTimeout Graceful Shutdown 시 최대 대기 시간
	ShutdownTimeout = 5 * time.Second
)
