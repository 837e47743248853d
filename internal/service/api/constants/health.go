package constants

// 헬스체크 및 시스템 상태 관련 상수입니다.
const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"
	HealthStatusDisabled  = "disabled"

	// 외부 의존성 ID
	DependencyEmailTransport = "email_transport"
	DependencyRowStore       = "row_store"

	MsgDepStatusHealthy        = "정상 작동 중"
	MsgDepStatusDisabled       = "설정에서 비활성화됨"
	MsgDepStatusNotInitialized = "초기화되지 않음"
)
