// Package system 시스템 엔드포인트(/health, /version) 응답 모델입니다.
package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 외부 의존성별 상태 (키: 의존성 이름)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus 외부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 상태: healthy, unhealthy, disabled
	Status string `json:"status" example:"healthy"`
	// 확인에 걸린 시간(ms)
	LatencyMs int64 `json:"latency_ms,omitempty" example:"5"`
	// 상태 상세 정보 또는 에러 메시지
	Message string `json:"message,omitempty" example:"정상 작동 중"`
}
