// Package response API 공통 응답 모델입니다.
package response

// ErrorResponse 프레임워크 수준(라우팅, 본문 크기, Content-Type 등) 오류 응답
type ErrorResponse struct {
	// Success 항상 false
	Success bool `json:"success" example:"false"`

	// ResultCode HTTP 상태 코드 (예: 404, 413, 415)
	ResultCode int `json:"result_code" example:"415"`

	// Message 에러 메시지
	Message string `json:"message" example:"지원하지 않는 Content-Type 형식입니다"`
}
