// Package middleware Echo 서버에 적용하는 공통 HTTP 미들웨어입니다.
//
//   - PanicRecovery: 핸들러 panic 복구 및 스택 로깅
//   - HTTPLogger: 요청/응답 구조화 로깅 (민감 쿼리 파라미터 마스킹)
//   - ServerHeader: Server 응답 헤더 제거
//   - AllowContentTypes: 요청 본문의 Content-Type 제한
//   - Logger: Echo 로거를 애플리케이션 로거(logrus)로 연결하는 어댑터
package middleware
