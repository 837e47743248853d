// Package validation 설정 파일과 요청 입력값에 공통으로 쓰이는 형식 검증 함수를 제공합니다.
//
//   - CORS Origin (Scheme://Host[:Port])
//   - 호스트명, 포트
//   - 절대 http(s) URL
//   - 이메일 주소 형식 (local@domain.tld)
//   - 6필드 Cron 표현식
package validation
