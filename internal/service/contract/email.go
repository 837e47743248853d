package contract

import "context"

// Email 발송할 메일 1건입니다.
// PlainBody와 HTMLBody는 multipart/alternative로 함께 전송됩니다.
type Email struct {
	To          string
	Subject     string
	PlainBody   string
	HTMLBody    string
	ReplyTo     string // 비어 있으면 Reply-To 헤더를 넣지 않습니다.
	DisplayName string // 발신자 표시 이름. 비어 있으면 전송 계층의 기본값을 사용합니다.
}

// EmailTransport 메일 발송 채널입니다. 구현체는 동시 호출에 안전해야 합니다.
type EmailTransport interface {
	// Send 메일 1건을 발송합니다. ctx가 취소되거나 만료되면 발송을 중단하고 에러를 반환합니다.
	Send(ctx context.Context, email Email) error
}
