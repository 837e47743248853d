package constants

// 프레임워크 수준 에러 응답 메시지입니다. 문의 처리 결과 메시지는 contact 패키지가 결정합니다.
const (
	ErrMsgBadRequest            = "잘못된 요청입니다"
	ErrMsgBodyReadFailed        = "요청 본문을 읽을 수 없습니다"
	ErrMsgNotFound              = "요청한 리소스를 찾을 수 없습니다"
	ErrMsgRequestEntityTooLarge = "요청 본문이 너무 큽니다"
	ErrMsgUnsupportedMediaType  = "지원하지 않는 Content-Type 형식입니다"
	ErrMsgInternalServer        = "내부 서버 오류가 발생했습니다"
	ErrMsgServiceUnavailable    = "요청 처리 시간이 초과되었습니다. 잠시 후 다시 시도해주세요"
)

// 서비스 생성 시 필수 의존성이 없을 때의 패닉 메시지입니다.
const (
	PanicMsgAppConfigRequired      = "AppConfig는 필수입니다"
	PanicMsgContactHandlerRequired = "ContactHandler는 필수입니다"
)
