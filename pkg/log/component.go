package log

import "github.com/sirupsen/logrus"

// WithComponent component 필드를 가진 Entry를 반환합니다.
func WithComponent(component string) *Entry {
	return logrus.WithField("component", component)
}

// WithComponentAndFields component 필드와 추가 필드를 함께 가진 Entry를 반환합니다.
// fields에 component 키가 있어도 인자로 받은 component가 우선합니다.
func WithComponentAndFields(component string, fields Fields) *Entry {
	merged := make(Fields, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["component"] = component
	return logrus.WithFields(merged)
}

// SetDebugMode true면 Trace, false면 Info로 전역 레벨을 바꿉니다.
func SetDebugMode(debug bool) {
	if debug {
		logrus.SetLevel(TraceLevel)
		return
	}
	logrus.SetLevel(InfoLevel)
}

// StandardLogger 패키지 전역 logrus 로거를 반환합니다. 외부 프레임워크의 로거 어댑터에서 사용합니다.
func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// WithFields component 없이 필드만 가진 Entry를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}
