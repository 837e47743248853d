package log

// silentFormatter 기본 출력(io.Discard)에 대한 포맷팅 비용을 없애기 위한 포맷터입니다.
// 실제 포맷팅은 hook에서 수행합니다.
type silentFormatter struct{}

func (silentFormatter) Format(*Entry) ([]byte, error) {
	return nil, nil
}
