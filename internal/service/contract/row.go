package contract

import (
	"context"
	"time"
)

// RowStatusUnread 새로 기록된 문의의 상태 값입니다.
const RowStatusUnread = "Unread"

// Row 외부 표 형식 저장소에 추가되는 행 1개입니다.
type Row struct {
	Timestamp time.Time
	Name      string
	Email     string
	Message   string
	Status    string
	Source    string
}

// Cells [timestamp, name, email, message, status, source] 순서의 셀 목록을 반환합니다.
func (r Row) Cells() []any {
	return []any{r.Timestamp, r.Name, r.Email, r.Message, r.Status, r.Source}
}

// RowStore 행 추가만 지원하는 외부 저장소입니다. 행 단위 추가의 원자성은 저장소가 보장합니다.
// 연결을 가진 구현체는 io.Closer 또는 Close(ctx) error를 함께 구현합니다.
type RowStore interface {
	AppendRow(ctx context.Context, row Row) error
}
