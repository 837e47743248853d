package mocks

import (
	"context"

	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockEmailTransport contract.EmailTransport의 Mock 구현체입니다.
type MockEmailTransport struct {
	mock.Mock
}

func (m *MockEmailTransport) Send(ctx context.Context, email contract.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// SentTo To 주소가 일치하는 Send 호출의 Email을 순서대로 반환합니다.
func (m *MockEmailTransport) SentTo(to string) []contract.Email {
	var out []contract.Email
	for _, call := range m.Calls {
		if call.Method != "Send" {
			continue
		}
		if e, ok := call.Arguments.Get(1).(contract.Email); ok && e.To == to {
			out = append(out, e)
		}
	}
	return out
}
