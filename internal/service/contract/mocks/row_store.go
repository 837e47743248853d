package mocks

import (
	"context"

	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockRowStore contract.RowStore의 Mock 구현체입니다.
type MockRowStore struct {
	mock.Mock
}

func (m *MockRowStore) AppendRow(ctx context.Context, row contract.Row) error {
	args := m.Called(ctx, row)
	return args.Error(0)
}
