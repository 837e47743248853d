package mongo

import (
	"context"
	"testing"
	"time"

	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func sampleRow() contract.Row {
	return contract.Row{
		Timestamp: time.Date(2026, 5, 1, 18, 30, 0, 0, time.FixedZone("KST", 9*60*60)),
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Message:   "Hi!",
		Status:    contract.RowStatusUnread,
		Source:    "portfolio",
	}
}

func TestDocumentOf(t *testing.T) {
	t.Parallel()

	doc := documentOf(sampleRow())

	assert.Equal(t, time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC), doc.Timestamp)
	assert.Equal(t, "Jane Doe", doc.Name)
	assert.Equal(t, "Unread", doc.Status)
	assert.Equal(t, "portfolio", doc.Source)
}

func TestStore_AppendRow(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("성공: 문서 삽입", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		s := newStore(nil, mt.Coll)
		require.NoError(mt, s.AppendRow(context.Background(), sampleRow()))
	})

	mt.Run("실패: 쓰기 오류", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		s := newStore(nil, mt.Coll)
		err := s.AppendRow(context.Background(), sampleRow())
		require.Error(mt, err)
		assert.True(mt, apperrors.Is(err, apperrors.ExecutionFailed))
	})

	mt.Run("성공: Ping", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		s := newStore(mt.Client, mt.Coll)
		assert.NoError(mt, s.Ping(context.Background()))
	})

	mt.Run("실패: Ping 오류", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "unauthorized",
		}))

		s := newStore(mt.Client, mt.Coll)
		err := s.Ping(context.Background())
		require.Error(mt, err)
		assert.True(mt, apperrors.Is(err, apperrors.Unavailable))
	})

	mt.Run("성공: 클라이언트 없이 Close", func(mt *mtest.T) {
		assert.NoError(mt, newStore(nil, mt.Coll).Close(context.Background()))
	})
}
