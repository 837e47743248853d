// Package rowstore 설정에 따라 문의 내역을 기록할 contract.RowStore를 생성합니다.
package rowstore

import (
	"context"
	"io"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	"github.com/ajgr33nboy/servin/internal/service/rowstore/mongo"
	"github.com/ajgr33nboy/servin/internal/service/rowstore/sheets"
)

// New cfg.Kind에 맞는 저장소를 생성합니다. Kind가 비어 있으면 (nil, nil)을 반환하며
// 이 경우 문의 처리 과정에서 행 기록 단계를 건너뜁니다.
func New(ctx context.Context, cfg config.RowStoreConfig) (contract.RowStore, error) {
	switch cfg.Kind {
	case "":
		return nil, nil

	case config.RowStoreKindSheets:
		s, err := sheets.New(ctx, cfg.Sheets)
		if err != nil {
			return nil, err
		}
		return s, nil

	case config.RowStoreKindMongo:
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		s, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 행 저장소 종류입니다 (kind: %s)", cfg.Kind)
}

type contextCloser interface {
	Close(ctx context.Context) error
}

// Close 저장소가 연결을 가지고 있으면 종료합니다. store가 nil이면 아무것도 하지 않습니다.
func Close(ctx context.Context, store contract.RowStore) error {
	switch c := store.(type) {
	case nil:
		return nil
	case contextCloser:
		return c.Close(ctx)
	case io.Closer:
		return c.Close()
	}
	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthCheck 저장소가 연결 상태 확인을 지원하면 그 함수를, 아니면 nil을 반환합니다.
func HealthCheck(store contract.RowStore) func(ctx context.Context) error {
	if p, ok := store.(pinger); ok {
		return p.Ping
	}
	return nil
}
