// Package mongo 문의 내역을 MongoDB 컬렉션에 문서 1개씩 기록합니다.
package mongo

import (
	"context"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const component = "rowstore.mongo"

type submissionDocument struct {
	Timestamp time.Time `bson:"timestamp"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Message   string    `bson:"message"`
	Status    string    `bson:"status"`
	Source    string    `bson:"source"`
}

func documentOf(row contract.Row) submissionDocument {
	return submissionDocument{
		Timestamp: row.Timestamp.UTC(),
		Name:      row.Name,
		Email:     row.Email,
		Message:   row.Message,
		Status:    row.Status,
		Source:    row.Source,
	}
}

// Store MongoDB 기반 contract.RowStore 구현체입니다.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
}

var _ contract.RowStore = (*Store)(nil)

// New MongoDB에 연결하고 Primary에 Ping이 성공하면 Store를 반환합니다.
func New(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "MongoDB 클라이언트를 생성할 수 없습니다")
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "MongoDB 서버에 연결할 수 없습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"database":   cfg.Database,
		"collection": cfg.Collection,
	}).Info("MongoDB 연결 완료")

	return newStore(client, client.Database(cfg.Database).Collection(cfg.Collection)), nil
}

func newStore(client *mongo.Client, collection *mongo.Collection) *Store {
	return &Store{client: client, collection: collection}
}

// AppendRow 행을 문서 1개로 삽입합니다.
func (s *Store) AppendRow(ctx context.Context, row contract.Row) error {
	if _, err := s.collection.InsertOne(ctx, documentOf(row)); err != nil {
		return apperrors.Wrap(err, apperrors.ExecutionFailed, "문의 문서를 삽입하지 못했습니다")
	}
	return nil
}

// Ping Primary 노드의 응답 여부를 확인합니다. 헬스체크에서 사용합니다.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "MongoDB 서버가 응답하지 않습니다")
	}
	return nil
}

// Close 연결을 종료합니다.
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return apperrors.Wrap(err, apperrors.System, "MongoDB 연결 종료 실패")
	}
	return nil
}
