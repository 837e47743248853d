// Package sheets 문의 내역을 Google Sheets 스프레드시트에 행 단위로 추가합니다.
package sheets

import (
	"context"
	"fmt"
	"time"

	"github.com/ajgr33nboy/servin/internal/config"
	apperrors "github.com/ajgr33nboy/servin/internal/pkg/errors"
	"github.com/ajgr33nboy/servin/internal/service/contract"
	applog "github.com/ajgr33nboy/servin/pkg/log"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	component = "rowstore.sheets"

	// CellTimeLayout 시트에서 날짜로 인식되는 timestamp 셀 형식
	CellTimeLayout = "2006-01-02 15:04:05"

	valueInputUserEntered = "USER_ENTERED"
	insertDataInsertRows  = "INSERT_ROWS"
)

// Store Google Sheets 기반 contract.RowStore 구현체입니다.
// Sheets API의 append 호출은 행 단위로 원자적이므로 별도의 잠금을 두지 않습니다.
type Store struct {
	svc           *gsheets.Service
	spreadsheetID string
	writeRange    string
	location      *time.Location
}

var _ contract.RowStore = (*Store)(nil)

// New 서비스 계정 키 파일로 인증한 Store를 생성합니다.
// opts는 기본 인증 옵션 뒤에 적용되므로 테스트에서 엔드포인트나 HTTP 클라이언트를 바꿀 수 있습니다.
func New(ctx context.Context, cfg config.SheetsConfig, opts ...option.ClientOption) (*Store, error) {
	clientOpts := append([]option.ClientOption{
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(gsheets.SpreadsheetsScope),
	}, opts...)

	svc, err := gsheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "Google Sheets 클라이언트를 생성할 수 없습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"spreadsheet_id": cfg.SpreadsheetID,
		"sheet_name":     cfg.SheetName,
	}).Info("Google Sheets 저장소 준비 완료")

	return newStore(svc, cfg), nil
}

func newStore(svc *gsheets.Service, cfg config.SheetsConfig) *Store {
	return &Store{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		writeRange:    fmt.Sprintf("%s!A:F", cfg.SheetName),
		location:      time.Local,
	}
}

// AppendRow 시트의 마지막 행 다음에 [timestamp, name, email, message, status, source]를 추가합니다.
func (s *Store) AppendRow(ctx context.Context, row contract.Row) error {
	vr := &gsheets.ValueRange{
		MajorDimension: "ROWS",
		Values:         [][]any{s.cells(row)},
	}

	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.writeRange, vr).
		ValueInputOption(valueInputUserEntered).
		InsertDataOption(insertDataInsertRows).
		Context(ctx).
		Do()
	if err != nil {
		return apperrors.Wrapf(err, apperrors.ExecutionFailed, "스프레드시트에 행을 추가하지 못했습니다 (range: %s)", s.writeRange)
	}
	return nil
}

// cells Row.Cells()의 timestamp를 시트가 날짜로 해석하는 문자열로 바꿉니다.
func (s *Store) cells(row contract.Row) []any {
	cells := row.Cells()
	cells[0] = row.Timestamp.In(s.location).Format(CellTimeLayout)
	return cells
}
