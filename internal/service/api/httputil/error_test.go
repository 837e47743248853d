package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		method      string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "성공: ErrorResponse 메시지 사용",
			method:      http.MethodPost,
			err:         NewUnsupportedMediaTypeError(constants.ErrMsgUnsupportedMediaType),
			wantCode:    http.StatusUnsupportedMediaType,
			wantMessage: constants.ErrMsgUnsupportedMediaType,
		},
		{
			name:        "성공: 문자열 메시지 사용",
			method:      http.MethodGet,
			err:         echo.NewHTTPError(http.StatusBadRequest, "bad"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "bad",
		},
		{
			name:        "성공: 404는 한국어 메시지로 통일",
			method:      http.MethodGet,
			err:         echo.ErrNotFound,
			wantCode:    http.StatusNotFound,
			wantMessage: constants.ErrMsgNotFound,
		},
		{
			name:        "성공: 413은 한국어 메시지로 통일",
			method:      http.MethodPost,
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantCode:    http.StatusRequestEntityTooLarge,
			wantMessage: constants.ErrMsgRequestEntityTooLarge,
		},
		{
			name:        "성공: 일반 에러는 500",
			method:      http.MethodGet,
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: constants.ErrMsgInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(tt.method, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			ErrorHandler(tt.err, c)

			require.Equal(t, tt.wantCode, rec.Code)

			var body response.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.ResultCode)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestErrorHandler_HeadAndCommitted(t *testing.T) {
	t.Parallel()

	t.Run("성공: HEAD 요청은 본문 없이 응답", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

		ErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("성공: 이미 응답이 전송되었으면 덮어쓰지 않음", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
		require.NoError(t, c.String(http.StatusOK, "done"))

		ErrorHandler(errors.New("late"), c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})
}
