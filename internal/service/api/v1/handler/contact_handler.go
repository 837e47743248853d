// Package handler /api/v1 엔드포인트 핸들러입니다.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/ajgr33nboy/servin/internal/service/api/constants"
	"github.com/ajgr33nboy/servin/internal/service/api/httputil"
	"github.com/ajgr33nboy/servin/internal/service/contact"
	"github.com/labstack/echo/v4"
)

// contactService 문의 처리 파이프라인입니다. *contact.Handler가 구현합니다.
type contactService interface {
	Handle(ctx context.Context, body []byte) (contact.Result, error)
	Probe() contact.ProbeResult
}

// ContactHandler 문의 폼 엔드포인트 핸들러
type ContactHandler struct {
	svc contactService
}

// NewContactHandler ContactHandler 인스턴스를 생성합니다.
func NewContactHandler(svc contactService) *ContactHandler {
	if svc == nil {
		panic(constants.PanicMsgContactHandlerRequired)
	}
	return &ContactHandler{svc: svc}
}

// ProbeHandler godoc
// @Summary 문의 API 상태 확인
// @Description 문의 폼 API가 동작 중인지 확인합니다. 부수 효과는 없습니다.
// @Tags Contact
// @Produce json
// @Success 200 {object} contact.ProbeResult "상태"
// @Router /api/v1/contact [get]
func (h *ContactHandler) ProbeHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Probe())
}

// SubmitHandler godoc
// @Summary 문의 제출
// @Description 문의를 검증한 뒤 운영자에게 알림 메일을 보냅니다.
// @Description 설정에 따라 문의 내역을 기록하고 문의자에게 자동 응답 메일을 보냅니다.
// @Description 브라우저가 preflight 없이 보낼 수 있도록 text/plain 본문도 JSON으로 해석합니다.
// @Tags Contact
// @Accept json
// @Accept plain
// @Produce json
// @Param submission body contact.RawSubmission true "문의 내용"
// @Success 200 {object} contact.Result "처리 성공"
// @Failure 400 {object} contact.Result "검증 실패"
// @Failure 413 {object} response.ErrorResponse "본문 크기 초과"
// @Failure 415 {object} response.ErrorResponse "지원하지 않는 Content-Type"
// @Failure 500 {object} contact.Result "운영자 알림 실패"
// @Router /api/v1/contact [post]
func (h *ContactHandler) SubmitHandler(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			// BodyLimit 초과 (413)
			return he
		}
		return httputil.NewBadRequestError(constants.ErrMsgBodyReadFailed)
	}

	res, err := h.svc.Handle(c.Request().Context(), body)
	return c.JSON(statusOf(err), res)
}

func statusOf(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case contact.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
