package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jeunggu9-sudo/timetable/internal/dto"
	"github.com/jeunggu9-sudo/timetable/internal/service"
	"github.com/jeunggu9-sudo/timetable/pkg/response"
)

// OffDayHandler 휴무일 모듈 HTTP 처리기
type OffDayHandler struct {
	svc service.OffDayService
}

// NewOffDayHandler OffDayHandler 생성
func NewOffDayHandler(svc service.OffDayService) *OffDayHandler {
	return &OffDayHandler{svc: svc}
}

// List 휴무일 목록 조회
// GET /api/v1/off-days?page=1&page_size=20
func (h *OffDayHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	list, total, err := h.svc.List(c.Request.Context(), page, pageSize)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OKPage(c, list, total, page, pageSize)
}

// Create 휴무일 단건 등록
// POST /api/v1/off-days
func (h *OffDayHandler) Create(c *gin.Context) {
	var req dto.CreateOffDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 13000, "요청 형식이 올바르지 않습니다")
		return
	}

	resp, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleOffDayError(c, err)
		return
	}
	response.Created(c, resp)
}

// Delete 휴무일 단건 삭제
// DELETE /api/v1/off-days/:id
func (h *OffDayHandler) Delete(c *gin.Context) {
	offDayID := c.Param("id")

	if err := h.svc.Delete(c.Request.Context(), offDayID); err != nil {
		h.handleOffDayError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

func (h *OffDayHandler) handleOffDayError(c *gin.Context, err error) {
	var dateErr *service.InvalidDateError

	switch {
	case errors.Is(err, service.ErrOffDayNotFound):
		response.NotFound(c, 13101, err.Error())
	case errors.Is(err, service.ErrOffDayExists):
		response.Error(c, http.StatusConflict, 13102, err.Error())
	case errors.As(err, &dateErr):
		response.BadRequest(c, 13103, err.Error())
	default:
		response.InternalError(c)
	}
}
