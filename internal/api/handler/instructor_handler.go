package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/jeunggu9-sudo/timetable/internal/service"
	"github.com/jeunggu9-sudo/timetable/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// InstructorHandler 교관 모듈 HTTP 처리기
type InstructorHandler struct {
	instructorSvc service.InstructorService
	uploadSvc     service.UploadService
	templateSvc   service.TemplateService
	maxFileSize   int64
}

// NewInstructorHandler InstructorHandler 생성
func NewInstructorHandler(
	instructorSvc service.InstructorService,
	uploadSvc service.UploadService,
	templateSvc service.TemplateService,
	maxFileSize int64,
) *InstructorHandler {
	return &InstructorHandler{
		instructorSvc: instructorSvc,
		uploadSvc:     uploadSvc,
		templateSvc:   templateSvc,
		maxFileSize:   maxFileSize,
	}
}

// List 교관 목록 조회 (휴무일 포함)
// GET /api/v1/instructors
func (h *InstructorHandler) List(c *gin.Context) {
	result, err := h.instructorSvc.ListWithOffDays(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UploadOffDays 교관 휴무일 엑셀 업로드
// POST /api/v1/instructors/upload-off-days
// multipart/form-data, field="file"
func (h *InstructorHandler) UploadOffDays(c *gin.Context) {
	file, err := openUploadFile(c, h.maxFileSize)
	if err != nil {
		response.BadRequest(c, 12000, err.Error())
		return
	}
	defer file.Close()

	resp, err := h.uploadSvc.UploadOffDays(c.Request.Context(), file)
	if err != nil {
		handleUploadError(c, 12001, err)
		return
	}
	response.Created(c, resp)
}

// DownloadOffDaysTemplate 휴무일 업로드 양식 다운로드
// GET /api/v1/instructors/off-days-template
func (h *InstructorHandler) DownloadOffDaysTemplate(c *gin.Context) {
	buf, filename, err := h.templateSvc.GenerateOffDaysTemplate()
	if err != nil {
		response.InternalError(c)
		return
	}

	// 파일명에 한글이 포함되므로 RFC 5987 형태로 인코딩
	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
