package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jeunggu9-sudo/timetable/internal/service"
	"github.com/jeunggu9-sudo/timetable/pkg/response"
)

// CourseHandler 교과목 모듈 HTTP 처리기
type CourseHandler struct {
	courseSvc   service.CourseService
	uploadSvc   service.UploadService
	maxFileSize int64
}

// NewCourseHandler CourseHandler 생성
func NewCourseHandler(courseSvc service.CourseService, uploadSvc service.UploadService, maxFileSize int64) *CourseHandler {
	return &CourseHandler{
		courseSvc:   courseSvc,
		uploadSvc:   uploadSvc,
		maxFileSize: maxFileSize,
	}
}

// List 교과목 목록 조회 (엑셀 입력 순서)
// GET /api/v1/courses
func (h *CourseHandler) List(c *gin.Context) {
	result, err := h.courseSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Upload 교과목 엑셀 업로드 (기존 데이터 교체)
// POST /api/v1/courses/upload
// multipart/form-data, field="file"
func (h *CourseHandler) Upload(c *gin.Context) {
	file, err := openUploadFile(c, h.maxFileSize)
	if err != nil {
		response.BadRequest(c, 14000, err.Error())
		return
	}
	defer file.Close()

	resp, err := h.uploadSvc.UploadCourses(c.Request.Context(), file)
	if err != nil {
		handleUploadError(c, 14001, err)
		return
	}
	response.Created(c, resp)
}
