package handler

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeunggu9-sudo/timetable/internal/service"
	"github.com/jeunggu9-sudo/timetable/pkg/excel"
	"github.com/jeunggu9-sudo/timetable/pkg/response"
)

// openUploadFile multipart 필드 "file"에서 엑셀 파일을 꺼내고 확장자/크기를 검증
func openUploadFile(c *gin.Context, maxSize int64) (multipart.File, error) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		return nil, errors.New("엑셀 파일을 업로드해주세요")
	}

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".xlsx") {
		file.Close()
		return nil, errors.New("xlsx 형식의 파일만 업로드할 수 있습니다")
	}
	if header.Size > maxSize {
		file.Close()
		return nil, fmt.Errorf("파일 크기가 허용 한도(%dMB)를 초과했습니다", maxSize>>20)
	}

	return file, nil
}

// handleUploadError 업로드 파이프라인 오류 → HTTP 응답 변환
//
// 파싱/검증 계열 오류는 모두 클라이언트 입력 문제이므로 400으로 응답하고
// 오류 메시지를 그대로 전달해 사용자가 엑셀을 고칠 수 있게 한다.
func handleUploadError(c *gin.Context, code int, err error) {
	var rowErr *service.RowError
	var colErr *service.MissingColumnError
	var dateErr *service.InvalidDateError

	switch {
	case errors.Is(err, service.ErrNoData),
		errors.Is(err, service.ErrTooManyRows):
		response.BadRequest(c, code, err.Error())
	case errors.Is(err, excel.ErrNoSheet):
		response.BadRequest(c, code, "엑셀 파일에 시트가 없습니다")
	case errors.As(err, &rowErr),
		errors.As(err, &colErr),
		errors.As(err, &dateErr):
		response.BadRequest(c, code, err.Error())
	default:
		response.InternalError(c)
	}
}
