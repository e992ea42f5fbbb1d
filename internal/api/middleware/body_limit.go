package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeunggu9-sudo/timetable/pkg/response"
)

// BodyLimit 전역 요청 본문 크기 제한 미들웨어
// maxBytes: 허용 최대 바이트 수 (예: 10<<20 = 10MB)
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}

		c.Next()

		// 크기 초과로 실패했는지 확인
		if c.IsAborted() {
			return
		}
		var maxBytesErr *http.MaxBytesError
		for _, err := range c.Errors {
			if errors.As(err.Err, &maxBytesErr) {
				response.Error(c, http.StatusRequestEntityTooLarge, 41300, "요청 본문이 너무 큽니다")
				return
			}
		}
	}
}
