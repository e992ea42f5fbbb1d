package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jeunggu9-sudo/timetable/config"
	"github.com/jeunggu9-sudo/timetable/internal/api/handler"
	"github.com/jeunggu9-sudo/timetable/internal/api/middleware"
)

// Setup Gin 라우터 엔진 초기화
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 전역 미들웨어 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Upload.MaxFileSize))

	// ── 헬스 체크 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 교관 모듈
		instructors := v1.Group("/instructors")
		{
			instructors.GET("", h.Instructor.List)
			instructors.POST("/upload-off-days", h.Instructor.UploadOffDays)
			instructors.GET("/off-days-template", h.Instructor.DownloadOffDaysTemplate)
		}

		// 휴무일 모듈
		offDays := v1.Group("/off-days")
		{
			offDays.GET("", h.OffDay.List)
			offDays.POST("", h.OffDay.Create)
			offDays.DELETE("/:id", h.OffDay.Delete)
		}

		// 교과목 모듈
		courses := v1.Group("/courses")
		{
			courses.GET("", h.Course.List)
			courses.POST("/upload", h.Course.Upload)
		}
	}

	return r
}
