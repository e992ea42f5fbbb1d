package service

import (
	"go.uber.org/zap"

	"github.com/jeunggu9-sudo/timetable/config"
	"github.com/jeunggu9-sudo/timetable/internal/repository"
	"github.com/jeunggu9-sudo/timetable/pkg/excel"
)

// Service 전체 서비스 집합
type Service struct {
	Instructor InstructorService
	OffDay     OffDayService
	Course     CourseService
	Upload     UploadService
	Template   TemplateService
}

// NewService 전체 서비스 인스턴스 생성
func NewService(cfg *config.Config, repo *repository.Repository, codec excel.Codec, logger *zap.Logger) *Service {
	return &Service{
		Instructor: NewInstructorService(repo),
		OffDay:     NewOffDayService(repo),
		Course:     NewCourseService(repo),
		Upload:     NewUploadService(cfg, repo, codec, logger),
		Template:   NewTemplateService(codec),
	}
}
