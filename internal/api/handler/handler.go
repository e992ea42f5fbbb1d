package handler

import (
	"github.com/jeunggu9-sudo/timetable/config"
	"github.com/jeunggu9-sudo/timetable/internal/service"
)

// Handler 모든 Handler의 집합 진입점
type Handler struct {
	Instructor *InstructorHandler
	OffDay     *OffDayHandler
	Course     *CourseHandler
}

// NewHandler Handler 집합 생성
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Instructor: NewInstructorHandler(svc.Instructor, svc.Upload, svc.Template, cfg.Upload.MaxFileSize),
		OffDay:     NewOffDayHandler(svc.OffDay),
		Course:     NewCourseHandler(svc.Course, svc.Upload, cfg.Upload.MaxFileSize),
	}
}
