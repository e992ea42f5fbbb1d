package service

import (
	"context"

	"github.com/jeunggu9-sudo/timetable/internal/dto"
	"github.com/jeunggu9-sudo/timetable/internal/repository"
)

// CourseService 교과목 조회 업무 인터페이스
type CourseService interface {
	// List 전체 교과목 목록을 엑셀 입력 순서대로 조회
	List(ctx context.Context) ([]dto.CourseResponse, error)
}

type courseService struct {
	repo *repository.Repository
}

// NewCourseService CourseService 인스턴스 생성
func NewCourseService(repo *repository.Repository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		result = append(result, dto.CourseResponse{
			CourseID:          c.CourseID,
			Category:          c.Category,
			Subject:           c.Subject,
			Hours:             c.Hours,
			InstructorName:    c.InstructorName,
			PreAssigned:       c.PreAssigned,
			Evaluation:        c.Evaluation,
			EvaluationDisplay: EvaluationDisplay(c.Evaluation),
			ExcelOrder:        c.ExcelOrder,
		})
	}
	return result, nil
}

// EvaluationDisplay 평가 코드("1"/"0")를 화면 표기 문자열로 변환
func EvaluationDisplay(code string) string {
	if code == "1" {
		return "평가"
	}
	return "무시험"
}
