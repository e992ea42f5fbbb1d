package service

import (
	"context"

	"github.com/jeunggu9-sudo/timetable/internal/dto"
	"github.com/jeunggu9-sudo/timetable/internal/repository"
)

// InstructorService 교관 조회 업무 인터페이스
type InstructorService interface {
	// ListWithOffDays 전체 교관 목록을 휴무일 포함으로 조회
	ListWithOffDays(ctx context.Context) ([]dto.InstructorResponse, error)
}

type instructorService struct {
	repo *repository.Repository
}

// NewInstructorService InstructorService 인스턴스 생성
func NewInstructorService(repo *repository.Repository) InstructorService {
	return &instructorService{repo: repo}
}

func (s *instructorService) ListWithOffDays(ctx context.Context) ([]dto.InstructorResponse, error) {
	instructors, err := s.repo.Instructor.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.InstructorResponse, 0, len(instructors))
	for _, inst := range instructors {
		offDays, err := s.repo.OffDay.ListByInstructor(ctx, inst.InstructorID)
		if err != nil {
			return nil, err
		}

		items := make([]dto.OffDayItem, 0, len(offDays))
		for _, od := range offDays {
			items = append(items, dto.OffDayItem{
				Date:   od.DateString(),
				Reason: od.Reason,
			})
		}

		result = append(result, dto.InstructorResponse{
			InstructorID: inst.InstructorID,
			Name:         inst.Name,
			OffDays:      items,
		})
	}

	return result, nil
}
