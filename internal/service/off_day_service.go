package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/jeunggu9-sudo/timetable/internal/dto"
	"github.com/jeunggu9-sudo/timetable/internal/model"
	"github.com/jeunggu9-sudo/timetable/internal/repository"
)

// ── 휴무일 모듈 업무 오류 ──

var (
	ErrOffDayExists   = errors.New("해당 교관의 같은 날짜 휴무일이 이미 등록되어 있습니다")
	ErrOffDayNotFound = errors.New("휴무일을 찾을 수 없습니다")
)

// OffDayService 휴무일 개별 관리 업무 인터페이스
type OffDayService interface {
	// Create 휴무일 단건 등록
	Create(ctx context.Context, req *dto.CreateOffDayRequest) (*dto.OffDayResponse, error)
	// List 휴무일 목록 조회 (페이지네이션)
	List(ctx context.Context, page, pageSize int) ([]dto.OffDayResponse, int64, error)
	// Delete 휴무일 단건 삭제
	Delete(ctx context.Context, offDayID string) error
}

type offDayService struct {
	repo *repository.Repository
}

// NewOffDayService OffDayService 인스턴스 생성
func NewOffDayService(repo *repository.Repository) OffDayService {
	return &offDayService{repo: repo}
}

func (s *offDayService) Create(ctx context.Context, req *dto.CreateOffDayRequest) (*dto.OffDayResponse, error) {
	// 화면 입력도 업로드와 같은 날짜 정규화를 거친다
	dateStr, err := NormalizeDate(req.Date)
	if err != nil {
		return nil, err
	}
	date, err := parseCalendarDate(dateStr)
	if err != nil {
		return nil, err
	}

	inst, err := s.repo.Instructor.FindOrCreate(ctx, req.InstructorName)
	if err != nil {
		return nil, err
	}

	offDay := &model.OffDay{
		InstructorID: inst.InstructorID,
		Date:         date,
		Reason:       req.Reason,
	}
	created, err := s.repo.OffDay.CreateIgnoreDuplicate(ctx, offDay)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, ErrOffDayExists
	}

	return &dto.OffDayResponse{
		OffDayID:       offDay.OffDayID,
		InstructorID:   inst.InstructorID,
		InstructorName: inst.Name,
		Date:           offDay.DateString(),
		Reason:         offDay.Reason,
	}, nil
}

func (s *offDayService) List(ctx context.Context, page, pageSize int) ([]dto.OffDayResponse, int64, error) {
	offDays, total, err := s.repo.OffDay.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]dto.OffDayResponse, 0, len(offDays))
	for _, od := range offDays {
		resp := dto.OffDayResponse{
			OffDayID:     od.OffDayID,
			InstructorID: od.InstructorID,
			Date:         od.DateString(),
			Reason:       od.Reason,
		}
		if od.Instructor != nil {
			resp.InstructorName = od.Instructor.Name
		}
		result = append(result, resp)
	}

	return result, total, nil
}

func (s *offDayService) Delete(ctx context.Context, offDayID string) error {
	if _, err := s.repo.OffDay.GetByID(ctx, offDayID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOffDayNotFound
		}
		return err
	}
	return s.repo.OffDay.Delete(ctx, offDayID)
}
