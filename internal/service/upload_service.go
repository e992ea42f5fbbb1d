package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/jeunggu9-sudo/timetable/config"
	"github.com/jeunggu9-sudo/timetable/internal/dto"
	"github.com/jeunggu9-sudo/timetable/internal/model"
	"github.com/jeunggu9-sudo/timetable/internal/repository"
	"github.com/jeunggu9-sudo/timetable/pkg/excel"
)

// ── 업로드 모듈 업무 오류 ──

var (
	ErrNoData        = errors.New("엑셀 파일에 데이터가 없습니다")
	ErrTooManyRows   = errors.New("데이터 행 수가 허용 한도를 초과했습니다")
	errStartAfterEnd = errors.New("시작날짜가 종료날짜보다 늦습니다")
	errMissingName   = errors.New("교관 이름이 없습니다")
)

// UploadService 엑셀 업로드 업무 인터페이스
//
// 설계 설명:
//   - 휴무일 업로드는 "검증 전체 → 저장 전체" 2단계.
//     행 단위 오류는 해당 행 번호를 붙여 업로드 전체를 중단시키며,
//     어떤 행 오류도 저장 단계에 도달하지 않는다.
//   - 저장은 하나의 트랜잭션으로 묶여 한 파일의 결과가 원자적으로 반영된다.
//   - 같은 교관+날짜의 재업로드는 오류가 아니라 "중복" 으로 집계된다.
type UploadService interface {
	// UploadOffDays 교관 휴무일 엑셀 파일을 파싱하고 저장
	UploadOffDays(ctx context.Context, r io.Reader) (*dto.UploadOffDaysResponse, error)
	// UploadCourses 교과목 엑셀 파일을 파싱하고 기존 데이터를 교체 저장
	UploadCourses(ctx context.Context, r io.Reader) (*dto.UploadCoursesResponse, error)
}

type uploadService struct {
	repo    *repository.Repository
	codec   excel.Codec
	maxRows int
	logger  *zap.Logger
}

// NewUploadService UploadService 인스턴스 생성
func NewUploadService(cfg *config.Config, repo *repository.Repository, codec excel.Codec, logger *zap.Logger) UploadService {
	return &uploadService{
		repo:    repo,
		codec:   codec,
		maxRows: cfg.Upload.MaxRows,
		logger:  logger,
	}
}

// ═══════════════════════════════════════════════════════════
// UploadOffDays 교관 휴무일 엑셀 업로드
// ═══════════════════════════════════════════════════════════

func (s *uploadService) UploadOffDays(ctx context.Context, r io.Reader) (*dto.UploadOffDaysResponse, error) {
	// 1. 디코드 + 전체 행 검증 (저장 이전에 완결)
	requests, err := s.parseOffDaySheet(r)
	if err != nil {
		return nil, err
	}

	// 2. 저장 + 요약 집계 (단일 트랜잭션)
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("트랜잭션 시작 실패", zap.Error(err))
		return nil, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(rec)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	newCount := 0
	duplicateCount := 0
	summaries := make(map[string]*dto.InstructorOffDaysSummary)

	for _, req := range requests {
		inst, err := txRepo.Instructor.FindOrCreate(ctx, req.Name)
		if err != nil {
			if tx != nil {
				tx.Rollback()
			}
			s.logger.Error("교관 find-or-create 실패", zap.String("name", req.Name), zap.Error(err))
			return nil, err
		}

		summary := summaries[inst.Name]
		if summary == nil {
			summary = &dto.InstructorOffDaysSummary{InstructorName: inst.Name}
			summaries[inst.Name] = summary
		}

		// 시작날짜부터 종료날짜까지 하루 단위로 전개 (양끝 포함)
		start, err := parseCalendarDate(req.StartDate)
		if err != nil {
			if tx != nil {
				tx.Rollback()
			}
			return nil, err
		}
		end, err := parseCalendarDate(req.EndDate)
		if err != nil {
			if tx != nil {
				tx.Rollback()
			}
			return nil, err
		}

		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			dateStr := day.Format(calendarDateLayout)

			created, err := txRepo.OffDay.CreateIgnoreDuplicate(ctx, &model.OffDay{
				InstructorID: inst.InstructorID,
				Date:         day,
				Reason:       req.Remark,
			})
			if err != nil {
				if tx != nil {
					tx.Rollback()
				}
				s.logger.Error("휴무일 저장 실패",
					zap.String("instructor", inst.Name),
					zap.String("date", dateStr),
					zap.Error(err))
				return nil, err
			}
			if created {
				newCount++
			} else {
				duplicateCount++
			}

			// 요약에는 중복 여부와 무관하게 사용자가 업로드한 내용을 모두 담는다
			summary.OffDays = append(summary.OffDays, dto.OffDayItem{
				Date:   dateStr,
				Reason: req.Remark,
			})
		}
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("트랜잭션 커밋 실패", zap.Error(err))
			return nil, err
		}
	}

	// 3. 요약 정리: 교관별 날짜 중복 제거(먼저 나온 사유 유지) + 날짜 오름차순
	result := make([]dto.InstructorOffDaysSummary, 0, len(summaries))
	for _, summary := range summaries {
		summary.OffDays = dedupOffDayItems(summary.OffDays)
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].InstructorName < result[j].InstructorName
	})

	message := fmt.Sprintf("교관 휴무일이 성공적으로 업로드되었습니다. (총 %d일)", newCount)
	if duplicateCount > 0 {
		message = fmt.Sprintf("교관 휴무일이 성공적으로 업로드되었습니다. (신규: %d일, 중복: %d일)",
			newCount, duplicateCount)
	}

	s.logger.Info("휴무일 업로드 완료",
		zap.Int("new", newCount),
		zap.Int("duplicate", duplicateCount),
		zap.Int("instructors", len(result)),
	)

	return &dto.UploadOffDaysResponse{
		Success:           true,
		Message:           message,
		OffDayCount:       newCount,
		DuplicateCount:    duplicateCount,
		InstructorOffDays: result,
	}, nil
}

// parseOffDaySheet 첫 시트를 디코드하고 전체 행을 검증
func (s *uploadService) parseOffDaySheet(r io.Reader) ([]parsedOffDay, error) {
	rows, err := s.codec.Decode(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	cols, err := resolveOffDayColumns(rows[0])
	if err != nil {
		return nil, err
	}

	var requests []parsedOffDay
	for i, row := range rows[1:] {
		// 헤더가 1행이므로 i번째 데이터 행은 시트의 i+2행
		req, ok, err := parseOffDayRow(row, cols, i+2)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		requests = append(requests, *req)
	}

	if len(requests) == 0 {
		return nil, ErrNoData
	}
	if len(requests) > s.maxRows {
		return nil, fmt.Errorf("%w (최대 %d행)", ErrTooManyRows, s.maxRows)
	}

	return requests, nil
}

// dedupOffDayItems 같은 날짜를 하나로 합치고(먼저 나온 사유 유지) 날짜순 정렬
func dedupOffDayItems(items []dto.OffDayItem) []dto.OffDayItem {
	seen := make(map[string]bool, len(items))
	unique := make([]dto.OffDayItem, 0, len(items))
	for _, item := range items {
		if seen[item.Date] {
			continue
		}
		seen[item.Date] = true
		unique = append(unique, item)
	}
	sort.Slice(unique, func(i, j int) bool {
		return unique[i].Date < unique[j].Date
	})
	return unique
}

// ═══════════════════════════════════════════════════════════
// UploadCourses 교과목 엑셀 업로드 (전체 교체 방식)
// ═══════════════════════════════════════════════════════════
//
// 입력 형식:
//   - 필수 컬럼: 구분 / 과목 / 시수 / 담당교관
//   - 선택 컬럼: 선배정(1=선배정) / 평가("평가" 또는 "1")
//   - 담당교관 이 쉼표로 여러 명이면 교관별 레코드로 분리하고
//     시수를 균등 분배(몫), 나머지는 첫 교관에게 할당

// courseColumnIndex 교과목 시트 헤더 → 열 인덱스
func courseColumnIndex(header []string) map[string]int {
	idx := map[string]int{
		"category":     -1,
		"subject":      -1,
		"hours":        -1,
		"instructor":   -1,
		"pre_assigned": -1,
		"evaluation":   -1,
	}
	for i, h := range header {
		switch strings.TrimSpace(h) {
		case "구분":
			idx["category"] = i
		case "과목", "과목명":
			idx["subject"] = i
		case "시수":
			idx["hours"] = i
		case "담당교관", "교관":
			idx["instructor"] = i
		case "선배정":
			idx["pre_assigned"] = i
		case "평가":
			idx["evaluation"] = i
		}
	}
	return idx
}

func (s *uploadService) UploadCourses(ctx context.Context, r io.Reader) (*dto.UploadCoursesResponse, error) {
	rows, err := s.codec.Decode(r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrNoData
	}

	idx := courseColumnIndex(rows[0])
	for _, key := range []string{"category", "subject", "hours", "instructor"} {
		if idx[key] < 0 {
			return nil, &MissingColumnError{Column: courseLabel(key), Headers: rows[0]}
		}
	}

	type parsedCourse struct {
		category    string
		subject     string
		hours       int
		instructors []string
		preAssigned int
		evaluation  string
		order       int
	}

	var courses []parsedCourse
	for i, row := range rows[1:] {
		subject := cellAt(row, idx["subject"])
		instructorCell := cellAt(row, idx["instructor"])
		if subject == "" && instructorCell == "" {
			continue
		}
		if subject == "" || instructorCell == "" {
			return nil, &RowError{Row: i + 2, Err: errors.New("과목 또는 담당교관이 비어 있습니다")}
		}

		hours, err := strconv.Atoi(cellAt(row, idx["hours"]))
		if err != nil || hours <= 0 {
			return nil, &RowError{Row: i + 2, Err: errors.New("시수가 올바르지 않습니다")}
		}

		var names []string
		for _, name := range strings.Split(instructorCell, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				names = append(names, trimmed)
			}
		}
		if len(names) == 0 {
			return nil, &RowError{Row: i + 2, Err: errors.New("담당교관이 비어 있습니다")}
		}

		preAssigned := 2
		if cellAt(row, idx["pre_assigned"]) == "1" || cellAt(row, idx["pre_assigned"]) == "선배정" {
			preAssigned = 1
		}
		evaluation := "0"
		if ev := cellAt(row, idx["evaluation"]); ev == "1" || ev == "평가" {
			evaluation = "1"
		}

		courses = append(courses, parsedCourse{
			category:    cellAt(row, idx["category"]),
			subject:     subject,
			hours:       hours,
			instructors: names,
			preAssigned: preAssigned,
			evaluation:  evaluation,
			order:       i + 1,
		})
	}

	if len(courses) == 0 {
		return nil, ErrNoData
	}
	if len(courses) > s.maxRows {
		return nil, fmt.Errorf("%w (최대 %d행)", ErrTooManyRows, s.maxRows)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		s.logger.Error("트랜잭션 시작 실패", zap.Error(err))
		return nil, err
	}
	defer func() {
		if rec := recover(); rec != nil {
			if tx != nil {
				tx.Rollback()
			}
			panic(rec)
		}
	}()

	txRepo := s.repo.WithTx(tx)

	// 새 업로드가 기존 교과목 데이터를 대체한다
	if err := txRepo.Course.DeleteAll(ctx); err != nil {
		if tx != nil {
			tx.Rollback()
		}
		s.logger.Error("기존 교과목 삭제 실패", zap.Error(err))
		return nil, err
	}

	instructorSet := make(map[string]bool)
	savedCount := 0

	for _, course := range courses {
		for _, name := range course.instructors {
			if _, err := txRepo.Instructor.FindOrCreate(ctx, name); err != nil {
				if tx != nil {
					tx.Rollback()
				}
				s.logger.Error("교관 find-or-create 실패", zap.String("name", name), zap.Error(err))
				return nil, err
			}
			instructorSet[name] = true
		}

		// 교관별 시수 분배: 몫은 균등, 나머지는 첫 교관에게
		hoursEach := course.hours / len(course.instructors)
		remainder := course.hours % len(course.instructors)

		for i, name := range course.instructors {
			allocated := hoursEach
			if i == 0 {
				allocated += remainder
			}

			if err := txRepo.Course.Create(ctx, &model.Course{
				Category:       course.category,
				Subject:        course.subject,
				Hours:          allocated,
				InstructorName: name,
				PreAssigned:    course.preAssigned,
				Evaluation:     course.evaluation,
				ExcelOrder:     course.order,
			}); err != nil {
				if tx != nil {
					tx.Rollback()
				}
				s.logger.Error("교과목 저장 실패", zap.String("subject", course.subject), zap.Error(err))
				return nil, err
			}
			savedCount++
		}
	}

	if tx != nil {
		if err := tx.Commit().Error; err != nil {
			s.logger.Error("트랜잭션 커밋 실패", zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("교과목 업로드 완료",
		zap.Int("courses", savedCount),
		zap.Int("instructors", len(instructorSet)),
	)

	return &dto.UploadCoursesResponse{
		Success:         true,
		Message:         "엑셀 파일이 성공적으로 업로드되었습니다",
		CourseCount:     savedCount,
		InstructorCount: len(instructorSet),
	}, nil
}

// courseLabel 교과목 시트 논리 필드의 대표 라벨
func courseLabel(key string) string {
	switch key {
	case "category":
		return "구분"
	case "subject":
		return "과목"
	case "hours":
		return "시수"
	case "instructor":
		return "담당교관"
	}
	return key
}
