package service

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jeunggu9-sudo/timetable/pkg/excel"
)

// TemplateService 휴무일 업로드용 엑셀 양식 생성
type TemplateService interface {
	// GenerateOffDaysTemplate 예시 데이터와 사용법 시트가 포함된 양식 파일 생성
	GenerateOffDaysTemplate() (*bytes.Buffer, string, error)
}

type templateService struct {
	codec excel.Codec
	now   func() time.Time
}

// NewTemplateService TemplateService 인스턴스 생성
func NewTemplateService(codec excel.Codec) TemplateService {
	return &templateService{
		codec: codec,
		now:   time.Now,
	}
}

func (s *templateService) GenerateOffDaysTemplate() (*bytes.Buffer, string, error) {
	// 예시 날짜는 항상 다음 달로 생성해 그대로 업로드해도 과거 날짜가 되지 않게 한다
	nextMonth := s.now().AddDate(0, 1, 0)
	firstDay := time.Date(nextMonth.Year(), nextMonth.Month(), 1, 0, 0, 0, 0, time.UTC)

	day := func(d int) string {
		return firstDay.AddDate(0, 0, d-1).Format(calendarDateLayout)
	}

	dataSheet := excel.Sheet{
		Name: "교관휴무일",
		Rows: [][]interface{}{
			{"이름", "시작날짜", "종료날짜", "비고"},
			{"김교관", day(3), day(3), "개인 사유"},
			{"이교관", day(10), day(12), "연가"},
			{"박교관", day(20), day(20), ""},
		},
		ColWidths: []float64{15, 15, 15, 25},
	}

	guideSheet := excel.Sheet{
		Name: "사용법",
		Rows: [][]interface{}{
			{"교관 휴무일 업로드 양식 사용법"},
			{""},
			{"1. '교관휴무일' 시트에 휴무일 정보를 입력하세요."},
			{"2. 이름: 교관 이름을 입력합니다. (필수)"},
			{"3. 시작날짜: 휴무 시작일을 YYYY-MM-DD 형식으로 입력합니다. (필수)"},
			{"4. 종료날짜: 휴무 종료일을 YYYY-MM-DD 형식으로 입력합니다. (필수)"},
			{"   - 하루만 쉬는 경우 시작날짜와 종료날짜를 같게 입력하세요."},
			{"5. 비고: 휴무 사유를 입력합니다. (선택)"},
			{"6. 예시 행은 지우고 실제 데이터를 입력한 뒤 업로드하세요."},
			{""},
			{"※ 같은 교관의 같은 날짜가 이미 등록되어 있으면 중복으로 건너뜁니다."},
		},
		ColWidths: []float64{70},
	}

	buf, err := s.codec.Encode([]excel.Sheet{dataSheet, guideSheet})
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("교관휴무일_양식_%s.xlsx", s.now().Format("20060102"))
	return buf, filename, nil
}
