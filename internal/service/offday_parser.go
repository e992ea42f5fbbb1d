package service

import (
	"fmt"
	"strings"
)

// ── 휴무일 시트 파싱 ────────────────────────────────────────
//
// 헤더 행을 논리 필드(이름/시작날짜/종료날짜/비고)에 매핑한 뒤
// 데이터 행을 하나씩 검증된 휴무 신청으로 변환한다.
// 헤더 매핑은 통합문서당 한 번만 수행하고 이후에는 불변이다.
// ─────────────────────────────────────────────────────────────

// 논리 필드별 대표 라벨과 대체 라벨 (우선순위 순서 고정)
var (
	nameLabels   = []string{"이름", "성명", "교관명", "교관"}
	startLabels  = []string{"시작날짜", "시작일", "시작", "휴가시작일", "휴가시작"}
	endLabels    = []string{"종료날짜", "종료일", "종료", "휴가종료일", "휴가종료"}
	remarkLabels = []string{"비고", "사유", "휴가사유", "내용"}
)

// MissingColumnError 필수 컬럼을 헤더에서 찾지 못함
type MissingColumnError struct {
	Column  string   // 누락된 논리 필드의 대표 라벨
	Headers []string // 실제 존재한 헤더 전체 (운영자 진단용)
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("필수 컬럼 '%s'이 없습니다. 사용 가능한 컬럼: %s",
		e.Column, strings.Join(e.Headers, ", "))
}

// RowError 행 번호가 붙은 파싱/검증 오류
// Row 는 헤더를 제외하지 않은 시트 기준 1-base 행 번호
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%d행 처리 중 오류: %s", e.Row, e.Err.Error())
}

func (e *RowError) Unwrap() error { return e.Err }

// offDayColumns 논리 필드 → 열 인덱스 매핑
// remark 가 없으면 -1 (선택 컬럼이라 오류가 아님)
type offDayColumns struct {
	name   int
	start  int
	end    int
	remark int
}

// parsedOffDay 검증을 통과한 휴무 신청 한 건
type parsedOffDay struct {
	Name      string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD, StartDate 이상
	Remark    string
}

// resolveOffDayColumns 헤더 행에서 컬럼 매핑 구성
// 대표 라벨 정확 일치 우선, 실패 시 대체 라벨을 순서대로 시도
func resolveOffDayColumns(header []string) (*offDayColumns, error) {
	trimmed := make([]string, len(header))
	for i, h := range header {
		trimmed[i] = strings.TrimSpace(h)
	}

	find := func(labels []string) int {
		for _, label := range labels {
			for i, h := range trimmed {
				if h == label {
					return i
				}
			}
		}
		return -1
	}

	cols := &offDayColumns{
		name:   find(nameLabels),
		start:  find(startLabels),
		end:    find(endLabels),
		remark: find(remarkLabels),
	}

	required := []struct {
		idx   int
		label string
	}{
		{cols.name, nameLabels[0]},
		{cols.start, startLabels[0]},
		{cols.end, endLabels[0]},
	}
	for _, req := range required {
		if req.idx < 0 {
			return nil, &MissingColumnError{Column: req.label, Headers: trimmed}
		}
	}

	return cols, nil
}

// cellAt 행 길이를 벗어나는 인덱스를 빈 문자열로 처리
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rawCellAt cellAt 과 같되 공백을 보존한다
func rawCellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// parseOffDayRow 데이터 행 하나를 검증된 휴무 신청으로 변환
//
// rowNum 은 시트 기준 1-base 행 번호(헤더가 1행이므로 데이터 i번째는 i+2행).
// 행 전체가 비었거나 이름 셀 자체가 빈 행은 건너뛴다(템플릿 하단의 빈 행).
// 공백만 입력된 이름은 빈 행이 아니라 잘못 작성된 행이므로 오류로 처리한다.
func parseOffDayRow(row []string, cols *offDayColumns, rowNum int) (*parsedOffDay, bool, error) {
	if len(row) == 0 {
		return nil, false, nil
	}

	rawName := rawCellAt(row, cols.name)
	if rawName == "" {
		return nil, false, nil
	}

	name := strings.TrimSpace(rawName)
	if name == "" {
		return nil, false, &RowError{Row: rowNum, Err: errMissingName}
	}

	startDate, err := NormalizeDate(cellAt(row, cols.start))
	if err != nil {
		return nil, false, &RowError{Row: rowNum, Err: err}
	}

	endDate, err := NormalizeDate(cellAt(row, cols.end))
	if err != nil {
		return nil, false, &RowError{Row: rowNum, Err: err}
	}

	// 정규화된 YYYY-MM-DD 는 문자열 비교가 곧 날짜 비교
	if startDate > endDate {
		return nil, false, &RowError{Row: rowNum, Err: errStartAfterEnd}
	}

	return &parsedOffDay{
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
		Remark:    cellAt(row, cols.remark),
	}, true, nil
}
