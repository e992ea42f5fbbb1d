package service

import (
	"errors"
	"strings"
	"testing"
)

// ── 컬럼 매핑 ──

func TestResolveOffDayColumns_Canonical(t *testing.T) {
	cols, err := resolveOffDayColumns([]string{"이름", "시작날짜", "종료날짜", "비고"})
	if err != nil {
		t.Fatalf("매핑 실패: %v", err)
	}
	if cols.name != 0 || cols.start != 1 || cols.end != 2 || cols.remark != 3 {
		t.Errorf("인덱스 불일치: %+v", cols)
	}
}

func TestResolveOffDayColumns_Aliases(t *testing.T) {
	cols, err := resolveOffDayColumns([]string{"성명", "휴가시작일", "휴가종료일", "사유"})
	if err != nil {
		t.Fatalf("대체 라벨 매핑 실패: %v", err)
	}
	if cols.name != 0 || cols.start != 1 || cols.end != 2 || cols.remark != 3 {
		t.Errorf("인덱스 불일치: %+v", cols)
	}
}

// 대표 라벨과 대체 라벨이 함께 있으면 대표 라벨이 이긴다
func TestResolveOffDayColumns_CanonicalWins(t *testing.T) {
	cols, err := resolveOffDayColumns([]string{"교관", "시작", "종료", "이름", "시작날짜", "종료날짜"})
	if err != nil {
		t.Fatalf("매핑 실패: %v", err)
	}
	if cols.name != 3 {
		t.Errorf("이름 컬럼은 대표 라벨 위치(3)여야 함, 실제=%d", cols.name)
	}
	if cols.start != 4 || cols.end != 5 {
		t.Errorf("날짜 컬럼 인덱스 불일치: %+v", cols)
	}
}

func TestResolveOffDayColumns_TrimsHeader(t *testing.T) {
	cols, err := resolveOffDayColumns([]string{" 이름 ", "시작날짜\t", " 종료날짜"})
	if err != nil {
		t.Fatalf("공백 포함 헤더 매핑 실패: %v", err)
	}
	if cols.name != 0 || cols.start != 1 || cols.end != 2 {
		t.Errorf("인덱스 불일치: %+v", cols)
	}
	if cols.remark != -1 {
		t.Errorf("비고 없음은 -1 이어야 함, 실제=%d", cols.remark)
	}
}

func TestResolveOffDayColumns_MissingRequired(t *testing.T) {
	_, err := resolveOffDayColumns([]string{"이름", "시작날짜", "메모"})
	if err == nil {
		t.Fatal("종료날짜 누락은 오류여야 함")
	}
	var colErr *MissingColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("MissingColumnError 기대, 실제 %T", err)
	}
	if colErr.Column != "종료날짜" {
		t.Errorf("누락 컬럼 기대=종료날짜, 실제=%s", colErr.Column)
	}
	// 진단을 위해 실제 헤더 목록이 메시지에 포함되어야 한다
	if !strings.Contains(err.Error(), "메모") {
		t.Errorf("오류 메시지에 실제 헤더가 없음: %s", err.Error())
	}
}

// ── 행 파싱 ──

func testColumns() *offDayColumns {
	return &offDayColumns{name: 0, start: 1, end: 2, remark: 3}
}

func TestParseOffDayRow_Success(t *testing.T) {
	req, ok, err := parseOffDayRow([]string{"김교관", "2024-12-15", "2024-12-17", "개인 사유"}, testColumns(), 2)
	if err != nil {
		t.Fatalf("파싱 실패: %v", err)
	}
	if !ok {
		t.Fatal("유효한 행이 건너뛰어짐")
	}
	if req.Name != "김교관" || req.StartDate != "2024-12-15" || req.EndDate != "2024-12-17" {
		t.Errorf("파싱 결과 불일치: %+v", req)
	}
	if req.Remark != "개인 사유" {
		t.Errorf("비고 기대=개인 사유, 실제=%s", req.Remark)
	}
}

func TestParseOffDayRow_SerialDates(t *testing.T) {
	req, ok, err := parseOffDayRow([]string{"김교관", "45641", "45643"}, testColumns(), 2)
	if err != nil {
		t.Fatalf("시리얼 날짜 파싱 실패: %v", err)
	}
	if !ok {
		t.Fatal("유효한 행이 건너뛰어짐")
	}
	if req.StartDate != "2024-12-15" || req.EndDate != "2024-12-17" {
		t.Errorf("시리얼 변환 불일치: %+v", req)
	}
	if req.Remark != "" {
		t.Errorf("비고 셀이 없으면 빈 문자열이어야 함, 실제=%q", req.Remark)
	}
}

func TestParseOffDayRow_SkipEmpty(t *testing.T) {
	cases := [][]string{
		{},
		{"", "2024-12-15", "2024-12-17"},
		{"", "", ""},
	}
	for _, row := range cases {
		_, ok, err := parseOffDayRow(row, testColumns(), 5)
		if err != nil {
			t.Errorf("빈 행 %v 은 오류 없이 건너뛰어야 함: %v", row, err)
		}
		if ok {
			t.Errorf("빈 행 %v 이 유효 처리됨", row)
		}
	}
}

// 공백만 있는 이름 셀은 빈 행 건너뛰기가 아니라 행 오류다
func TestParseOffDayRow_WhitespaceName(t *testing.T) {
	_, ok, err := parseOffDayRow([]string{"   ", "2024-12-15", "2024-12-17"}, testColumns(), 4)
	if ok {
		t.Fatal("공백 이름 행이 유효 처리됨")
	}
	if err == nil {
		t.Fatal("공백 이름은 오류여야 함")
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("RowError 기대, 실제 %T", err)
	}
	if rowErr.Row != 4 {
		t.Errorf("행 번호 기대=4, 실제=%d", rowErr.Row)
	}
	if !errors.Is(err, errMissingName) {
		t.Errorf("원인 오류 불일치: %v", err)
	}
}

func TestParseOffDayRow_InvalidDate(t *testing.T) {
	_, _, err := parseOffDayRow([]string{"김교관", "휴무", "2024-12-17"}, testColumns(), 7)
	if err == nil {
		t.Fatal("잘못된 날짜는 오류여야 함")
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("RowError 기대, 실제 %T", err)
	}
	if rowErr.Row != 7 {
		t.Errorf("행 번호 기대=7, 실제=%d", rowErr.Row)
	}
	if !strings.HasPrefix(err.Error(), "7행 처리 중 오류") {
		t.Errorf("오류 메시지 형식 불일치: %s", err.Error())
	}
	var dateErr *InvalidDateError
	if !errors.As(err, &dateErr) {
		t.Errorf("원인 오류가 InvalidDateError 로 풀려야 함: %v", err)
	}
}

func TestParseOffDayRow_StartAfterEnd(t *testing.T) {
	_, _, err := parseOffDayRow([]string{"김교관", "2024-12-17", "2024-12-15"}, testColumns(), 3)
	if err == nil {
		t.Fatal("시작>종료는 오류여야 함")
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("RowError 기대, 실제 %T", err)
	}
	if !errors.Is(err, errStartAfterEnd) {
		t.Errorf("원인 오류 불일치: %v", err)
	}
}

// 하루짜리 휴무(시작=종료)는 유효하다
func TestParseOffDayRow_SingleDay(t *testing.T) {
	req, ok, err := parseOffDayRow([]string{"김교관", "2024-12-15", "2024-12-15"}, testColumns(), 2)
	if err != nil || !ok {
		t.Fatalf("하루짜리 휴무 파싱 실패: ok=%v, err=%v", ok, err)
	}
	if req.StartDate != req.EndDate {
		t.Errorf("시작=종료 기대, 실제: %+v", req)
	}
}
