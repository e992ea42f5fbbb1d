package service

import (
	"strings"
	"testing"
	"time"
)

func TestTemplateService_GenerateOffDaysTemplate(t *testing.T) {
	codec := &fakeCodec{}
	svc := &templateService{
		codec: codec,
		now:   func() time.Time { return time.Date(2024, 11, 20, 10, 0, 0, 0, time.UTC) },
	}

	buf, filename, err := svc.GenerateOffDaysTemplate()
	if err != nil {
		t.Fatalf("양식 생성 실패: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("빈 버퍼")
	}
	if !strings.HasPrefix(filename, "교관휴무일_양식_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("파일명 형식 불일치: %s", filename)
	}

	if len(codec.encoded) != 2 {
		t.Fatalf("시트 수 기대=2, 실제=%d", len(codec.encoded))
	}
	data := codec.encoded[0]
	if data.Name != "교관휴무일" {
		t.Errorf("데이터 시트명 불일치: %s", data.Name)
	}
	if codec.encoded[1].Name != "사용법" {
		t.Errorf("안내 시트명 불일치: %s", codec.encoded[1].Name)
	}

	// 헤더 + 예시 3행
	if len(data.Rows) != 4 {
		t.Fatalf("데이터 시트 행 수 기대=4, 실제=%d", len(data.Rows))
	}
	header := data.Rows[0]
	want := []interface{}{"이름", "시작날짜", "종료날짜", "비고"}
	for i, w := range want {
		if header[i] != w {
			t.Errorf("헤더[%d] 기대=%v, 실제=%v", i, w, header[i])
		}
	}

	// 예시 날짜는 기준 시각의 다음 달
	if data.Rows[1][1] != "2024-12-03" {
		t.Errorf("예시 시작날짜 기대=2024-12-03, 실제=%v", data.Rows[1][1])
	}
	if data.Rows[2][1] != "2024-12-10" || data.Rows[2][2] != "2024-12-12" {
		t.Errorf("구간 예시 불일치: %v ~ %v", data.Rows[2][1], data.Rows[2][2])
	}

	if len(data.ColWidths) != 4 {
		t.Errorf("열 너비 수 기대=4, 실제=%d", len(data.ColWidths))
	}
}
