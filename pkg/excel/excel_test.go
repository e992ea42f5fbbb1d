package excel

import (
	"bytes"
	"strings"
	"testing"
)

func TestCodec_EncodeDecodeRoundTrip(t *testing.T) {
	codec := NewExcelizeCodec()

	buf, err := codec.Encode([]Sheet{
		{
			Name: "교관휴무일",
			Rows: [][]interface{}{
				{"이름", "시작날짜", "종료날짜", "비고"},
				{"김교관", "2024-12-15", "2024-12-17", "연가"},
			},
			ColWidths: []float64{15, 15, 15, 25},
		},
		{
			Name: "사용법",
			Rows: [][]interface{}{{"안내문"}},
		},
	})
	if err != nil {
		t.Fatalf("인코딩 실패: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("빈 버퍼")
	}

	// 디코드는 첫 시트만 읽는다
	rows, err := codec.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("디코딩 실패: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("행 수 기대=2, 실제=%d", len(rows))
	}
	if rows[0][0] != "이름" || rows[0][3] != "비고" {
		t.Errorf("헤더 불일치: %v", rows[0])
	}
	if rows[1][0] != "김교관" || rows[1][2] != "2024-12-17" {
		t.Errorf("데이터 행 불일치: %v", rows[1])
	}
}

func TestCodec_DecodeInvalidFile(t *testing.T) {
	codec := NewExcelizeCodec()
	_, err := codec.Decode(strings.NewReader("not an xlsx file"))
	if err == nil {
		t.Fatal("xlsx 가 아닌 입력은 오류여야 함")
	}
}
