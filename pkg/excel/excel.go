package excel

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ── 스프레드시트 코덱 경계 ──────────────────────────────────
//
// 업로드/양식 생성 로직이 특정 라이브러리의 호출 형태에 묶이지 않도록
// 디코드/인코드를 인터페이스 뒤로 분리한다. 운영 구현은 excelize 기반.
// ─────────────────────────────────────────────────────────────

// Sheet 인코딩 대상 시트 하나
type Sheet struct {
	Name      string
	Rows      [][]interface{}
	ColWidths []float64 // 열 순서대로의 너비, 비어 있으면 기본값
}

// Codec 스프레드시트 디코드/인코드 인터페이스
type Codec interface {
	// Decode 첫 번째 시트의 셀 값을 행 단위로 반환.
	// 날짜 셀은 서식이 적용되지 않은 원본 값(시리얼 문자열)으로 읽는다.
	Decode(r io.Reader) ([][]string, error)

	// Encode 시트 목록을 하나의 통합문서로 직렬화
	Encode(sheets []Sheet) (*bytes.Buffer, error)
}

// ErrNoSheet 통합문서에 시트가 없음
var ErrNoSheet = errors.New("엑셀 파일에 시트가 없습니다")

type excelizeCodec struct{}

// NewExcelizeCodec excelize 기반 Codec 생성
func NewExcelizeCodec() Codec {
	return excelizeCodec{}
}

func (excelizeCodec) Decode(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("엑셀 파일을 해석할 수 없습니다: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheet
	}

	// RawCellValue: 날짜 서식 셀을 지역 서식 문자열이 아닌 시리얼 값으로 받는다
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("워크시트 읽기 실패: %w", err)
	}

	return rows, nil
}

func (excelizeCodec) Encode(sheets []Sheet) (*bytes.Buffer, error) {
	if len(sheets) == 0 {
		return nil, ErrNoSheet
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			// 기본 Sheet1 을 첫 시트로 재사용
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, fmt.Errorf("시트 이름 설정 실패: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, fmt.Errorf("시트 추가 실패: %w", err)
			}
		}

		for w, width := range sheet.ColWidths {
			col, err := excelize.ColumnNumberToName(w + 1)
			if err != nil {
				return nil, err
			}
			if err := f.SetColWidth(sheet.Name, col, col, width); err != nil {
				return nil, err
			}
		}

		for r, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet.Name, cell, &row); err != nil {
				return nil, fmt.Errorf("행 쓰기 실패: %w", err)
			}
		}
	}

	idx, err := f.GetSheetIndex(sheets[0].Name)
	if err == nil && idx >= 0 {
		f.SetActiveSheet(idx)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("엑셀 파일 직렬화 실패: %w", err)
	}
	return buf, nil
}
