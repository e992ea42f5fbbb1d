package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ── 날짜 정규화 ──────────────────────────────────────────────
//
// 엑셀 셀에 들어오는 잡다한 날짜 표현(시리얼 숫자, 여러 문자열 형식,
// time.Time)을 "YYYY-MM-DD" 달력 날짜 문자열 하나로 통일한다.
// 시간대 이동 없이 날짜 성분만 다루며, 이미 정규화된 문자열을
// 다시 넣어도 결과가 같다.
// ─────────────────────────────────────────────────────────────

const calendarDateLayout = "2006-01-02"

// excelEpoch 엑셀 1900 날짜 체계의 기준일.
// 1899-12-30 을 기준으로 시리얼 일수를 더하면 1900년을 윤년으로
// 잘못 처리한 시리얼 60 이후의 오프바이원이 함께 보정된다.
// (기존 업로드 파일과의 호환을 위해 60 이전 구간의 동작도 그대로 유지)
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// serialMax 시리얼로 인정하는 상한 (9999-12-31 부근)
const serialMax = 2958465

// InvalidDateError 셀 값을 날짜로 해석할 수 없음
type InvalidDateError struct {
	Value    interface{}
	TypeName string
}

func (e *InvalidDateError) Error() string {
	if e.Value == nil || e.Value == "" {
		return "날짜 값이 없습니다"
	}
	return fmt.Sprintf("올바르지 않은 날짜 형식입니다: %v (%s)", e.Value, e.TypeName)
}

// 명시적 우선 형식: 자리수/구분자 기준으로 순서대로 시도, 첫 일치가 승리
var explicitDateLayouts = []string{
	"2006-1-2", // YYYY-MM-DD
	"2006/1/2", // YYYY/MM/DD
	"1/2/2006", // MM/DD/YYYY
}

// 명시적 형식에 걸리지 않을 때의 일반 해석 (UTC 자정 기준)
var fallbackDateLayouts = []string{
	"2006.1.2",
	"20060102",
	time.RFC3339,
}

// NormalizeDate 셀 원본 값을 달력 날짜 문자열로 정규화
func NormalizeDate(value interface{}) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", &InvalidDateError{Value: nil, TypeName: "nil"}
	case float64:
		return serialToDate(v)
	case int:
		return serialToDate(float64(v))
	case int64:
		return serialToDate(float64(v))
	case time.Time:
		if v.IsZero() {
			return "", &InvalidDateError{Value: v, TypeName: "time.Time"}
		}
		return v.UTC().Format(calendarDateLayout), nil
	case string:
		return normalizeDateString(v)
	default:
		return "", &InvalidDateError{Value: value, TypeName: fmt.Sprintf("%T", value)}
	}
}

// serialToDate 엑셀 시리얼 값을 달력 날짜로 변환
func serialToDate(serial float64) (string, error) {
	days := int(serial)
	if days <= 0 || days > serialMax {
		return "", &InvalidDateError{Value: serial, TypeName: "number"}
	}
	return excelEpoch.AddDate(0, 0, days).Format(calendarDateLayout), nil
}

// normalizeDateString 문자열 셀 값을 달력 날짜로 변환
func normalizeDateString(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &InvalidDateError{Value: raw, TypeName: "string"}
	}

	// 숫자만으로 된 값은 서식 없는 날짜 셀의 시리얼 값
	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil && !strings.Contains(trimmed, "-") {
		// 8자리 숫자(20241215)는 시리얼이 아니라 압축 날짜 표기
		if len(trimmed) != 8 {
			return serialToDate(serial)
		}
	}

	for _, layout := range explicitDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(calendarDateLayout), nil
		}
	}

	for _, layout := range fallbackDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(calendarDateLayout), nil
		}
	}

	return "", &InvalidDateError{Value: trimmed, TypeName: "string"}
}

// parseCalendarDate 정규화된 달력 날짜 문자열을 UTC time.Time 으로 변환
func parseCalendarDate(date string) (time.Time, error) {
	return time.Parse(calendarDateLayout, date)
}
