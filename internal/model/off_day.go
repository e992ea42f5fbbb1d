package model

import "time"

// OffDay 교관 휴무일 테이블 (off_days)
//
// (instructor_id, date) 유니크 제약이 같은 날짜의 재업로드를
// 오류가 아닌 "중복" 결과로 흡수하는 근거가 된다.
type OffDay struct {
	OffDayID     string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"off_day_id"`
	InstructorID string    `gorm:"type:uuid;not null;uniqueIndex:uq_off_days_instructor_date" json:"instructor_id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:uq_off_days_instructor_date" json:"date"`
	Reason       string    `gorm:"type:varchar(200);not null;default:''" json:"reason"`
	BaseModel

	// 관계
	Instructor *Instructor `gorm:"foreignKey:InstructorID;references:InstructorID" json:"instructor,omitempty"`
}

// TableName 테이블명 지정
func (OffDay) TableName() string { return "off_days" }

// DateString YYYY-MM-DD 형식의 달력 날짜 (시간대 보정 없음)
func (o *OffDay) DateString() string {
	return o.Date.UTC().Format("2006-01-02")
}
