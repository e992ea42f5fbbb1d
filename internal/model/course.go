package model

// Course 교과목 테이블 (courses)
//
// evaluation 은 DB에 "0"/"1" 로 저장하고 표시 계층에서
// "무시험"/"평가" 로 변환한다.
type Course struct {
	CourseID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	Category       string `gorm:"type:varchar(50);not null"   json:"category"`        // 구분
	Subject        string `gorm:"type:varchar(200);not null"  json:"subject"`         // 과목
	Hours          int    `gorm:"not null"                    json:"hours"`           // 시수
	InstructorName string `gorm:"type:varchar(100);not null"  json:"instructor_name"` // 담당교관
	PreAssigned    int    `gorm:"type:smallint;not null;default:2" json:"pre_assigned"` // 1=선배정 | 2=일반
	Evaluation     string `gorm:"type:varchar(1);not null;default:'0'" json:"evaluation"` // "0" | "1"
	ExcelOrder     int    `gorm:"not null;default:0"          json:"excel_order"`
	BaseModel
}

// TableName 테이블명 지정
func (Course) TableName() string { return "courses" }
