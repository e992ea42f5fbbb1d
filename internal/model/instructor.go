package model

// Instructor 교관 테이블 (instructors)
//
// name 의 유니크 제약이 find-or-create 의 멱등성을 보장한다.
type Instructor struct {
	InstructorID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"instructor_id"`
	Name         string `gorm:"type:varchar(100);not null;uniqueIndex:uq_instructors_name" json:"name"`
	BaseModel
}

// TableName 테이블명 지정
func (Instructor) TableName() string { return "instructors" }
