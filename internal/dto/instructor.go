package dto

// InstructorResponse 교관 응답 (휴무일 포함)
type InstructorResponse struct {
	InstructorID string       `json:"instructorId"`
	Name         string       `json:"name"`
	OffDays      []OffDayItem `json:"offDays"`
}
