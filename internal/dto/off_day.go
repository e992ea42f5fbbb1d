package dto

// CreateOffDayRequest 휴무일 단건 등록 요청
type CreateOffDayRequest struct {
	InstructorName string `json:"instructorName" binding:"required,max=50"`
	Date           string `json:"date" binding:"required"`
	Reason         string `json:"reason" binding:"max=200"`
}

// OffDayResponse 휴무일 단건 응답
type OffDayResponse struct {
	OffDayID       string `json:"offDayId"`
	InstructorID   string `json:"instructorId"`
	InstructorName string `json:"instructorName"`
	Date           string `json:"date"`
	Reason         string `json:"reason"`
}

// OffDayItem 교관 휴무일 요약 항목
type OffDayItem struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}
