package dto

// InstructorOffDaysSummary 업로드 결과의 교관별 휴무일 요약
type InstructorOffDaysSummary struct {
	InstructorName string       `json:"instructorName"`
	OffDays        []OffDayItem `json:"offDays"`
}

// UploadOffDaysResponse 휴무일 업로드 결과 응답
type UploadOffDaysResponse struct {
	Success           bool                       `json:"success"`
	Message           string                     `json:"message"`
	OffDayCount       int                        `json:"offDayCount"`
	DuplicateCount    int                        `json:"duplicateCount"`
	InstructorOffDays []InstructorOffDaysSummary `json:"instructorOffDays"`
}

// UploadCoursesResponse 교과목 업로드 결과 응답
type UploadCoursesResponse struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	CourseCount     int    `json:"courseCount"`
	InstructorCount int    `json:"instructorCount"`
}
