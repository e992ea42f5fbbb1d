package dto

// CourseResponse 교과목 응답
type CourseResponse struct {
	CourseID          string `json:"courseId"`
	Category          string `json:"category"`
	Subject           string `json:"subject"`
	Hours             int    `json:"hours"`
	InstructorName    string `json:"instructorName"`
	PreAssigned       int    `json:"preAssigned"`
	Evaluation        string `json:"evaluation"`
	EvaluationDisplay string `json:"evaluationDisplay"`
	ExcelOrder        int    `json:"excelOrder"`
}
