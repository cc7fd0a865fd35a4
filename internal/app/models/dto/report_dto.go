package dto

import "time"

// CreateReportRequest represents a lecture report submission
type CreateReportRequest struct {
	ClassID               int64  `json:"classId" binding:"required,min=1"`
	Week                  int    `json:"week" binding:"required,min=1"`
	Date                  string `json:"date" binding:"required"` // YYYY-MM-DD
	Topic                 string `json:"topic" binding:"required"`
	LearningOutcomes      string `json:"learningOutcomes"`
	Recommendations       string `json:"recommendations"`
	ActualStudentsPresent *int   `json:"actualStudentsPresent" binding:"required,min=0"`
}

// ReportResponse is a lecture report joined with lecturer and class context.
//
// TotalRegisteredStudents is the live enrolment count at query time;
// AttendancePercentage derives from it and the report's self-reported
// present count. It is nil (not 0) when the class has no enrolments.
type ReportResponse struct {
	ID                      int64     `json:"id"`
	ClassID                 int64     `json:"classId"`
	ClassName               string    `json:"className"`
	CourseName              string    `json:"courseName,omitempty"`
	LecturerName            string    `json:"lecturerName,omitempty"`
	Week                    int       `json:"week"`
	Date                    time.Time `json:"date"`
	Topic                   string    `json:"topic"`
	LearningOutcomes        string    `json:"learningOutcomes"`
	Recommendations         string    `json:"recommendations"`
	ActualStudentsPresent   int       `json:"actualStudentsPresent"`
	TotalRegisteredStudents int       `json:"totalRegisteredStudents"`
	AttendancePercentage    *float64  `json:"attendancePercentage"`
	CreatedAt               time.Time `json:"createdAt"`
}

// StudentReportResponse is a report for an enrolled class, joined with the
// student's own attendance mark (nil when the student has not marked it).
type StudentReportResponse struct {
	ID                    int64     `json:"id"`
	ClassID               int64     `json:"classId"`
	ClassName             string    `json:"className"`
	LecturerName          string    `json:"lecturerName"`
	Week                  int       `json:"week"`
	Date                  time.Time `json:"date"`
	Topic                 string    `json:"topic"`
	LearningOutcomes      string    `json:"learningOutcomes"`
	Recommendations       string    `json:"recommendations"`
	ActualStudentsPresent int       `json:"actualStudentsPresent"`
	StudentStatus         *string   `json:"studentStatus"`
}

// PRLReportResponse is a faculty-scoped report row for a PRL, carrying the
// PRL's own existing feedback when present.
type PRLReportResponse struct {
	ReportResponse
	SubmittedBy      int64   `json:"submittedBy"`
	ExistingFeedback *string `json:"existingFeedback"`
}

// MarkAttendanceRequest upserts a student's attendance mark for a report
type MarkAttendanceRequest struct {
	ReportID int64  `json:"reportId" binding:"required,min=1"`
	Status   string `json:"status" binding:"required,oneof=present absent"`
}

// AttendanceStatusResponse reports a student's mark for a report; Status is
// nil when no mark exists.
type AttendanceStatusResponse struct {
	Status *string `json:"status"`
}

// CreateFeedbackRequest is a PRL's feedback on a lecture report
type CreateFeedbackRequest struct {
	Comment string `json:"comment" binding:"required"`
}
