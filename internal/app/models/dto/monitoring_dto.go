package dto

import "time"

// EnrolRequest enrols the calling student into a class
type EnrolRequest struct {
	ClassID int64 `json:"classId" binding:"required,min=1"`
}

// EnrolmentResponse is one of a student's enrolments with class context
type EnrolmentResponse struct {
	ID            int64   `json:"id"`
	ClassID       int64   `json:"classId"`
	ClassName     string  `json:"className"`
	CourseName    string  `json:"courseName"`
	CourseCode    string  `json:"courseCode"`
	LecturerName  *string `json:"lecturerName"`
	Venue         *string `json:"venue,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`
}

// FeedbackResponse is a PRL's stored feedback on a report
type FeedbackResponse struct {
	ID        int64     `json:"id"`
	ReportID  int64     `json:"reportId"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// LecturerStatsResponse is the lecturer dashboard headline numbers.
// TotalStudents sums live enrolment counts across the lecturer's classes.
type LecturerStatsResponse struct {
	TotalClasses  int `json:"totalClasses"`
	TotalReports  int `json:"totalReports"`
	TotalStudents int `json:"totalStudents"`
}

// ClassMonitorResponse is the shared per-class monitoring row: reporting
// activity plus attendance derived from student marks. PresentPercent is
// nil when no marks exist for the class.
type ClassMonitorResponse struct {
	ClassID                 int64      `json:"classId"`
	ClassName               string     `json:"className"`
	CourseName              string     `json:"courseName"`
	CourseCode              string     `json:"courseCode"`
	LecturerName            *string    `json:"lecturerName"`
	TotalRegisteredStudents int        `json:"totalRegisteredStudents"`
	TotalReports            int        `json:"totalReports"`
	LastReportDate          *time.Time `json:"lastReportDate"`
	PresentPercent          *float64   `json:"presentPercent"`

	// Raw mark tallies the percentage derives from; not serialized.
	PresentMarks int `json:"-"`
	TotalMarks   int `json:"-"`
}

// StudentMonitorResponse is the per-class overview on the shared
// monitoring dashboard. AvgStudentsPresent and AttendancePercent derive
// from submitted reports and are nil when the class has none.
type StudentMonitorResponse struct {
	ClassID                 int64    `json:"classId"`
	ClassName               string   `json:"className"`
	CourseName              string   `json:"courseName"`
	CourseCode              string   `json:"courseCode"`
	LecturerName            *string  `json:"lecturerName"`
	TotalRegisteredStudents int      `json:"totalRegisteredStudents"`
	TotalReports            int      `json:"totalReports"`
	AvgStudentsPresent      *float64 `json:"avgStudentsPresent"`
	AttendancePercent       *float64 `json:"attendancePercent"`

	// Raw report tally the averages derive from; not serialized.
	SumStudentsPresent int `json:"-"`
}

// PRLClassResponse is a class row inside a PRL's course view
type PRLClassResponse struct {
	ID                      int64   `json:"id"`
	ClassName               string  `json:"className"`
	LecturerName            *string `json:"lecturerName"`
	Venue                   *string `json:"venue,omitempty"`
	ScheduledTime           *string `json:"scheduledTime,omitempty"`
	TotalRegisteredStudents int     `json:"totalRegisteredStudents"`
	TotalReports            int     `json:"totalReports"`
}

// PRLCourseResponse is a faculty course with its classes for the PRL view
type PRLCourseResponse struct {
	ID      int64              `json:"id"`
	Name    string             `json:"name"`
	Code    string             `json:"code"`
	Classes []PRLClassResponse `json:"classes"`
}

// PLMetricsResponse is the programme-wide headline numbers for a PL.
// AverageAttendance averages the report-based attendance percentage over
// classes that have both enrolments and reports; nil when no class does.
type PLMetricsResponse struct {
	TotalCourses      int      `json:"totalCourses"`
	TotalClasses      int      `json:"totalClasses"`
	TotalLecturers    int      `json:"totalLecturers"`
	TotalReports      int      `json:"totalReports"`
	TotalStudents     int      `json:"totalStudents"`
	AverageAttendance *float64 `json:"averageAttendance"`
	AverageRating     *float64 `json:"averageRating"`

	// Raw rating tallies the average derives from; not serialized.
	RatingSum   int `json:"-"`
	RatingCount int `json:"-"`
}
