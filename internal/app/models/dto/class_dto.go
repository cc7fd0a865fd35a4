package dto

// CreateClassRequest represents a request to create a class
type CreateClassRequest struct {
	ClassName     string  `json:"className" binding:"required"`
	CourseID      int64   `json:"courseId" binding:"required,min=1"`
	LecturerID    *int64  `json:"lecturerId,omitempty"`
	Venue         *string `json:"venue,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`
}

// UpdateClassRequest represents a request to update a class
type UpdateClassRequest struct {
	ClassName     string  `json:"className" binding:"required"`
	CourseID      int64   `json:"courseId" binding:"required,min=1"`
	LecturerID    *int64  `json:"lecturerId,omitempty"`
	Venue         *string `json:"venue,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`
}

// AssignLecturerRequest assigns a lecturer to a class
type AssignLecturerRequest struct {
	ClassID    int64 `json:"classId" binding:"required,min=1"`
	LecturerID int64 `json:"lecturerId" binding:"required,min=1"`
}

// ClassResponse is a class joined with course/lecturer context and the
// live registered-student count.
type ClassResponse struct {
	ID                      int64   `json:"id"`
	ClassName               string  `json:"className"`
	CourseID                int64   `json:"courseId"`
	CourseName              string  `json:"courseName,omitempty"`
	CourseCode              string  `json:"courseCode,omitempty"`
	LecturerID              *int64  `json:"lecturerId,omitempty"`
	LecturerName            *string `json:"lecturerName,omitempty"`
	Venue                   *string `json:"venue,omitempty"`
	ScheduledTime           *string `json:"scheduledTime,omitempty"`
	TotalRegisteredStudents int     `json:"totalRegisteredStudents"`
}

// LecturerResponse is an entry in the lecturer directory
type LecturerResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	FacultyID *int64 `json:"facultyId,omitempty"`
}
