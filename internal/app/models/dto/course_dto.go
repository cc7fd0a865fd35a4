package dto

// CreateCourseRequest represents a request to create a course
type CreateCourseRequest struct {
	FacultyID int64  `json:"facultyId" binding:"required,min=1"`
	Name      string `json:"name" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

// UpdateCourseRequest represents a request to update a course
type UpdateCourseRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
}

// CourseResponse is a course joined with its faculty name
type CourseResponse struct {
	ID          int64  `json:"id"`
	FacultyID   int64  `json:"facultyId"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	FacultyName string `json:"facultyName,omitempty"`
}
