package dto

import "time"

// CreateRatingRequest represents a student's rating submission
type CreateRatingRequest struct {
	ClassID int64   `json:"classId" binding:"required,min=1"`
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment,omitempty"`
}

// AvailableClassResponse is a class a student can browse before rating
type AvailableClassResponse struct {
	ClassID       int64   `json:"classId"`
	CourseName    string  `json:"courseName"`
	CourseCode    string  `json:"courseCode"`
	LecturerName  *string `json:"lecturerName"`
	Venue         *string `json:"venue,omitempty"`
	ScheduledTime *string `json:"scheduledTime,omitempty"`
}

// MyRatingResponse is one of the caller's own past ratings
type MyRatingResponse struct {
	ID           int64     `json:"id"`
	Rating       int       `json:"rating"`
	Comment      *string   `json:"comment"`
	ClassID      int64     `json:"classId"`
	CourseName   string    `json:"courseName"`
	LecturerName *string   `json:"lecturerName"`
	CreatedAt    time.Time `json:"createdAt"`
}

// RatingSummaryResponse is the per-course aggregate for a lecturer.
// AverageRating is nil (never 0) when the course has no ratings.
type RatingSummaryResponse struct {
	CourseName    string   `json:"courseName"`
	AverageRating *float64 `json:"averageRating"`
	TotalRatings  int      `json:"totalRatings"`

	// Raw facts the average derives from; not serialized.
	RatingSum int `json:"-"`
}

// RatingDetailResponse is one rating row in a lecturer's listing
type RatingDetailResponse struct {
	CourseName string    `json:"courseName"`
	Rating     int       `json:"rating"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}

// LecturerRatingsResponse pairs the per-course summary with rating details
type LecturerRatingsResponse struct {
	Summary []RatingSummaryResponse `json:"summary"`
	Details []RatingDetailResponse  `json:"details"`
}

// PRLRatingResponse is a faculty-scoped rating row for a PRL
type PRLRatingResponse struct {
	ID           int64   `json:"id"`
	Rating       int     `json:"rating"`
	Comment      *string `json:"comment"`
	StudentName  string  `json:"studentName"`
	ClassID      int64   `json:"classId"`
	ClassName    string  `json:"className"`
	CourseID     int64   `json:"courseId"`
	CourseName   string  `json:"courseName"`
	CourseCode   string  `json:"courseCode"`
	LecturerName *string `json:"lecturerName"`
}
