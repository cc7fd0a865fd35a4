package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository       *UserRepository
	FacultyRepository    *FacultyRepository
	CourseRepository     *CourseRepository
	ClassRepository      *ClassRepository
	EnrolmentRepository  *EnrolmentRepository
	ReportRepository     *ReportRepository
	AttendanceRepository *AttendanceRepository
	RatingRepository     *RatingRepository
	FeedbackRepository   *FeedbackRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:       NewUserRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		CourseRepository:     NewCourseRepository(db),
		ClassRepository:      NewClassRepository(db),
		EnrolmentRepository:  NewEnrolmentRepository(db),
		ReportRepository:     NewReportRepository(db),
		AttendanceRepository: NewAttendanceRepository(db),
		RatingRepository:     NewRatingRepository(db),
		FeedbackRepository:   NewFeedbackRepository(db),
	}
}
