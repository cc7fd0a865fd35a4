package services

import (
	"github.com/luct-faculty/portal/internal/app/repositories"
	"github.com/luct-faculty/portal/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	AuthService       AuthService
	CourseService     CourseService
	ClassService      ClassService
	EnrolmentService  EnrolmentService
	ReportService     ReportService
	AttendanceService AttendanceService
	RatingService     RatingService
	FeedbackService   FeedbackService
	MonitoringService MonitoringService
}

// NewServices wires all services onto the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		AuthService:   NewAuthService(repos.UserRepository, jwtService),
		CourseService: NewCourseService(repos.CourseRepository, repos.FacultyRepository),
		ClassService:  NewClassService(repos.ClassRepository, repos.CourseRepository, repos.UserRepository),
		EnrolmentService: NewEnrolmentService(
			repos.EnrolmentRepository),
		ReportService: NewReportService(repos.ReportRepository, repos.ClassRepository, repos.UserRepository),
		AttendanceService: NewAttendanceService(
			repos.AttendanceRepository, repos.ReportRepository, repos.EnrolmentRepository),
		RatingService: NewRatingService(
			repos.RatingRepository, repos.EnrolmentRepository, repos.ReportRepository, repos.UserRepository),
		FeedbackService: NewFeedbackService(
			repos.FeedbackRepository, repos.ReportRepository, repos.UserRepository),
		MonitoringService: NewMonitoringService(
			repos.ClassRepository, repos.CourseRepository, repos.ReportRepository, repos.UserRepository),
	}
}
