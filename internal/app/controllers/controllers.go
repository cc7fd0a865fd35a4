package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
)

// Controllers holds all the controller instances
type Controllers struct {
	AuthController       *AuthController
	CourseController     *CourseController
	ClassController      *ClassController
	ReportController     *ReportController
	StudentController    *StudentController
	RatingController     *RatingController
	PRLController        *PRLController
	MonitoringController *MonitoringController
}

// NewControllers initializes all controllers
func NewControllers(svc *services.Services) *Controllers {
	return &Controllers{
		AuthController:       NewAuthController(svc.AuthService),
		CourseController:     NewCourseController(svc.CourseService),
		ClassController:      NewClassController(svc.ClassService),
		ReportController:     NewReportController(svc.ReportService),
		StudentController:    NewStudentController(svc.EnrolmentService, svc.AttendanceService, svc.ReportService),
		RatingController:     NewRatingController(svc.RatingService),
		PRLController:        NewPRLController(svc.ReportService, svc.FeedbackService, svc.RatingService, svc.MonitoringService),
		MonitoringController: NewMonitoringController(svc.MonitoringService),
	}
}

// parseIDParam parses a positive int64 path parameter; on failure it
// writes a 400 response and reports false.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
