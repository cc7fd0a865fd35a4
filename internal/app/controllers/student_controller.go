package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
	"github.com/luct-faculty/portal/internal/middleware"
)

// StudentController handles enrolments, enrolled-class reports and
// attendance marks for the calling student.
type StudentController struct {
	enrolmentService  services.EnrolmentService
	attendanceService services.AttendanceService
	reportService     services.ReportService
}

// NewStudentController creates a new StudentController
func NewStudentController(enrolmentService services.EnrolmentService, attendanceService services.AttendanceService, reportService services.ReportService) *StudentController {
	return &StudentController{
		enrolmentService:  enrolmentService,
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// GetEnrolments retrieves the caller's enrolments
// @Summary List own enrolments
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.EnrolmentResponse} "Enrolments retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/enrolments [get]
func (c *StudentController) GetEnrolments(ctx *gin.Context) {
	enrolments, err := c.enrolmentService.GetEnrolments(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      enrolments,
		Timestamp: time.Now(),
	})
}

// Enrol registers the caller into a class
// @Summary Enrol into a class
// @Description Enrols the caller; a duplicate enrolment is rejected
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.EnrolRequest true "Class to enrol into"
// @Success 201 {object} dto.APIResponse{data=[]dto.EnrolmentResponse} "Enrolled"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 409 {object} dto.ErrorResponse "Already enrolled"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/enrolments [post]
func (c *StudentController) Enrol(ctx *gin.Context) {
	var req dto.EnrolRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	enrolments, err := c.enrolmentService.Enrol(ctx, middleware.CurrentUserID(ctx), req.ClassID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      enrolments,
		Timestamp: time.Now(),
	})
}

// GetEnrolledReports retrieves reports for the caller's enrolled classes
// @Summary List reports for enrolled classes
// @Description Lists reports with the caller's own attendance mark on each
// @Tags student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentReportResponse} "Reports retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/reports/enrolled [get]
func (c *StudentController) GetEnrolledReports(ctx *gin.Context) {
	reports, err := c.reportService.GetStudentReports(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// GetAttendanceStatus retrieves the caller's mark for a report
// @Summary Get own attendance mark
// @Tags student
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceStatusResponse} "Status retrieved (null when unmarked)"
// @Failure 400 {object} dto.ErrorResponse "Invalid report ID"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/attendance/{reportId} [get]
func (c *StudentController) GetAttendanceStatus(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "reportId")
	if !ok {
		return
	}

	status, err := c.attendanceService.GetStatus(ctx, middleware.CurrentUserID(ctx), reportID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}

// MarkAttendance records the caller's attendance for a report
// @Summary Mark attendance
// @Description Upserts the caller's mark; a second mark overwrites the first
// @Tags student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Attendance mark"
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceStatusResponse} "Attendance recorded"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in the report's class"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /student/attendance [post]
func (c *StudentController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	status, err := c.attendanceService.Mark(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      status,
		Timestamp: time.Now(),
	})
}
