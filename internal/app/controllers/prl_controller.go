package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
	"github.com/luct-faculty/portal/internal/middleware"
)

// PRLController handles the Principal Lecturer's faculty-scoped views.
// Every query is bounded to the caller's faculty in SQL.
type PRLController struct {
	reportService     services.ReportService
	feedbackService   services.FeedbackService
	ratingService     services.RatingService
	monitoringService services.MonitoringService
}

// NewPRLController creates a new PRLController
func NewPRLController(reportService services.ReportService, feedbackService services.FeedbackService, ratingService services.RatingService, monitoringService services.MonitoringService) *PRLController {
	return &PRLController{
		reportService:     reportService,
		feedbackService:   feedbackService,
		ratingService:     ratingService,
		monitoringService: monitoringService,
	}
}

// GetReports retrieves the caller's faculty reports
// @Summary List faculty reports
// @Description Lists reports for the caller's faculty, each with the caller's own feedback
// @Tags prl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PRLReportResponse} "Reports retrieved"
// @Failure 403 {object} dto.ErrorResponse "No faculty assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/reports [get]
func (c *PRLController) GetReports(ctx *gin.Context) {
	reports, err := c.reportService.GetFacultyReports(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// CreateFeedback submits feedback on a report
// @Summary Give feedback on a report
// @Description Stores one feedback per (report, caller); a second submission is rejected
// @Tags prl
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID" minimum(1)
// @Param request body dto.CreateFeedbackRequest true "Feedback"
// @Success 201 {object} dto.APIResponse{data=dto.FeedbackResponse} "Feedback stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Report outside the caller's faculty"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 409 {object} dto.ErrorResponse "Feedback already submitted"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/reports/{reportId}/feedback [post]
func (c *PRLController) CreateFeedback(ctx *gin.Context) {
	reportID, ok := parseIDParam(ctx, "reportId")
	if !ok {
		return
	}

	var req dto.CreateFeedbackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	feedback, err := c.feedbackService.CreateFeedback(ctx, middleware.CurrentUserID(ctx), reportID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      feedback,
		Timestamp: time.Now(),
	})
}

// GetCourses retrieves the caller's faculty courses with nested classes
// @Summary List faculty courses
// @Tags prl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PRLCourseResponse} "Courses retrieved"
// @Failure 403 {object} dto.ErrorResponse "No faculty assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/courses [get]
func (c *PRLController) GetCourses(ctx *gin.Context) {
	courses, err := c.monitoringService.GetFacultyCourses(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// GetMonitoring retrieves the caller's faculty monitoring rows
// @Summary Get faculty monitoring
// @Description Per-class reporting activity and mark-derived attendance percentages
// @Tags prl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassMonitorResponse} "Monitoring retrieved"
// @Failure 403 {object} dto.ErrorResponse "No faculty assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/monitoring [get]
func (c *PRLController) GetMonitoring(ctx *gin.Context) {
	rows, err := c.monitoringService.GetFacultyMonitor(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}

// GetClasses retrieves the caller's faculty classes
// @Summary List faculty classes
// @Description Per-class live counts and mark-derived attendance for the caller's faculty
// @Tags prl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassMonitorResponse} "Classes retrieved"
// @Failure 403 {object} dto.ErrorResponse "No faculty assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/classes [get]
func (c *PRLController) GetClasses(ctx *gin.Context) {
	rows, err := c.monitoringService.GetFacultyMonitor(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}

// GetRatings retrieves the caller's faculty ratings
// @Summary List faculty ratings
// @Tags prl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.PRLRatingResponse} "Ratings retrieved"
// @Failure 403 {object} dto.ErrorResponse "No faculty assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /prl/rating [get]
func (c *PRLController) GetRatings(ctx *gin.Context) {
	ratings, err := c.ratingService.GetFacultyRatings(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ratings,
		Timestamp: time.Now(),
	})
}
