package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
	"github.com/luct-faculty/portal/internal/middleware"
)

// ReportController handles lecture report submission and listings
type ReportController struct {
	reportService services.ReportService
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService) *ReportController {
	return &ReportController{reportService: reportService}
}

// CreateReport handles report submission
// @Summary Submit a lecture report
// @Description Submits an immutable lecture report; the date must not be in the future
// @Tags reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateReportRequest true "Report details"
// @Success 201 {object} dto.APIResponse{data=dto.ReportResponse} "Report submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data or future date"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports [post]
func (c *ReportController) CreateReport(ctx *gin.Context) {
	var req dto.CreateReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	report, err := c.reportService.CreateReport(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// ListReports retrieves all reports with optional search
// @Summary Search reports
// @Description Lists reports, optionally filtered by topic or learning outcomes; PRLs see only their own faculty
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param search query string false "Case-insensitive search term"
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportResponse} "Reports retrieved"
// @Failure 403 {object} dto.ErrorResponse "No faculty assigned"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reports [get]
func (c *ReportController) ListReports(ctx *gin.Context) {
	reports, err := c.reportService.ListReports(ctx, middleware.CurrentUserID(ctx), middleware.CurrentRole(ctx), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// GetReportByID retrieves a report by ID
// @Summary Get report details
// @Tags pl
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ReportResponse} "Report retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid report ID"
// @Failure 404 {object} dto.ErrorResponse "Report not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pl/reports/{id} [get]
func (c *ReportController) GetReportByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	report, err := c.reportService.GetReportByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      report,
		Timestamp: time.Now(),
	})
}

// GetOverviewStats retrieves the calling lecturer's dashboard counts
// @Summary Get lecturer overview stats
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LecturerStatsResponse} "Stats retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturer/overview/stats [get]
func (c *ReportController) GetOverviewStats(ctx *gin.Context) {
	stats, err := c.reportService.GetLecturerStats(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}

// GetRecentReports retrieves the calling lecturer's latest reports
// @Summary Get recent reports
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportResponse} "Reports retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturer/overview/recent-reports [get]
func (c *ReportController) GetRecentReports(ctx *gin.Context) {
	reports, err := c.reportService.GetRecentReports(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}

// GetMyReports retrieves the calling lecturer's submitted reports
// @Summary List own reports
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ReportResponse} "Reports retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturer/reports [get]
func (c *ReportController) GetMyReports(ctx *gin.Context) {
	reports, err := c.reportService.GetLecturerReports(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      reports,
		Timestamp: time.Now(),
	})
}
