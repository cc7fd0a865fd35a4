package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
	"github.com/luct-faculty/portal/internal/middleware"
)

// MonitoringController serves the shared class overview and the Program
// Leader's portal-wide metrics.
type MonitoringController struct {
	monitoringService services.MonitoringService
}

// NewMonitoringController creates a new MonitoringController
func NewMonitoringController(monitoringService services.MonitoringService) *MonitoringController {
	return &MonitoringController{monitoringService: monitoringService}
}

// GetClassOverview retrieves the per-class monitoring dashboard
// @Summary Get class overview
// @Description Per-class live counts, report tallies and attendance averages, visible to every role
// @Tags monitoring
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentMonitorResponse} "Overview retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /monitoring [get]
func (c *MonitoringController) GetClassOverview(ctx *gin.Context) {
	rows, err := c.monitoringService.GetClassOverview(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      rows,
		Timestamp: time.Now(),
	})
}

// GetPortalMetrics retrieves the portal-wide metrics
// @Summary Get portal metrics
// @Tags pl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.PLMetricsResponse} "Metrics retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pl/monitoring/metrics [get]
func (c *MonitoringController) GetPortalMetrics(ctx *gin.Context) {
	metrics, err := c.monitoringService.GetPortalMetrics(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      metrics,
		Timestamp: time.Now(),
	})
}
