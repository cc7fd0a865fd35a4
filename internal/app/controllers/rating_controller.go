package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
	"github.com/luct-faculty/portal/internal/middleware"
)

// RatingController handles class rating operations
type RatingController struct {
	ratingService services.RatingService
}

// NewRatingController creates a new RatingController
func NewRatingController(ratingService services.RatingService) *RatingController {
	return &RatingController{ratingService: ratingService}
}

// GetAvailableClasses retrieves the caller's enrolled classes for rating
// @Summary List rateable classes
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.AvailableClassResponse} "Classes retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings/available-classes [get]
func (c *RatingController) GetAvailableClasses(ctx *gin.Context) {
	classes, err := c.ratingService.GetAvailableClasses(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// CreateRating submits a rating for a class
// @Summary Rate a class
// @Description Stores a 1-5 rating; the caller must be enrolled and the class must have met
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRatingRequest true "Rating"
// @Success 201 {object} dto.APIResponse{data=[]dto.MyRatingResponse} "Rating stored"
// @Failure 400 {object} dto.ErrorResponse "Invalid rating or class has not met yet"
// @Failure 403 {object} dto.ErrorResponse "Not enrolled in the class"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings [post]
func (c *RatingController) CreateRating(ctx *gin.Context) {
	var req dto.CreateRatingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	ratings, err := c.ratingService.CreateRating(ctx, middleware.CurrentUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      ratings,
		Timestamp: time.Now(),
	})
}

// GetMyRatings retrieves the caller's own ratings
// @Summary List own ratings
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.MyRatingResponse} "Ratings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /ratings/my [get]
func (c *RatingController) GetMyRatings(ctx *gin.Context) {
	ratings, err := c.ratingService.GetMyRatings(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ratings,
		Timestamp: time.Now(),
	})
}

// GetLecturerRatings retrieves the calling lecturer's rating summary
// @Summary Get own rating summary
// @Description Per-course averages plus the individual ratings behind them
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.LecturerRatingsResponse} "Ratings retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturer/ratings [get]
func (c *RatingController) GetLecturerRatings(ctx *gin.Context) {
	ratings, err := c.ratingService.GetLecturerRatings(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      ratings,
		Timestamp: time.Now(),
	})
}
