package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/app/services"
	"github.com/luct-faculty/portal/internal/middleware"
)

// ClassController handles class management and the lecturer directory
type ClassController struct {
	classService services.ClassService
}

// NewClassController creates a new ClassController
func NewClassController(classService services.ClassService) *ClassController {
	return &ClassController{classService: classService}
}

// CreateClass handles class creation
// @Summary Create a class
// @Description Creates a class under an existing course, optionally with a lecturer
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassRequest true "Class details"
// @Success 201 {object} dto.APIResponse{data=dto.ClassResponse} "Class created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [post]
func (c *ClassController) CreateClass(ctx *gin.Context) {
	var req dto.CreateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	class, err := c.classService.CreateClass(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// GetAllClasses retrieves all classes
// @Summary List classes
// @Description Lists classes with course, lecturer and live student counts
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassResponse} "Classes retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes [get]
func (c *ClassController) GetAllClasses(ctx *gin.Context) {
	classes, err := c.classService.GetAllClasses(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}

// GetClassByID retrieves a class by ID
// @Summary Get class details
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ClassResponse} "Class retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [get]
func (c *ClassController) GetClassByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	class, err := c.classService.GetClassByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// UpdateClass updates a class's details
// @Summary Update a class
// @Tags classes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Param request body dto.UpdateClassRequest true "Updated details"
// @Success 200 {object} dto.APIResponse{data=dto.ClassResponse} "Class updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [put]
func (c *ClassController) UpdateClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateClassRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	class, err := c.classService.UpdateClass(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// DeleteClass deletes a class
// @Summary Delete a class
// @Description Deletes a class; enrolments, reports and ratings cascade
// @Tags classes
// @Produce json
// @Security BearerAuth
// @Param id path int true "Class ID" minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Class deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid class ID"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /classes/{id} [delete]
func (c *ClassController) DeleteClass(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.classService.DeleteClass(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Class deleted"},
		Timestamp: time.Now(),
	})
}

// AssignLecturer assigns a lecturer to a class
// @Summary Assign a lecturer
// @Description Assigns a lecturer to a class, enforcing role and faculty rules
// @Tags pl
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignLecturerRequest true "Assignment"
// @Success 200 {object} dto.APIResponse{data=dto.ClassResponse} "Lecturer assigned"
// @Failure 400 {object} dto.ErrorResponse "Target is not a lecturer or faculty mismatch"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Class or lecturer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pl/classes/assign-lecturer [post]
func (c *ClassController) AssignLecturer(ctx *gin.Context) {
	var req dto.AssignLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	class, err := c.classService.AssignLecturer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      class,
		Timestamp: time.Now(),
	})
}

// GetLecturers retrieves the lecturer directory
// @Summary List lecturers
// @Tags pl
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.LecturerResponse} "Lecturers retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /pl/lecturers [get]
func (c *ClassController) GetLecturers(ctx *gin.Context) {
	lecturers, err := c.classService.GetLecturers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      lecturers,
		Timestamp: time.Now(),
	})
}

// GetMyClasses retrieves the calling lecturer's classes
// @Summary List own classes
// @Tags lecturer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.ClassResponse} "Classes retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lecturer/classes [get]
func (c *ClassController) GetMyClasses(ctx *gin.Context) {
	classes, err := c.classService.GetClassesByLecturer(ctx, middleware.CurrentUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      classes,
		Timestamp: time.Now(),
	})
}
