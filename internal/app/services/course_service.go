package services

import (
	"context"
	"strings"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) (int64, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	Update(ctx context.Context, id int64, name, code string) error
	Delete(ctx context.Context, id int64) error
}

type courseFacultyRepository interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetAll(ctx context.Context) ([]*models.Faculty, error)
}

// CourseService defines the interface for course operations
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	GetAllCourses(ctx context.Context) ([]*models.Course, error)
	GetCourseByID(ctx context.Context, id int64) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	GetAllFaculties(ctx context.Context) ([]*models.Faculty, error)
}

type courseServiceImpl struct {
	courseRepo  courseRepository
	facultyRepo courseFacultyRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseRepository, facultyRepo courseFacultyRepository) CourseService {
	return &courseServiceImpl{
		courseRepo:  courseRepo,
		facultyRepo: facultyRepo,
	}
}

// CreateCourse creates a new course under an existing faculty
func (s *courseServiceImpl) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	exists, err := s.facultyRepo.ExistsByID(ctx, req.FacultyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrFacultyNotFound
	}

	course := &models.Course{
		FacultyID: req.FacultyID,
		Name:      strings.TrimSpace(req.Name),
		Code:      strings.TrimSpace(req.Code),
	}

	id, err := s.courseRepo.Create(ctx, course)
	if err != nil {
		return nil, err
	}
	course.ID = id

	logger.Info().Int64("courseID", id).Str("code", course.Code).Msg("Course created")
	return s.courseRepo.GetByID(ctx, id)
}

// GetAllCourses retrieves all courses
func (s *courseServiceImpl) GetAllCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// UpdateCourse updates a course's name and code
func (s *courseServiceImpl) UpdateCourse(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.courseRepo.Update(ctx, id, strings.TrimSpace(req.Name), strings.TrimSpace(req.Code)); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByID(ctx, id)
}

// DeleteCourse deletes a course; its classes and their reports cascade
func (s *courseServiceImpl) DeleteCourse(ctx context.Context, id int64) error {
	if err := s.courseRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("courseID", id).Msg("Course deleted")
	return nil
}

// GetAllFaculties retrieves all faculties
func (s *courseServiceImpl) GetAllFaculties(ctx context.Context) ([]*models.Faculty, error) {
	return s.facultyRepo.GetAll(ctx)
}
