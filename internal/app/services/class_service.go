package services

import (
	"context"
	"errors"

	"github.com/luct-faculty/portal/internal/app/models"
	"github.com/luct-faculty/portal/internal/app/models/dto"
	"github.com/luct-faculty/portal/internal/pkg/apperrors"
	"github.com/luct-faculty/portal/internal/pkg/logger"
)

type classRepository interface {
	Create(ctx context.Context, class *models.Class) (int64, error)
	GetAll(ctx context.Context) ([]*dto.ClassResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.ClassResponse, error)
	GetByLecturer(ctx context.Context, lecturerID int64) ([]*dto.ClassResponse, error)
	Update(ctx context.Context, id int64, class *models.Class) error
	Delete(ctx context.Context, id int64) error
	AssignLecturer(ctx context.Context, classID, lecturerID int64) error
}

type classCourseRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Course, error)
}

type classUserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetLecturers(ctx context.Context) ([]*dto.LecturerResponse, error)
}

// ClassService defines the interface for class operations
type ClassService interface {
	CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
	GetAllClasses(ctx context.Context) ([]*dto.ClassResponse, error)
	GetClassByID(ctx context.Context, id int64) (*dto.ClassResponse, error)
	GetClassesByLecturer(ctx context.Context, lecturerID int64) ([]*dto.ClassResponse, error)
	UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error)
	DeleteClass(ctx context.Context, id int64) error
	AssignLecturer(ctx context.Context, req *dto.AssignLecturerRequest) (*dto.ClassResponse, error)
	GetLecturers(ctx context.Context) ([]*dto.LecturerResponse, error)
}

type classServiceImpl struct {
	classRepo  classRepository
	courseRepo classCourseRepository
	userRepo   classUserRepository
}

// NewClassService creates a new class service instance
func NewClassService(classRepo classRepository, courseRepo classCourseRepository, userRepo classUserRepository) ClassService {
	return &classServiceImpl{
		classRepo:  classRepo,
		courseRepo: courseRepo,
		userRepo:   userRepo,
	}
}

// checkLecturerForCourse verifies the target holds the lecturer role and,
// when faculty-affiliated, belongs to the course's faculty. Lecturers
// without an affiliation pass.
func (s *classServiceImpl) checkLecturerForCourse(ctx context.Context, lecturerID, courseID int64) error {
	lecturer, err := s.userRepo.GetByID(ctx, lecturerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrLecturerNotFound
		}
		return err
	}
	if lecturer.Role != models.RoleLecturer {
		return apperrors.ErrNotALecturer
	}

	course, err := s.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if lecturer.FacultyID != nil && *lecturer.FacultyID != course.FacultyID {
		return apperrors.ErrFacultyMismatch
	}

	return nil
}

// CreateClass creates a new class under an existing course
func (s *classServiceImpl) CreateClass(ctx context.Context, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}
	if req.LecturerID != nil {
		if err := s.checkLecturerForCourse(ctx, *req.LecturerID, req.CourseID); err != nil {
			return nil, err
		}
	}

	class := &models.Class{
		CourseID:      req.CourseID,
		ClassName:     req.ClassName,
		LecturerID:    req.LecturerID,
		Venue:         req.Venue,
		ScheduledTime: req.ScheduledTime,
	}

	id, err := s.classRepo.Create(ctx, class)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("classID", id).Str("className", class.ClassName).Msg("Class created")
	return s.classRepo.GetByID(ctx, id)
}

// GetAllClasses retrieves all classes with live student counts
func (s *classServiceImpl) GetAllClasses(ctx context.Context) ([]*dto.ClassResponse, error) {
	return s.classRepo.GetAll(ctx)
}

// GetClassByID retrieves a class by ID
func (s *classServiceImpl) GetClassByID(ctx context.Context, id int64) (*dto.ClassResponse, error) {
	return s.classRepo.GetByID(ctx, id)
}

// GetClassesByLecturer retrieves the classes assigned to one lecturer
func (s *classServiceImpl) GetClassesByLecturer(ctx context.Context, lecturerID int64) ([]*dto.ClassResponse, error) {
	return s.classRepo.GetByLecturer(ctx, lecturerID)
}

// UpdateClass updates a class's details
func (s *classServiceImpl) UpdateClass(ctx context.Context, id int64, req *dto.UpdateClassRequest) (*dto.ClassResponse, error) {
	if _, err := s.courseRepo.GetByID(ctx, req.CourseID); err != nil {
		return nil, err
	}
	if req.LecturerID != nil {
		if err := s.checkLecturerForCourse(ctx, *req.LecturerID, req.CourseID); err != nil {
			return nil, err
		}
	}

	class := &models.Class{
		CourseID:      req.CourseID,
		ClassName:     req.ClassName,
		LecturerID:    req.LecturerID,
		Venue:         req.Venue,
		ScheduledTime: req.ScheduledTime,
	}
	if err := s.classRepo.Update(ctx, id, class); err != nil {
		return nil, err
	}

	return s.classRepo.GetByID(ctx, id)
}

// DeleteClass deletes a class; enrolments, reports and ratings cascade
func (s *classServiceImpl) DeleteClass(ctx context.Context, id int64) error {
	if err := s.classRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info().Int64("classID", id).Msg("Class deleted")
	return nil
}

// AssignLecturer assigns a lecturer to a class, enforcing the role and
// faculty rules.
func (s *classServiceImpl) AssignLecturer(ctx context.Context, req *dto.AssignLecturerRequest) (*dto.ClassResponse, error) {
	class, err := s.classRepo.GetByID(ctx, req.ClassID)
	if err != nil {
		return nil, err
	}
	if err := s.checkLecturerForCourse(ctx, req.LecturerID, class.CourseID); err != nil {
		return nil, err
	}

	if err := s.classRepo.AssignLecturer(ctx, req.ClassID, req.LecturerID); err != nil {
		return nil, err
	}

	logger.Info().Int64("classID", req.ClassID).Int64("lecturerID", req.LecturerID).Msg("Lecturer assigned")
	return s.classRepo.GetByID(ctx, req.ClassID)
}

// GetLecturers retrieves the lecturer directory
func (s *classServiceImpl) GetLecturers(ctx context.Context) ([]*dto.LecturerResponse, error) {
	return s.userRepo.GetLecturers(ctx)
}
